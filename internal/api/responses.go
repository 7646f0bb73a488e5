package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ValidationErrorResponse is the 422 body returned for request bodies that
// fail field validation: a map from field name to its violation messages.
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}
