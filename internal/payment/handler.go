package payment

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OmarZuritaEC/vitalgym/internal/api"
)

// CustomerDirectory verifies the customer referenced in the route exists.
type CustomerDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Handler struct {
	repo      Repository
	customers CustomerDirectory
}

func NewHandler(repo Repository, customers CustomerDirectory) *Handler {
	return &Handler{repo: repo, customers: customers}
}

type paymentResponse struct {
	PaymentWithDetails
	TotalPriceInDollars string `json:"total_price_in_dollars"`
}

func toResponse(payments []PaymentWithDetails) []paymentResponse {
	out := make([]paymentResponse, len(payments))
	for i, p := range payments {
		out[i] = paymentResponse{
			PaymentWithDetails:  p,
			TotalPriceInDollars: p.TotalPriceInDollars(),
		}
	}
	return out
}

// ListByCustomer godoc
// @Summary      Customer payment history
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        customerID  path      int  true  "Customer ID"
// @Success      200         {array}   paymentResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /admin/customers/{customerID}/payments [get]
func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	exists, err := h.customers.Exists(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Customer not found"})
		return
	}

	payments, err := h.repo.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, toResponse(payments))
}

// ListRecent godoc
// @Summary      Latest payments
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   paymentResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/payments [get]
func (h *Handler) ListRecent(c *gin.Context) {
	payments, err := h.repo.ListRecent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, toResponse(payments))
}
