package membership

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OmarZuritaEC/vitalgym/internal/api"
	"github.com/OmarZuritaEC/vitalgym/internal/auth"
	"github.com/OmarZuritaEC/vitalgym/internal/user"
)

// ActingUserReader loads the staff member recorded on the payment.
type ActingUserReader interface {
	FindByID(ctx context.Context, id int) (*user.User, error)
}

type Handler struct {
	svc       Service
	validator *OrderValidator
	repo      Repository
	users     ActingUserReader
}

func NewHandler(svc Service, validator *OrderValidator, repo Repository, users ActingUserReader) *Handler {
	return &Handler{
		svc:       svc,
		validator: validator,
		repo:      repo,
		users:     users,
	}
}

// CreateOrder godoc
// @Summary      Sell a membership
// @Description  Creates a membership with its payment and emails the customer a confirmation.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      OrderRequest  true  "Membership order"
// @Success      201      {object}  OrderResult
// @Failure      404      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/memberships [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	in, fieldErrs, err := h.validator.Validate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	if fieldErrs != nil {
		api.RespondValidationErrors(c, fieldErrs)
		return
	}

	actingUser, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not found"})
		return
	}

	result, err := h.svc.CreateOrder(c.Request.Context(), *in, actingUser)
	if err != nil {
		switch {
		case errors.Is(err, ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Customer not found"})
		case errors.Is(err, ErrMembershipTypeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership type not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

type membershipTypeResponse struct {
	MembershipType
	PriceInDollars string `json:"price_in_dollars"`
}

// ListTypes godoc
// @Summary      List membership types
// @Tags         membership-types
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   membershipTypeResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/membership-types [get]
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.repo.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	out := make([]membershipTypeResponse, len(types))
	for i, mt := range types {
		out[i] = membershipTypeResponse{
			MembershipType: mt,
			PriceInDollars: mt.PriceInDollars(),
		}
	}

	c.JSON(http.StatusOK, out)
}

// CreateType godoc
// @Summary      Create membership type
// @Tags         membership-types
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMembershipTypeRequest  true  "Membership type"
// @Success      201      {object}  MembershipType
// @Failure      422      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/membership-types [post]
func (h *Handler) CreateType(c *gin.Context) {
	var req CreateMembershipTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := api.ValidateStruct(&req); errs != nil {
			api.RespondValidationErrors(c, errs)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	mt, err := h.repo.CreateType(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create membership type"})
		return
	}

	c.JSON(http.StatusCreated, mt)
}

// DeleteType godoc
// @Summary      Delete membership type
// @Description  Removes an unused catalog entry. Types referenced by sold memberships cannot be deleted.
// @Tags         membership-types
// @Security     BearerAuth
// @Produce      json
// @Param        typeID  path      int  true  "Membership type ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Router       /admin/membership-types/{typeID} [delete]
func (h *Handler) DeleteType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("typeID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid membership type ID"})
		return
	}

	if err := h.repo.DeleteType(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrTypeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership type not found"})
		case errors.Is(err, ErrTypeInUse):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Membership type is in use"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete membership type"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership type deleted"})
}
