package customer

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OmarZuritaEC/vitalgym/internal/api"
)

// UserDirectory is the slice of the user repository the handler needs to
// verify that the owning account exists.
type UserDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Handler struct {
	repo  Repository
	users UserDirectory
}

func NewHandler(repo Repository, users UserDirectory) *Handler {
	return &Handler{repo: repo, users: users}
}

// Create godoc
// @Summary      Register customer
// @Description  Creates a customer record owned by an existing user account.
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateCustomerRequest  true  "Customer data"
// @Success      201      {object}  Customer
// @Failure      422      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/customers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := api.ValidateStruct(&req); errs != nil {
			api.RespondValidationErrors(c, errs)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	exists, err := h.users.Exists(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	if !exists {
		api.RespondValidationErrors(c, map[string][]string{
			"user_id": {"the selected user_id is invalid"},
		})
		return
	}

	birthdate, _ := time.Parse("2006-01-02", req.Birthdate)

	customer, err := h.repo.Create(c.Request.Context(), NewCustomer{
		UserID:    req.UserID,
		CI:        req.CI,
		Phone:     req.Phone,
		CellPhone: req.CellPhone,
		Address:   req.Address,
		Birthdate: birthdate,
		Gender:    req.Gender,
		Avatar:    req.Avatar,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// Get godoc
// @Summary      Get customer
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Param        customerID  path      int  true  "Customer ID"
// @Success      200         {object}  Customer
// @Failure      404         {object}  api.ErrorResponse
// @Router       /admin/customers/{customerID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid customer ID"})
		return
	}

	customer, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Customer
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/customers [get]
func (h *Handler) List(c *gin.Context) {
	customers, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, customers)
}
