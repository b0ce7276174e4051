package handlers

import (
	"errors"
	"net/http"

	"travel_planner/internal/models"
	"travel_planner/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgExpenseDeleted = "Expense deleted successfully"

	errExpenseNotFound = "Expense not found"
	errAddExpense      = "Failed to add expense"
	errFetchExpenses   = "Failed to retrieve expenses"
	errFetchExpense    = "Failed to retrieve expense"
	errUpdateExpense   = "Failed to update expense"
	errDeleteExpense   = "Failed to delete expense"
)

// ExpenseRequest is the expense payload on the authenticated routes.
type ExpenseRequest struct {
	Amount      *float64    `json:"amount" binding:"required,gte=0" example:"42.5"`
	Description string      `json:"description" binding:"required" example:"Taxi"`
	Date        models.Date `json:"date" swaggertype:"string" example:"2025-06-02"`
	TripID      string      `json:"tripId,omitempty"`
}

// LegacyExpenseRequest carries the owner in the body.
type LegacyExpenseRequest struct {
	ExpenseRequest
	UserID string `json:"userId" binding:"required" example:"3f0c..."`
}

// ExpensePatchRequest is the partial update payload.
type ExpensePatchRequest struct {
	Amount      *float64     `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Description *string      `json:"description,omitempty" binding:"omitempty,min=1"`
	Date        *models.Date `json:"date,omitempty" swaggertype:"string"`
	TripID      *string      `json:"tripId,omitempty"`
}

func (r ExpenseRequest) toModel(userID string) models.Expense {
	e := models.Expense{
		UserID:      userID,
		Description: r.Description,
		Date:        r.Date,
		TripID:      r.TripID,
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	return e
}

func (h *Handler) writeExpenses(c *gin.Context, f models.ExpenseFilter) {
	list, err := h.services.Expenses.List(c.Request.Context(), f)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchExpenses, "expense_list_failed", err)
		return
	}
	if list == nil {
		list = []models.Expense{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Add an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ExpenseRequest  true  "expense"
// @Success      201   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /expenses/add [post]
func (h *Handler) addExpense(c *gin.Context) {
	var input ExpenseRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	e, err := h.services.Expenses.Add(c.Request.Context(), input.toModel(callerUID(c)))
	if isBadInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errAddExpense, "expense_add_failed", err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      List the caller's expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        tripId  query     string  false  "only expenses of this trip"
// @Success      200     {array}   models.Expense
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /expenses/all [get]
func (h *Handler) listMyExpenses(c *gin.Context) {
	h.writeExpenses(c, models.ExpenseFilter{UserID: callerUID(c), TripID: c.Query("tripId")})
}

// Legacy, unscoped expense routes.

func (h *Handler) listExpenses(c *gin.Context) {
	h.writeExpenses(c, models.ExpenseFilter{TripID: c.Query("tripId")})
}

func (h *Handler) createExpense(c *gin.Context) {
	var input LegacyExpenseRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	e, err := h.services.Expenses.Add(c.Request.Context(), input.toModel(input.UserID))
	if isBadInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errAddExpense, "expense_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": e})
}

func (h *Handler) getExpense(c *gin.Context) {
	e, err := h.services.Expenses.Get(c.Request.Context(), c.Param("id"), "")
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errExpenseNotFound})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchExpense, "expense_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": e})
}

func (h *Handler) updateExpense(c *gin.Context) {
	var input ExpensePatchRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	e, err := h.services.Expenses.Update(c.Request.Context(), c.Param("id"), "", models.ExpensePatch{
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		TripID:      input.TripID,
	})
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errExpenseNotFound})
		return
	case isBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateExpense, "expense_update_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": e})
}

func (h *Handler) deleteExpense(c *gin.Context) {
	err := h.services.Expenses.Delete(c.Request.Context(), c.Param("id"), "")
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errExpenseNotFound})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteExpense, "expense_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgExpenseDeleted})
}
