package http

import (
	"net/http"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/service"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
}

func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var expense domain.OperatingExpense
	if !decodeBody(w, r, &expense) {
		return
	}
	expense.AircraftID = aircraftID

	if err := h.expenseService.AddExpense(r.Context(), userIDFromContext(r.Context()), &expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid expense id")
		return
	}

	expense, err := h.expenseService.GetExpense(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid expense id")
		return
	}

	var expense domain.OperatingExpense
	if !decodeBody(w, r, &expense) {
		return
	}
	expense.ID = id

	if err := h.expenseService.UpdateExpense(r.Context(), userIDFromContext(r.Context()), &expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid expense id")
		return
	}

	if err := h.expenseService.DeleteExpense(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	expenses, err := h.expenseService.ListExpenses(r.Context(), userIDFromContext(r.Context()), aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}
