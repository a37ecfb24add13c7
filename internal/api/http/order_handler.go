package http

import (
	"net/http"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"
	"toolrent-backend/internal/utils"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type orderRequest struct {
	ClientName        string           `json:"client_name"`
	ClientPhoneNumber string           `json:"client_phone_number"`
	ToolID            string           `json:"tool_id"`
	StartDate         string           `json:"start_date"`
	Price             decimal.Decimal  `json:"price"`
	PaidPledge        decimal.Decimal  `json:"paid_pledge"`
	Payment           *decimal.Decimal `json:"payment"`
	Description       string           `json:"description"`
}

// confirmResponse backs the close and delete confirmation screens. Retry is
// set when the previous attempt failed to save.
type confirmResponse struct {
	Order *domain.Order `json:"order"`
	Retry bool          `json:"retry"`
}

func (h *Handler) toOrder(req orderRequest) (*domain.Order, error) {
	order := &domain.Order{
		ClientName:        strings.TrimSpace(req.ClientName),
		ClientPhoneNumber: strings.TrimSpace(req.ClientPhoneNumber),
		ToolID:            req.ToolID,
		Price:             req.Price,
		PaidPledge:        req.PaidPledge,
		Payment:           req.Payment,
		Description:       req.Description,
	}
	if req.StartDate != "" {
		start, err := utils.ParseDate(req.StartDate, h.location)
		if err != nil {
			return nil, domain.ValidationError("start_date", err.Error())
		}
		order.StartDate = start
	}
	return order, nil
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.orders.List(r.Context(), service.ListQuery{
		Filter:    domain.OrderFilter(q.Get("filter")),
		Search:    q.Get("searchString"),
		SortOrder: domain.OrderSort(q.Get("sortOrder")),
	})
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

func (h *Handler) NewOrderForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := h.orders.FormOptions(r.Context(), q.Get("clientId"), q.Get("toolId"))
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, opts)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.toOrder(req)
	if err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	if err := h.orders.Create(r.Context(), order); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.toOrder(req)
	if err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	order.ID = mux.Vars(r)["id"]
	if err := h.orders.Update(r.Context(), order); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) ConfirmDeleteOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, confirmResponse{Order: order, Retry: retryRequested(r)})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ConfirmCloseOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.CheckClosable(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, false)
		return
	}
	respondWithJSON(w, http.StatusOK, confirmResponse{Order: order, Retry: retryRequested(r)})
}

func (h *Handler) CloseOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Close(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, r, err, true)
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

func retryRequested(r *http.Request) bool {
	return r.URL.Query().Get("retry") == "true"
}
