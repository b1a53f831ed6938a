package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

type DeliveryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Price(w http.ResponseWriter, r *http.Request)
	PriceUnpriced(w http.ResponseWriter, r *http.Request)
}

type deliveryHandlerImpl struct {
	deliveryService delivery.DeliveryService
}

func NewDeliveryHandler(deliveryService delivery.DeliveryService) DeliveryHandler {
	return &deliveryHandlerImpl{deliveryService: deliveryService}
}

func (h *deliveryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req delivery.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deliveryService.CreateDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delivery recorded", result)
}

func (h *deliveryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Delivery ID is required", nil)
		return
	}

	result, err := h.deliveryService.GetDelivery(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deliveryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := delivery.DeliveryFilter{
		Unpriced: r.URL.Query().Get("unpriced") == "true",
	}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if month, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		filter.Month = &month
	}
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &year
	}

	result, err := h.deliveryService.ListDeliveries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deliveryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req delivery.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.deliveryService.UpdateDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deliveryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Delivery ID is required", nil)
		return
	}

	if err := h.deliveryService.DeleteDelivery(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery deleted", nil)
}

func (h *deliveryHandlerImpl) Price(w http.ResponseWriter, r *http.Request) {
	var req delivery.PriceDeliveryRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.deliveryService.PriceDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery priced", result)
}

func (h *deliveryHandlerImpl) PriceUnpriced(w http.ResponseWriter, r *http.Request) {
	priced, err := h.deliveryService.PriceUnpriced(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unpriced deliveries priced", map[string]int{"deliveries_priced": priced})
}
