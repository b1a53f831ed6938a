package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/fertilizer"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

type FertilizerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	FactorySummary(w http.ResponseWriter, r *http.Request)
}

type fertilizerHandlerImpl struct {
	obligationService fertilizer.ObligationService
}

func NewFertilizerHandler(obligationService fertilizer.ObligationService) FertilizerHandler {
	return &fertilizerHandlerImpl{obligationService: obligationService}
}

func (h *fertilizerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req fertilizer.CreateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.obligationService.CreateObligation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fertilizer obligation recorded", result)
}

func (h *fertilizerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Obligation ID is required", nil)
		return
	}

	result, err := h.obligationService.GetObligation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fertilizerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := fertilizer.ObligationFilter{
		UnpaidOnly: r.URL.Query().Get("unpaid_only") == "true",
	}
	if factoryID := r.URL.Query().Get("factory_id"); factoryID != "" {
		filter.FactoryID = &factoryID
	}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if method := r.URL.Query().Get("payment_method"); method != "" {
		filter.PaymentMethod = &method
	}

	result, err := h.obligationService.ListObligations(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fertilizerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req fertilizer.UpdateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.obligationService.UpdateObligation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fertilizerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Obligation ID is required", nil)
		return
	}

	if err := h.obligationService.DeleteObligation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fertilizer obligation deleted", nil)
}

func (h *fertilizerHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Obligation ID is required", nil)
		return
	}

	result, err := h.obligationService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fertilizer obligation marked as paid", result)
}

func (h *fertilizerHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.obligationService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fertilizerHandlerImpl) FactorySummary(w http.ResponseWriter, r *http.Request) {
	factoryID := chi.URLParam(r, "factoryId")
	if factoryID == "" {
		response.BadRequest(w, "Factory ID is required", nil)
		return
	}

	result, err := h.obligationService.GetFactorySummary(r.Context(), factoryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
