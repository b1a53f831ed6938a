package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/bonus"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	FactorySummary(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	receiptService bonus.ReceiptService
}

func NewBonusHandler(receiptService bonus.ReceiptService) BonusHandler {
	return &bonusHandlerImpl{receiptService: receiptService}
}

func (h *bonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.receiptService.CreateReceipt(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus receipt recorded", result)
}

func (h *bonusHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Receipt ID is required", nil)
		return
	}

	result, err := h.receiptService.GetReceipt(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter bonus.ReceiptFilter
	if factoryID := r.URL.Query().Get("factory_id"); factoryID != "" {
		filter.FactoryID = &factoryID
	}
	if period := r.URL.Query().Get("period"); period != "" {
		filter.Period = &period
	}
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &year
	}

	result, err := h.receiptService.ListReceipts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req bonus.UpdateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.receiptService.UpdateReceipt(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Receipt ID is required", nil)
		return
	}

	if err := h.receiptService.DeleteReceipt(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus receipt deleted", nil)
}

func (h *bonusHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.receiptService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	if period == "" {
		response.BadRequest(w, "Period is required", nil)
		return
	}

	result, err := h.receiptService.GetPeriodSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) FactorySummary(w http.ResponseWriter, r *http.Request) {
	factoryID := chi.URLParam(r, "factoryId")
	if factoryID == "" {
		response.BadRequest(w, "Factory ID is required", nil)
		return
	}

	result, err := h.receiptService.GetFactorySummary(r.Context(), factoryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
