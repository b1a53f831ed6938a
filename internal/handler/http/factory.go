package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

type FactoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	InitializeDefaults(w http.ResponseWriter, r *http.Request)
}

type factoryHandlerImpl struct {
	factoryService factory.FactoryService
}

func NewFactoryHandler(factoryService factory.FactoryService) FactoryHandler {
	return &factoryHandlerImpl{factoryService: factoryService}
}

func (h *factoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req factory.CreateFactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.factoryService.CreateFactory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Factory created", result)
}

func (h *factoryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Factory ID is required", nil)
		return
	}

	result, err := h.factoryService.GetFactory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *factoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.factoryService.ListFactories(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *factoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req factory.UpdateFactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.factoryService.UpdateFactory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *factoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Factory ID is required", nil)
		return
	}

	if err := h.factoryService.DeleteFactory(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Factory deleted", nil)
}

func (h *factoryHandlerImpl) InitializeDefaults(w http.ResponseWriter, r *http.Request) {
	result, err := h.factoryService.InitializeDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Default factories initialized", result)
}
