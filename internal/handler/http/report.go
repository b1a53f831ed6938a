package http

import (
	"net/http"

	"github.com/sambu-farm/farm-backend-go/internal/domain/report"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	MonthlyProduction(w http.ResponseWriter, r *http.Request)
	ProfitSummary(w http.ResponseWriter, r *http.Request)
	OutstandingMoney(w http.ResponseWriter, r *http.Request)
	WorkerActivity(w http.ResponseWriter, r *http.Request)
	ExportPayrollExcel(w http.ResponseWriter, r *http.Request)
	ExportPayrollPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.GetDashboard(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) MonthlyProduction(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.GetMonthlyProduction(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) ProfitSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.GetProfitSummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) OutstandingMoney(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetOutstandingMoney(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) WorkerActivity(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reportService.GetWorkerActivity(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) ExportPayrollExcel(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	data, filename, err := h.reportService.ExportPayrollExcel(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *reportHandlerImpl) ExportPayrollPDF(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	data, filename, err := h.reportService.ExportPayrollPDF(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, data, filename, "application/pdf")
}
