package http

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sambu-farm/farm-backend-go/internal/domain/importer"
	"github.com/sambu-farm/farm-backend-go/internal/handler/http/response"
)

// maxImportSize caps uploaded workbooks at 10 MiB.
const maxImportSize = 10 << 20

type ImportHandler interface {
	ImportFieldBook(w http.ResponseWriter, r *http.Request)
	ImportWorkers(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(importService importer.ImportService) ImportHandler {
	return &importHandlerImpl{importService: importService}
}

func (h *importHandlerImpl) ImportFieldBook(w http.ResponseWriter, r *http.Request) {
	file, err := h.workbookFromRequest(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		month = m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = y
	}

	summary, err := h.importService.ImportFieldBook(r.Context(), file, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Field book imported", summary)
}

func (h *importHandlerImpl) ImportWorkers(w http.ResponseWriter, r *http.Request) {
	file, err := h.workbookFromRequest(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportWorkers(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workers imported", summary)
}

// workbookFromRequest pulls the multipart "file" field and rejects anything
// that is not an .xlsx upload. It writes the error response itself.
func (h *importHandlerImpl) workbookFromRequest(w http.ResponseWriter, r *http.Request) (multipart.File, error) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File field is required", nil)
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		file.Close()
		response.HandleError(w, importer.ErrInvalidFile)
		return nil, importer.ErrInvalidFile
	}

	return file, nil
}
