package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/wealthpath/finance-tracker/internal/apperror"
	"github.com/wealthpath/finance-tracker/internal/service"
)

// MaxImportSize bounds the size of an uploaded backup.
const MaxImportSize = 10 << 20

type BackupHandler struct {
	service BackupServiceInterface
	now     service.Clock
}

// NewBackupHandler names export downloads after the date clock reports.
// A nil clock means time.Now.
func NewBackupHandler(svc BackupServiceInterface, clock service.Clock) *BackupHandler {
	if clock == nil {
		clock = time.Now
	}
	return &BackupHandler{service: svc, now: clock}
}

// ImportResponse reports how many records of each kind were loaded.
type ImportResponse struct {
	Debts      int `json:"debts"`
	FixedBills int `json:"fixedBills"`
	Incomes    int `json:"incomes"`
}

// Export godoc
// @Summary Export backup
// @Description Download debts, fixed bills and incomes as a JSON file
// @Tags backup
// @Produce json
// @Success 200 {object} backup.ExportData
// @Failure 500 {object} ErrorResponse
// @Router /backup/export [get]
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportJSON(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("finance-backup-%s.json", h.now().Format("2006-01-02"))
	respondFile(w, "application/json", filename, data)
}

// Import godoc
// @Summary Import backup
// @Description Replace debts, fixed bills and incomes with the contents of a backup file.
// @Description The body is either the raw JSON or a multipart form with a "file" field.
// @Tags backup
// @Accept json
// @Accept mpfd
// @Produce json
// @Param file formData file false "Backup file"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /backup/import [post]
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImportSize)

	raw, err := readImport(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "backup file too large")
			return
		}
		respondAppError(w, apperror.ValidationError("file", "could not read backup file"))
		return
	}

	data, err := h.service.Import(r.Context(), raw)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ImportResponse{
		Debts:      len(data.Debts),
		FixedBills: len(data.FixedBills),
		Incomes:    len(data.Incomes),
	})
}

func readImport(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(MaxImportSize); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
