package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Kupenya/landPage/internal/infra/http/middleware"
	"github.com/Kupenya/landPage/internal/usecase"
)

type DownloadHandler struct {
	ValidateTokenUC *usecase.ValidateTokenUseCase
	TrackDownloadUC *usecase.TrackDownloadUseCase
	DownloadEbookUC *usecase.DownloadEbookUseCase
}

func NewDownloadHandler(
	validateUC *usecase.ValidateTokenUseCase,
	trackUC *usecase.TrackDownloadUseCase,
	downloadUC *usecase.DownloadEbookUseCase,
) *DownloadHandler {
	return &DownloadHandler{
		ValidateTokenUC: validateUC,
		TrackDownloadUC: trackUC,
		DownloadEbookUC: downloadUC,
	}
}

// Validate handles GET /api/validate-download?token=...
// The response shape is what the download page polls for, so error statuses
// still carry a {valid:false} body rather than the generic error envelope.
func (h *DownloadHandler) Validate(w http.ResponseWriter, r *http.Request) {
	downloadToken := r.URL.Query().Get("token")

	output, err := h.ValidateTokenUC.Execute(r.Context(), downloadToken)
	if err != nil {
		status, code, _ := statusForError(err)
		if usecase.IsTechnicalError(err) {
			log.Printf("❌ validate-download failed: %v", err)
			writeJSON(w, status, map[string]any{"valid": false, "error": "Validation failed"})
			return
		}
		body := map[string]any{"valid": false}
		if code == usecase.CodeTokenExpired {
			body["expired"] = true
		}
		writeJSON(w, status, body)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// Track handles POST /api/track-download?token=...
func (h *DownloadHandler) Track(w http.ResponseWriter, r *http.Request) {
	downloadToken := r.URL.Query().Get("token")

	output, err := h.TrackDownloadUC.Execute(r.Context(), downloadToken)
	if err != nil {
		log.Printf("❌ track-download failed: %v", err)
		status, code, message := statusForError(err)
		writeErrorResponse(w, status, code, message)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type downloadRequest struct {
	Token string `json:"token"`
}

// Download handles POST /api/download-ebook with a JSON {token} body and
// streams the PDF on success.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.DownloadEbookUC.Execute(r.Context(), req.Token)
	if err != nil {
		log.Printf("❌ download-ebook failed: %v", err)
		status, code, message := statusForError(err)
		writeErrorResponse(w, status, code, message)
		return
	}

	middleware.RecordDownload()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(output.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(output.Data)
}
