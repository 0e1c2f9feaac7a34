package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Kupenya/landPage/internal/infra/http/middleware"
	"github.com/Kupenya/landPage/internal/usecase"
)

type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{SubmitLeadUC: uc}
}

// SubmitEmail handles POST /api/submit-email.
func (h *LeadHandler) SubmitEmail(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		log.Printf("❌ submit-email failed: %v", err)
		status, code, message := statusForError(err)
		writeErrorResponse(w, status, code, message)
		return
	}

	middleware.RecordLeadCaptured(sourceOrDefault(input.Source))
	writeJSON(w, http.StatusOK, output)
}

func sourceOrDefault(source string) string {
	if source == "" {
		return "landing-page"
	}
	return source
}
