package adapthttp

import (
	"net/http"

	"bracelet/internal/domain"
)

func (s *Server) handlePredictFortune(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	subj := domain.Subject{
		BirthHour: 12,
		Purpose:   "财运",
		Religion:  "无",
	}
	if err := parseJSON(r, &subj); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.predict.Predict(r.Context(), subj)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEnrichmentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.predict.EnrichmentStatus(r.Context()))
}
