package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		PredictionID string `json:"predictionId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.PredictionID == "" {
		writeError(w, http.StatusBadRequest, errors.New("predictionId is required"))
		return
	}
	shareID, err := s.predict.Share(r.Context(), body.PredictionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"shareId":  shareID,
		"shareUrl": fmt.Sprintf("%s://%s/share?id=%s", scheme, r.Host, shareID),
	})
}

func (s *Server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	shareID := strings.TrimPrefix(r.URL.Path, "/share/")
	if shareID == "" || strings.Contains(shareID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	result, err := s.predict.SharedPrediction(r.Context(), shareID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
