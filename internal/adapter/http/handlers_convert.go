package adapthttp

import "net/http"

func (s *Server) handleSolarToLunar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.calendar.SolarToLunar(body.Year, body.Month, body.Day)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLunarToSolar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Year        int  `json:"year"`
		Month       int  `json:"month"`
		Day         int  `json:"day"`
		IsLeapMonth bool `json:"isLeapMonth"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.calendar.LunarToSolar(body.Year, body.Month, body.Day, body.IsLeapMonth)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEightCharacters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Noon is the fallback when the birth hour is unknown.
	body := struct {
		Year    int  `json:"year"`
		Month   int  `json:"month"`
		Day     int  `json:"day"`
		Hour    int  `json:"hour"`
		IsLunar bool `json:"isLunar"`
	}{Hour: 12}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pillars, err := s.calendar.EightCharacters(body.Year, body.Month, body.Day, body.Hour, body.IsLunar)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pillars)
}
