// Package adapthttp is the driving HTTP adapter: JSON API plus the
// static pages served from disk.
package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"bracelet/internal/app"
)

// Server routes requests to the application services.
type Server struct {
	calendar *app.CalendarService
	predict  *app.PredictService
	webDir   string
	logger   *zap.Logger
}

// New creates a Server wired to the given application services. A nil
// logger disables request logging.
func New(cs *app.CalendarService, ps *app.PredictService, webDir string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{calendar: cs, predict: ps, webDir: webDir, logger: logger}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/convert/solar-to-lunar", s.handleSolarToLunar)
	api.HandleFunc("/convert/lunar-to-solar", s.handleLunarToSolar)
	api.HandleFunc("/calculate/eight-characters", s.handleEightCharacters)

	api.HandleFunc("/predict/fortune", s.handlePredictFortune)
	api.HandleFunc("/test/deepseek", s.handleEnrichmentStatus)

	api.HandleFunc("/share", s.handleCreateShare)
	api.HandleFunc("/share/", s.handleGetShare)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
