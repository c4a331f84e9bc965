package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/Prasun6736/Ai-image-Checker/internal/application/analysis"
	appstatus "github.com/Prasun6736/Ai-image-Checker/internal/application/status"
	domai "github.com/Prasun6736/Ai-image-Checker/internal/domain/ai"
	domstatus "github.com/Prasun6736/Ai-image-Checker/internal/domain/status"
	"github.com/Prasun6736/Ai-image-Checker/internal/middleware"
)

type Router struct {
	analysisSvc *appanalysis.Service
	statusSvc   *appstatus.Service
}

type Options struct {
	AllowedOrigins []string
	HealthCheckers map[string]middleware.HealthChecker
}

func NewRouter(analysisSvc *appanalysis.Service, statusSvc *appstatus.Service, opts Options) http.Handler {
	rt := &Router{analysisSvc: analysisSvc, statusSvc: statusSvc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	mux.Get("/healthz", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/", rt.wrap(rt.handleRoot))
		r.Post("/status", rt.wrap(rt.handleCreateStatus))
		r.Get("/status", rt.wrap(rt.handleListStatus))
		r.Post("/analyze-image", rt.wrap(rt.handleAnalyzeImage))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// httpError carries an explicit status + detail for the response body.
type httpError struct {
	status int
	detail string
}

func (e *httpError) Error() string { return e.detail }

func validationError(detail string) *httpError {
	return &httpError{status: http.StatusUnprocessableEntity, detail: detail}
}

func (rt *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var he *httpError
		if !errors.As(err, &he) {
			he = &httpError{status: http.StatusInternalServerError, detail: err.Error()}
		}
		if he.status >= http.StatusInternalServerError {
			log.Printf("error: %s %s: %s", req.Method, req.URL.Path, he.detail)
		}
		writeJSON(w, he.status, map[string]string{"detail": he.detail})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/
func (rt *Router) handleRoot(w http.ResponseWriter, req *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
	return nil
}

// POST /api/status
// Body: {"client_name": "<name>"}
func (rt *Router) handleCreateStatus(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ClientName string `json:"client_name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return validationError("invalid request body")
	}
	if body.ClientName == "" {
		return validationError("client_name is required")
	}

	check, err := rt.statusSvc.Create(req.Context(), body.ClientName)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, check)
	return nil
}

// GET /api/status
func (rt *Router) handleListStatus(w http.ResponseWriter, req *http.Request) error {
	list, err := rt.statusSvc.List(req.Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domstatus.StatusCheck{}
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}

type analyzeResponse struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	Details    string  `json:"details"`
}

// POST /api/analyze-image
// Body: {"image_base64": "<raw base64 or data URL>"}
func (rt *Router) handleAnalyzeImage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ImageBase64 string `json:"image_base64"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return validationError("invalid request body")
	}
	if body.ImageBase64 == "" {
		return validationError("image_base64 is required")
	}

	a, err := rt.analysisSvc.Analyze(req.Context(), appanalysis.AnalyzeCommand{ImageBase64: body.ImageBase64})
	if err != nil {
		middleware.IncrementAnalysesFailed()
		if errors.Is(err, domai.ErrMissingAPIKey) {
			return &httpError{status: http.StatusInternalServerError, detail: "API key not configured"}
		}
		return &httpError{status: http.StatusInternalServerError, detail: "Analysis failed: " + err.Error()}
	}
	middleware.IncrementAnalyses()

	writeJSON(w, http.StatusOK, analyzeResponse{
		Verdict:    string(a.Verdict),
		Confidence: a.Confidence,
		Details:    a.Details,
	})
	return nil
}
