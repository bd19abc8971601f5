package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appaitest "github.com/kaizen-center/backend/internal/application/aitest"
	appauth "github.com/kaizen-center/backend/internal/application/auth"
	appreports "github.com/kaizen-center/backend/internal/application/reports"
	domai "github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
)

type Router struct {
	reportsSvc *appreports.Service
	aiTestSvc  *appaitest.Service
	authSvc    *appauth.Service
}

func NewRouter(reportsSvc *appreports.Service, aiTestSvc *appaitest.Service, authSvc *appauth.Service) http.Handler {
	r := &Router{reportsSvc: reportsSvc, aiTestSvc: aiTestSvc, authSvc: authSvc}
	mux := chi.NewRouter()

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Route("/api", func(rt chi.Router) {
		rt.Route("/a3-reports", func(rt chi.Router) {
			rt.Post("/generate", r.wrap(r.handleA3Generate))
			rt.Post("/improve-input", r.wrap(r.handleA3ImproveInput))
			rt.Post("/validate-input", r.wrap(r.handleA3ValidateInput))
			rt.Get("/", r.wrap(r.handleA3List))
			rt.Get("/{id}", r.wrap(r.handleA3Get))
			rt.Delete("/{id}", r.wrap(r.handleA3Delete))
		})

		rt.Route("/vsm", func(rt chi.Router) {
			rt.Post("/generate", r.wrap(r.handleVSMGenerate))
			rt.Post("/improve-text", r.wrap(r.handleVSMImproveText))
			rt.Get("/", r.wrap(r.handleVSMList))
			rt.Get("/{id}", r.wrap(r.handleVSMGet))
			rt.Delete("/{id}", r.wrap(r.handleVSMDelete))
		})

		rt.Route("/qfd", func(rt chi.Router) {
			rt.Post("/generate-lists", r.wrap(r.handleQFDGenerateLists))
			rt.Post("/generate-report", r.wrap(r.handleQFDGenerateReport))
			rt.Post("/search-company", r.wrap(r.handleQFDSearchCompany))
			rt.Post("/improve-description", r.wrap(r.handleQFDImproveDescription))
			rt.Get("/", r.wrap(r.handleQFDList))
			rt.Get("/{id}", r.wrap(r.handleQFDGet))
			rt.Delete("/{id}", r.wrap(r.handleQFDDelete))
		})

		rt.Route("/hoshin", func(rt chi.Router) {
			rt.Post("/generate", r.wrap(r.handleHoshinGenerate))
			rt.Post("/improve-input", r.wrap(r.handleHoshinImproveInput))
			rt.Post("/validate", r.wrap(r.handleHoshinValidate))
			rt.Get("/list", r.wrap(r.handleHoshinList))
			rt.Get("/{id}", r.wrap(r.handleHoshinGet))
			rt.Delete("/{id}", r.wrap(r.handleHoshinDelete))
		})

		rt.Route("/ai-test", func(rt chi.Router) {
			rt.Post("/extract-schema", r.wrap(r.handleAITestExtractSchema))
			rt.Post("/generate-report", r.wrap(r.handleAITestGenerateReport))
			rt.Get("/test-templates", r.wrap(r.handleAITestTemplates))
			rt.Post("/test-history", r.wrap(r.handleAITestSaveHistory))
			rt.Get("/test-history", r.wrap(r.handleAITestListHistory))
		})

		rt.Route("/auth", func(rt chi.Router) {
			rt.Post("/login", r.wrap(r.handleLogin))
			rt.Post("/logout", r.wrap(r.handleLogout))
			rt.Get("/session", r.wrap(r.handleSession))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain errors to status codes and a JSON error body.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var ve *reports.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Message, ve.Details)
			return
		}
		if errors.Is(err, reports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "")
			return
		}
		if errors.Is(err, appauth.ErrInvalidCredentials) || errors.Is(err, appauth.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, err.Error(), "")
			return
		}
		if errors.Is(err, domai.ErrQuotaExceeded) {
			writeError(w, http.StatusTooManyRequests, "ai quota exceeded", "")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), "")
	}
}
