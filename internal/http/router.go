package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"briefly-ai/internal/handlers"
	"briefly-ai/internal/service"
	"briefly-ai/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	SummaryService  service.SummaryService
	CustomerService service.CustomerService
	VectorStore     vectorstore.VectorStore
	Generator       handlers.GenerationHealthChecker
	CollectionName  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	summarizeHandler := handlers.NewSummarizeHandler(deps.SummaryService)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.Generator, deps.CollectionName)
	customerHandler := handlers.NewCustomerHandler(deps.CustomerService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/summarize", summarizeHandler)
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/", customerHandler.List)
			r.Post("/search", customerHandler.Search)
			r.Get("/stats", customerHandler.Stats)
			r.Get("/{id}", customerHandler.Get)
			r.Delete("/{id}", customerHandler.Delete)
		})
	})

	r.Get("/", handlers.Info)

	return r
}
