package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"faqbot/internal/handlers"
	"faqbot/internal/service"
	"faqbot/internal/vectorstore"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "FAQ ChatBot API"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	FAQService     service.FAQService
	DB             handlers.Pinger
	Index          handlers.IndexState
	Rebuilder      service.IndexRebuilder
	VectorStore    vectorstore.IndexStore // nil when export is disabled
	Collection     string
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.AllowedOrigins))

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	faqHandler := handlers.NewFAQHandler(deps.FAQService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Index, deps.VectorStore, deps.Collection)
	indexHandler := handlers.NewIndexHandler(deps.Rebuilder, deps.Index)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true,"service":"` + ServiceName + `"}` + "\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodPost, "/chat/query", chatHandler)
		r.Method(http.MethodPost, "/index/rebuild", indexHandler)
		r.Route("/faq", faqHandler.Routes)
	})

	r.Method(http.MethodGet, "/faq/{id}", handlers.NewFAQPageHandler(deps.FAQService))

	return r
}
