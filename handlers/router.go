package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/services"
)

// RouterOptions carries everything NewRouter wires into the HTTP surface.
type RouterOptions struct {
	Directory repository.Directory
	People    repository.PersonRepositoryInterface
	Companies repository.CompanyRepositoryInterface
	// Refresh runs after each successful write; nil when reads hit the database directly.
	Refresh   RefreshFunc

	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the chi router serving the API, metrics and health endpoints.
func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	if len(opts.AllowedOrigins) > 0 {
		corsHandler := cors.New(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		})
		r.Use(corsHandler.Handler)
	}

	queries := services.NewQueryService(opts.Directory)
	personHandler := &PersonHandler{Queries: queries, People: opts.People, Refresh: opts.Refresh}
	companyHandler := &CompanyHandler{Queries: queries, Companies: opts.Companies, People: opts.People, Refresh: opts.Refresh}

	r.Route("/api", func(r chi.Router) {
		r.Route("/people", func(r chi.Router) {
			r.Get("/", personHandler.ListPeople)
			r.Post("/", personHandler.CreatePerson)
			r.Route("/{index}", func(r chi.Router) {
				r.Get("/", personHandler.GetPerson)
				r.Get("/common_friends/{friend_index}", personHandler.CommonFriends)
				r.Get("/foods", personHandler.Foods)
			})
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.ListCompanies)
			r.Post("/", companyHandler.CreateCompany)
			r.Route("/{company_id}", func(r chi.Router) {
				r.Get("/", companyHandler.GetCompany)
				r.Get("/employees", companyHandler.ListEmployees)
				r.Post("/employees", companyHandler.CreateEmployee)
			})
		})
	})

	r.Get("/healthz", Health)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
