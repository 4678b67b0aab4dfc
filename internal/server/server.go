package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlexTLDR/phonenorm/internal/config"
	"github.com/AlexTLDR/phonenorm/internal/country"
	"github.com/AlexTLDR/phonenorm/internal/logger"
	"github.com/AlexTLDR/phonenorm/internal/metrics"
	"github.com/AlexTLDR/phonenorm/internal/phone"
	"github.com/AlexTLDR/phonenorm/internal/server/handlers"
)

type Server struct {
	config       *config.Config
	store        handlers.ContactStore
	registry     *country.Registry
	parser       *phone.Parser
	fallback     *country.Country
	logger       *logger.Logger
	metrics      *metrics.PhoneMetrics
	gatherer     prometheus.Gatherer
	sessionStore *sessions.CookieStore
	router       *http.ServeMux
	handler      http.Handler
}

// GetStore implements handlers.Server interface
func (s *Server) GetStore() handlers.ContactStore {
	return s.store
}

// GetConfig implements handlers.Server interface
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// GetRegistry implements handlers.Server interface
func (s *Server) GetRegistry() *country.Registry {
	return s.registry
}

// GetParser implements handlers.Server interface
func (s *Server) GetParser() *phone.Parser {
	return s.parser
}

// GetLogger implements handlers.Server interface
func (s *Server) GetLogger() *logger.Logger {
	return s.logger
}

// GetMetrics implements handlers.Server interface
func (s *Server) GetMetrics() *metrics.PhoneMetrics {
	return s.metrics
}

// New builds the server. Metrics are registered on reg, or on the default
// Prometheus registry when reg is nil.
func New(cfg *config.Config, store handlers.ContactStore, log *logger.Logger, reg *prometheus.Registry) (*Server, error) {
	registry := country.Default()

	fallback, err := registry.ByName(cfg.DefaultCountry)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_COUNTRY: %w", err)
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		config:       cfg,
		store:        store,
		registry:     registry,
		parser:       phone.NewParser(registry),
		fallback:     fallback,
		logger:       log,
		metrics:      metrics.NewPhoneMetrics(registerer),
		gatherer:     gatherer,
		sessionStore: sessionStore,
		router:       http.NewServeMux(),
	}

	s.setupRoutes()
	s.handler = s.logRequests(s.router)
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /healthz", handlers.HandleHealth())
	s.router.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	// Phone numbers
	s.router.HandleFunc("GET /api/countries", handlers.HandleCountries(s))
	s.router.HandleFunc("POST /api/phones/parse", handlers.HandleParse(s))
	s.router.HandleFunc("POST /api/phones/compose", handlers.HandleCompose(s))
	s.router.HandleFunc("GET /api/phones/format", handlers.HandleFormat(s))

	// Preferences
	s.router.HandleFunc("GET /api/preferences/country", handlers.HandleGetPreferredCountry(s))
	s.router.HandleFunc("PUT /api/preferences/country", handlers.HandlePutPreferredCountry(s))

	// Contacts
	s.router.HandleFunc("GET /api/contacts", handlers.HandleListContacts(s))
	s.router.HandleFunc("POST /api/contacts", handlers.HandleCreateContact(s))
	s.router.HandleFunc("GET /api/contacts/search", handlers.HandleSearchContacts(s))
	s.router.HandleFunc("GET /api/contacts/export.csv", handlers.HandleExportCSV(s))
	s.router.HandleFunc("GET /api/contacts/{id}", handlers.HandleGetContact(s))
	s.router.HandleFunc("PUT /api/contacts/{id}", handlers.HandleUpdateContact(s))
	s.router.HandleFunc("DELETE /api/contacts/{id}", handlers.HandleDeleteContact(s))
}

// ServeHTTP serves a request through the logging middleware.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
