// Package webd serves route smoothing over HTTP: POST a GeoJSON
// LineString to /smooth, get the denoised feature back.
package webd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rotblauer/routecat/params"
)

type WebDaemon struct {
	Config *params.WebDaemonConfig
	logger *slog.Logger

	// Smoothing is deterministic, so responses are cached by a hash of
	// (geometry, parameters). TTL keeps the cache from hoarding routes
	// nobody asks about twice.
	cache *ttlcache.Cache[uint64, []byte]
}

func NewWebDaemon(config *params.WebDaemonConfig) *WebDaemon {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	return &WebDaemon{
		Config: config,
		logger: slog.With("d", "web"),
		cache: ttlcache.New[uint64, []byte](
			ttlcache.WithTTL[uint64, []byte](config.CacheTTL)),
	}
}

// Run starts the HTTP server (ListenAndServe) and waits for it,
// returning any server error.
func (s *WebDaemon) Run() error {
	go s.cache.Start()
	listeningOn := fmt.Sprintf("%s:%d", s.Config.NetAddr, s.Config.NetPort)
	s.logger.Info("Starting web daemon", "listen", listeningOn)
	return http.ListenAndServe(listeningOn, s.NewRouter())
}

func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	apiRoutes := router.NewRoute().Subrouter()

	// All API routes use permissive CORS settings.
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong)

	apiJSONRoutes := apiRoutes.NewRoute().Subrouter()
	apiJSONRoutes.Use(contentTypeMiddlewareFunc("application/json"))
	apiJSONRoutes.Path("/smooth").HandlerFunc(s.handleSmooth).Methods(http.MethodPost)

	return router
}
