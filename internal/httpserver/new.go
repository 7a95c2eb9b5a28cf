package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/place"
	"trip-planner/pkg/log"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	maxBodyBytes    int64
	shutdownTimeout time.Duration

	// Domains
	placeUC     place.UseCase
	itineraryUC itinerary.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration

	PlaceUseCase     place.UseCase
	ItineraryUseCase itinerary.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		maxBodyBytes:    cfg.MaxBodyBytes,
		shutdownTimeout: cfg.ShutdownTimeout,
		placeUC:         cfg.PlaceUseCase,
		itineraryUC:     cfg.ItineraryUseCase,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.placeUC == nil {
		return errors.New("place usecase is required")
	}
	if srv.itineraryUC == nil {
		return errors.New("itinerary usecase is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
