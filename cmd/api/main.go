package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trip-planner/config"
	_ "trip-planner/docs" // Swagger docs
	"trip-planner/internal/httpserver"
	itineraryUC "trip-planner/internal/itinerary/usecase"
	"trip-planner/internal/model"
	placeUC "trip-planner/internal/place/usecase"
	"trip-planner/pkg/datemath"
	"trip-planner/pkg/gcalendar"
	"trip-planner/pkg/gemini"
	"trip-planner/pkg/geocache"
	"trip-planner/pkg/geocoding"
	"trip-planner/pkg/googleplaces"
	"trip-planner/pkg/log"
	"trip-planner/pkg/nominatim"
	"trip-planner/pkg/placeprovider"
	"trip-planner/pkg/ratelimit"
	"trip-planner/pkg/webtext"
)

// @title       Trip Planner API
// @description Itinerary parsing, screenshot and URL import, place resolution and calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to read .env: ", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Trip Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Place domain
	cache, err := newGeocache(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize geocode cache: ", err)
		return
	}
	var provider placeprovider.Provider
	if chain := newProviderChain(ctx, cfg, logger, cache); chain.Len() > 0 {
		provider = chain
	} else {
		logger.Warn(ctx, "No place providers configured, resolution requests will return 503")
	}
	throttle := ratelimit.NewThrottle(cfg.Search.ThrottleWindow, cfg.Search.MaxClients)
	placeUseCase := placeUC.New(logger, provider, throttle)

	// 4. Itinerary domain
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	var llm gemini.Generator
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		geminiClient.SetModel(cfg.Gemini.Model)
		geminiClient.SetTimeout(cfg.Gemini.Timeout)
		llm = gemini.WithRetry(geminiClient, cfg.Gemini.RetryAttempts, cfg.Gemini.RetryDelay)
		logger.Info(ctx, "Gemini initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, screenshot and URL import are disabled")
	}

	var calendar itineraryUC.CalendarWriter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	fetcher := webtext.NewFetcher(cfg.Import.FetchTimeout, cfg.Import.FetchMaxBytes, cfg.Import.PageMaxChars)
	itineraryUseCase := itineraryUC.New(logger, llm, fetcher, calendar, dates, itineraryUC.Options{
		CalendarID:        cfg.GoogleCalendar.CalendarID,
		MaxTextChars:      cfg.Import.MaxTextChars,
		MaxScreenshots:    cfg.Import.MaxScreenshots,
		MaxImageBytes:     cfg.Import.MaxImageBytes,
		MaxImageDimension: cfg.Import.MaxImageDimension,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		MaxBodyBytes:     cfg.HTTPServer.MaxBodyBytes,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		PlaceUseCase:     placeUseCase,
		ItineraryUseCase: itineraryUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// newGeocache builds the cache shared by the geocoding-stage providers.
func newGeocache(ctx context.Context, cfg *config.Config, l log.Logger) (geocache.Cache[[]model.PlaceCandidate], error) {
	if cfg.Geocache.Backend != config.GeocacheBackendRedis {
		l.Infof(ctx, "Geocode cache: in-memory LRU (size=%d ttl=%s)", cfg.Geocache.Size, cfg.Geocache.TTL)
		return geocache.NewLRU[[]model.PlaceCandidate](cfg.Geocache.Size, cfg.Geocache.TTL), nil
	}

	client, err := geocache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Geocode cache: redis at %s (ttl=%s)", cfg.Redis.Addr, cfg.Geocache.TTL)
	return geocache.NewRedis[[]model.PlaceCandidate](client, cfg.Redis.Prefix, cfg.Geocache.TTL, l), nil
}

// newProviderChain orders providers as Places first, then Google Geocoding
// with Nominatim as its fallback. Only providers with credentials are added.
func newProviderChain(ctx context.Context, cfg *config.Config, l log.Logger, cache geocache.Cache[[]model.PlaceCandidate]) *placeprovider.Chain {
	var primary, fallback []placeprovider.Provider

	if cfg.Places.APIKey != "" {
		client := googleplaces.NewClient(cfg.Places.APIKey)
		client.SetLocale(cfg.Places.LanguageCode, cfg.Places.RegionCode)
		client.SetTimeout(cfg.Places.Timeout)
		primary = append(primary, placeprovider.WithMetrics(placeprovider.NewPlaces(client)))
		l.Info(ctx, "Place provider enabled: google_places")
	}

	if cfg.Geocoding.APIKey != "" {
		client := geocoding.NewClient(cfg.Geocoding.APIKey)
		client.SetLanguage(cfg.Geocoding.Language)
		client.SetTimeout(cfg.Geocoding.Timeout)
		fallback = append(fallback, placeprovider.WithCache(placeprovider.WithMetrics(placeprovider.NewGeocoding(client)), cache))
		l.Info(ctx, "Place provider enabled: google_geocoding")
	}

	if cfg.Nominatim.Enabled {
		client := nominatim.NewClient(cfg.Nominatim.UserAgent)
		client.SetAPIURL(cfg.Nominatim.URL)
		client.SetEmail(cfg.Nominatim.Email)
		client.SetLanguage(cfg.Nominatim.Language)
		client.SetMinInterval(cfg.Nominatim.MinInterval)
		client.SetTimeout(cfg.Nominatim.Timeout)
		fallback = append(fallback, placeprovider.WithCache(placeprovider.WithMetrics(placeprovider.NewNominatim(client)), cache))
		l.Infof(ctx, "Place provider enabled: nominatim (spacing %s)", cfg.Nominatim.MinInterval)
	}

	return placeprovider.NewChain(primary, fallback)
}
