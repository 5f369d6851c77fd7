package main

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "review_radar/internal/adapters/http_server"
	"review_radar/internal/adapters/observability"
	redisad "review_radar/internal/adapters/redis"
	"review_radar/internal/app"
	"review_radar/internal/dataset"
	"review_radar/internal/domain"
	"review_radar/internal/sentiment"
	"review_radar/internal/shared"
	"review_radar/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// seed store from the dataset; a broken dataset is fatal
	seed, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("dataset load failed")
	}
	store := memory.New(seed)
	observability.ReviewsStored.Set(float64(store.Len()))
	log.Info().Int("reviews", store.Len()).Msg("store seeded")

	// deps
	scorer := sentiment.NewAnalyzer()
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	q := app.NewQueryService(store, scorer, cache, cfg.CacheTTL)
	s := app.NewSubmissionService(store, scorer, clockwork.NewRealClock())

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:           q,
		S:           s,
		SubmitLimit: rate.NewLimiter(rate.Limit(cfg.SubmitRPS), cfg.SubmitBurst),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
