// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sofia/internal/ai"
	"sofia/internal/config"
	httptransport "sofia/internal/http"
	"sofia/internal/infra"
	"sofia/internal/maps"
	"sofia/internal/modules/chat"
	"sofia/internal/modules/intent"
	"sofia/internal/modules/session"
	"sofia/internal/modules/stats"
	"sofia/internal/travel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := infra.NewLogger(os.Getenv("SOFIA_DEBUG") != "")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer llm.Close()

	sessionStore := session.NewRedisStore(redisClient, cfg.Redis.SessionTTL)
	sessions := session.NewService(sessionStore)

	recorder := stats.NewRecorder()

	weatherSvc := travel.NewWeatherService(cfg.Travel.OpenWeatherKey, "")
	countrySvc := travel.NewCountryService("")

	deps := chat.Deps{
		Classifier: intent.NewDefaultClassifier(),
		Sessions:   sessions,
		LLM:        llm,
		Weather:    weatherSvc,
		Country:    countrySvc,
		History:    chat.NewStore(dbPool),
		Stats:      recorder,
		Logger:     logger,
	}
	if cfg.Travel.MapsKey != "" {
		places, err := maps.NewPlacesService(cfg.Travel.MapsKey)
		if err != nil {
			logger.Fatal("places init", zap.Error(err))
		}
		deps.Sights = places
	}
	chatSvc := chat.NewService(deps)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Chat:          chatSvc,
		Sessions:      sessions,
		Stats:         recorder,
		Logger:        logger,
		MaxMessageLen: cfg.Chat.MaxMessageLen,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go runStatsSummary(ctx, logger, recorder)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}

// runStatsSummary periodically logs a one-line usage summary.
func runStatsSummary(ctx context.Context, logger *zap.Logger, recorder *stats.Recorder) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := recorder.Current()
			logger.Info("usage summary",
				zap.Int64("requests", snap.Requests),
				zap.Int64("fallbacks", snap.Fallbacks),
				zap.Int64("avg_latency_ms", snap.AvgLatencyMs),
			)
		}
	}
}
