package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	router "github.com/RaulLeite2/AbyssConect/internal/adapters/http"
	"github.com/RaulLeite2/AbyssConect/internal/accounts"
	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/config"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
	"github.com/RaulLeite2/AbyssConect/internal/pubsub"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	registry := app.NewRegistry()
	rooms := app.NewRoomManager()
	rooms.Seed(seedRooms(cfg.Rooms))
	streams := app.NewStreamRegistry()
	convos := app.NewConversationStore(cfg.HistoryMaxMessages)

	orch := app.NewOrchestrator(registry, rooms, streams, convos)

	if cfg.RedisURL != "" {
		pub, err := pubsub.NewPublisher(cfg.RedisURL, cfg.RedisChannel)
		if err != nil {
			log.Error().Err(err).Msg("failed to connect redis, event mirror disabled")
		} else {
			defer pub.Close()
			orch.Sink = pub
		}
	}

	var auth *accounts.Service
	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Error().Err(err).Msg("failed to connect database")
			os.Exit(1)
		}
		repo := accounts.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			log.Error().Err(err).Msg("failed to migrate accounts")
			os.Exit(1)
		}
		tokens := accounts.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, "abyssconect")
		auth = accounts.NewService(repo, tokens)
	} else {
		log.Info().Msg("no database configured, account endpoints disabled")
	}

	r := router.SetupRouter(ctx, cfg, orch, auth)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("AbyssConect server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	orch.Shutdown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

func seedRooms(seeds []config.SeedRoom) []*domain.Room {
	out := make([]*domain.Room, 0, len(seeds))
	for _, s := range seeds {
		id := s.ID
		if id == "" {
			id = domain.GenerateShortID()
		}
		out = append(out, &domain.Room{
			ID:    domain.RoomID(id),
			Name:  s.Name,
			Limit: s.Limit,
		})
	}
	return out
}
