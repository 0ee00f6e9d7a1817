package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	battlechannel "github.com/tavernkeep/companion-api/internal/battle"
	"github.com/tavernkeep/companion-api/internal/config"
	"github.com/tavernkeep/companion-api/internal/handlers/ws"
	abilityorch "github.com/tavernkeep/companion-api/internal/orchestrators/ability"
	battleorch "github.com/tavernkeep/companion-api/internal/orchestrators/battle"
	combatorch "github.com/tavernkeep/companion-api/internal/orchestrators/combat"
	missionorch "github.com/tavernkeep/companion-api/internal/orchestrators/mission"
	profileorch "github.com/tavernkeep/companion-api/internal/orchestrators/profile"
	"github.com/tavernkeep/companion-api/internal/pkg/dice"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
	abilityrepo "github.com/tavernkeep/companion-api/internal/repositories/ability"
	enemyrepo "github.com/tavernkeep/companion-api/internal/repositories/enemy"
	grantrepo "github.com/tavernkeep/companion-api/internal/repositories/grant"
	itemrepo "github.com/tavernkeep/companion-api/internal/repositories/item"
	missionrepo "github.com/tavernkeep/companion-api/internal/repositories/mission"
	npcrepo "github.com/tavernkeep/companion-api/internal/repositories/npc"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
	userrepo "github.com/tavernkeep/companion-api/internal/repositories/user"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the websocket gateway server",
	Long:  `Start the companion API server: redis-backed storage, domain orchestrators, the battle broadcast channel, and the browser-facing websocket gateway.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		UseTLS: cfg.RedisUseTLS,
	})
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	handler, channel, err := wire(ctx, cfg, client)
	if err != nil {
		return err
	}
	defer channel.Close() //nolint:errcheck

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := client.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr, "channel", cfg.BattleChannel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timed out, closing", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// wire builds the repository, orchestrator, and gateway graph and opens
// the battle channel
func wire(ctx context.Context, cfg *config.Config, client redisclient.Client) (*ws.Handler, *battlechannel.Channel, error) {
	profileRepo, err := profilerepo.NewRedis(&profilerepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	abilityRepo, err := abilityrepo.NewRedis(&abilityrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	grantRepo, err := grantrepo.NewRedis(&grantrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	enemyRepo, err := enemyrepo.NewRedis(&enemyrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	missionRepo, err := missionrepo.NewRedis(&missionrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	itemRepo, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	npcRepo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	userRepo, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}

	abilities, err := abilityorch.NewOrchestrator(&abilityorch.Config{
		ProfileRepo: profileRepo,
		AbilityRepo: abilityRepo,
		GrantRepo:   grantRepo,
	})
	if err != nil {
		return nil, nil, err
	}

	combat, err := combatorch.NewOrchestrator(&combatorch.Config{
		ProfileRepo:    profileRepo,
		GrantRepo:      grantRepo,
		AbilityService: abilities,
		Roller:         dice.NewToolkitRoller(),
	})
	if err != nil {
		return nil, nil, err
	}

	missions, err := missionorch.NewOrchestrator(&missionorch.Config{
		MissionRepo: missionRepo,
		ProfileRepo: profileRepo,
		IDGenerator: idgen.NewUUID("mission"),
	})
	if err != nil {
		return nil, nil, err
	}

	profiles, err := profileorch.NewOrchestrator(&profileorch.Config{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
		GrantRepo:   grantRepo,
		ItemRepo:    itemRepo,
		NPCRepo:     npcRepo,
		IDGenerator: &idgen.RandomNumber{},
	})
	if err != nil {
		return nil, nil, err
	}

	coordinator, err := battlechannel.NewCoordinator(&battlechannel.Config{
		Client:      client,
		ChannelName: cfg.BattleChannel,
	})
	if err != nil {
		return nil, nil, err
	}

	channel := coordinator.Channel()
	if err := channel.Open(ctx); err != nil {
		return nil, nil, err
	}

	battles, err := battleorch.NewOrchestrator(&battleorch.Config{
		EnemyRepo:   enemyRepo,
		Roster:      battlechannel.NewRoster(),
		Channel:     channel,
		IDGenerator: idgen.NewUUID("enemy"),
	})
	if err != nil {
		_ = channel.Close()
		return nil, nil, err
	}

	hub := ws.NewHub()
	if err := channel.Listen(ctx, func(e *battlechannel.BattleEvent) {
		hub.BroadcastBattleEvent(ctx, e)
	}); err != nil {
		_ = channel.Close()
		return nil, nil, err
	}

	handler, err := ws.NewHandler(&ws.Config{
		Profiles:  profiles,
		Abilities: abilities,
		Combat:    combat,
		Missions:  missions,
		Battles:   battles,
		Hub:       hub,
	})
	if err != nil {
		_ = channel.Close()
		return nil, nil, err
	}

	return handler, channel, nil
}
