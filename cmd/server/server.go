package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/grimoire-api/configs"
	"github.com/KirkDiggler/grimoire-api/internal/clients/catalog"
	"github.com/KirkDiggler/grimoire-api/internal/config"
	"github.com/KirkDiggler/grimoire-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/grimoire-api/internal/handlers/build/v1alpha1"
	orchestrator "github.com/KirkDiggler/grimoire-api/internal/orchestrators/character"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/idgen"
	"github.com/KirkDiggler/grimoire-api/internal/redis"
	catalogcache "github.com/KirkDiggler/grimoire-api/internal/repositories/catalog_cache"
	characterrepo "github.com/KirkDiggler/grimoire-api/internal/repositories/character"
)

const (
	shutdownTimeout = 30 * time.Second
	startupTimeout  = 10 * time.Second
)

var (
	grpcPort int
	logLevel string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the grimoire build service. Settings come from GRIMOIRE_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRIMOIRE_GRPC_PORT)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides GRIMOIRE_LOG_LEVEL)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, err := redis.Connect(cfg.RedisAddrs, cfg.RedisMasterName, &redis.Options{PoolSize: cfg.RedisPoolSize})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	startCtx, startCancel := context.WithTimeout(ctx, startupTimeout)
	defer startCancel()
	if err := redisClient.Ping(startCtx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %v: %w", cfg.RedisAddrs, err)
	}

	catalogClient, err := newCatalogClient(cfg, redisClient)
	if err != nil {
		return err
	}
	ref, err := catalogClient.GetReference(startCtx)
	if err != nil {
		return fmt.Errorf("failed to load reference catalog: %w", err)
	}
	slog.Info("reference catalog ready", "version", ref.Catalog().Version)

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	bus := events.NewBus()
	subscribeEventLog(bus)

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	characterService, err := orchestrator.New(&orchestrator.Config{
		CharacterRepo: characterRepo,
		CatalogClient: catalogClient,
		Engine:        eng,
		EventBus:      bus,
		IDGenerator:   idgen.NewUUID(idgen.CharacterPrefix),
		HitPointMode:  cfg.DefaultHitPointMode(),
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	buildHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: characterService})
	if err != nil {
		return fmt.Errorf("failed to create build handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterBuildServiceServer(srv, buildHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		for sig := range sigChan {
			if sig == syscall.SIGHUP {
				reloadCatalog(ctx, catalogClient)
				continue
			}
			slog.Info("received shutdown signal, gracefully stopping", "signal", sig.String())
			cancel()
			return
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("grpc server starting", "port", cfg.GRPCPort, "version", version)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newCatalogClient reads catalogs from GRIMOIRE_CATALOG_DIR, or the embedded defaults, behind the Redis cache
func newCatalogClient(cfg *config.Config, client redis.Client) (*catalog.CachedClient, error) {
	var source fs.FS = configs.DefaultCatalog()
	if cfg.CatalogDir != "" {
		source = os.DirFS(cfg.CatalogDir)
	}

	loader, err := catalog.NewFileLoader(&catalog.FileLoaderConfig{FS: source})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog loader: %w", err)
	}

	cache, err := catalogcache.NewRedisRepository(&catalogcache.Config{
		Client: client,
		TTL:    cfg.CatalogCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}

	cached, err := catalog.NewCached(&catalog.CachedConfig{
		Source: loader,
		Cache:  cache,
		Name:   cfg.CatalogName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}
	return cached, nil
}

func reloadCatalog(ctx context.Context, client *catalog.CachedClient) {
	ref, err := client.Refresh(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "catalog reload failed", "error", err)
		return
	}
	slog.InfoContext(ctx, "catalog reloaded", "version", ref.Catalog().Version)
}

// subscribeEventLog logs every build event at debug level
func subscribeEventLog(bus *events.Bus) {
	for _, eventType := range []string{
		orchestrator.EventCharacterCreated,
		orchestrator.EventCharacterUpdated,
		orchestrator.EventCharacterCommitted,
		orchestrator.EventCharacterDeleted,
		rpgtoolkit.EventHitPointsRolled,
	} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			attrs := []any{"event", e.Type()}
			if e.Source() != nil {
				attrs = append(attrs, "character_id", e.Source().GetID())
			}
			if op, ok := e.Context().Get(orchestrator.ContextOperation); ok {
				attrs = append(attrs, "operation", op)
			}
			slog.DebugContext(ctx, "build event", attrs...)
			return nil
		})
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
