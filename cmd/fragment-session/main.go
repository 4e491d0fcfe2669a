package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/api/middleware"
	"github.com/feral-file/ff-fragment/internal/api/server"
	"github.com/feral-file/ff-fragment/internal/api/shared/executor"
	"github.com/feral-file/ff-fragment/internal/config"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/holdings"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/media"
	"github.com/feral-file/ff-fragment/internal/messaging"
	"github.com/feral-file/ff-fragment/internal/netconfig"
	"github.com/feral-file/ff-fragment/internal/orchestrator"
	"github.com/feral-file/ff-fragment/internal/presenter"
	"github.com/feral-file/ff-fragment/internal/providers/jetstream"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/session"
	"github.com/feral-file/ff-fragment/internal/stats"
	"github.com/feral-file/ff-fragment/internal/uri"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSessionConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         config.SERVICE_NAME,
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": config.SERVICE_NAME,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File fragment session")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	httpClient := adapter.NewHTTPClient(cfg.HTTPTimeout)

	// Network table
	primary := networkFromConfig(cfg.Networks.Primary)
	test := networkFromConfig(cfg.Networks.Test)
	resolver := netconfig.NewResolver(netconfig.Settings{
		FixedAddress: cfg.Contract.FixedAddress,
		Primary:      primary,
		Test:         test,
	})

	// Wallet
	endpoints := make(map[domain.ChainID]string)
	for _, n := range []config.NetworkConfig{cfg.Networks.Primary, cfg.Networks.Test} {
		if n.RPCURL != "" {
			endpoints[domain.NormalizeChainID(n.ChainID)] = n.RPCURL
		}
	}
	provider, err := wallet.NewKeyProvider(wallet.KeyConfig{
		PrivateKey:     cfg.Wallet.PrivateKey,
		InitialChainID: domain.NormalizeChainID(cfg.Wallet.InitialChainID),
		Endpoints:      endpoints,
		DialTimeout:    cfg.Wallet.DialTimeout,
	}, adapter.NewEthClientDialer())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create wallet provider", zap.Error(err))
	}
	defer provider.Close()
	if cfg.Wallet.PrivateKey == "" {
		logger.WarnCtx(ctx, "Wallet private key not configured, state-changing operations will fail")
	}
	logger.InfoCtx(ctx, "Wallet provider ready",
		zap.Int("endpoints", len(endpoints)),
		zap.String("initial_chain_id", cfg.Wallet.InitialChainID),
	)

	// Event publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		publisher = messaging.NewNopPublisher()
		logger.WarnCtx(ctx, "NATS URL not configured, session events will not be published")
	}
	defer publisher.Close()

	// Reconciliation
	enumerator := holdings.NewEnumerator(holdings.Config{
		Workers:    cfg.Refresh.PoolSize,
		QueueSize:  cfg.Refresh.PoolSize * 4,
		RPS:        cfg.Refresh.RPS,
		Burst:      cfg.Refresh.Burst,
		MaxBalance: cfg.Refresh.MaxHoldings,
	})
	defer func() {
		if err := enumerator.Close(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "holdings"))
		}
	}()
	reconciler := stats.NewReconciler(resolver, stats.DefaultStrategies(cfg.Contract.DeployBlock), clock)

	// Media
	uriResolver := uri.NewResolver(httpClient, &uri.Config{IPFSGateways: cfg.URI.IPFSGateways})
	mediaResolver := media.NewResolver(uriResolver, media.Config{
		HeroVideoIPFS:    cfg.Media.HeroVideoIPFS,
		DefaultImageIPFS: cfg.Media.DefaultImageIPFS,
	})

	desk := presenter.NewDesk(presenter.DeskConfig{
		ReadyTTL: cfg.Presenter.ReadyTTL,
		FeedSize: cfg.Presenter.FeedSize,
	}, clock)

	// Session and refresh loop
	sess := session.New(session.Config{}, resolver, provider, reconciler, enumerator, publisher, clock)
	defer sess.Close()

	scheduler := refresh.NewScheduler(sess, refresh.Config{
		Interval: cfg.Refresh.Interval,
		Timeout:  cfg.Refresh.Timeout,
	}, clock)
	if err := sess.Start(ctx, scheduler); err != nil {
		logger.FatalCtx(ctx, "Failed to start session", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		if err := scheduler.Run(ctx); err != nil {
			errCh <- fmt.Errorf("refresh scheduler: %w", err)
		}
	}()

	orch := orchestrator.New(orchestrator.Config{
		MetadataRef:   cfg.Contract.MetadataRef,
		ReadyAttempts: cfg.Presenter.ReadyAttempts,
		ReadyInterval: cfg.Presenter.ReadyInterval,
	}, sess, provider, resolver, scheduler, desk, mediaResolver, publisher, clock)
	defer orch.Close()

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		WriteLimit: middleware.RateLimitConfig{
			RPS:   cfg.Server.WriteRPS,
			Burst: cfg.Server.WriteBurst,
		},
	}

	exec := executor.NewExecutor(sess, scheduler, orch, desk, uriResolver, mediaResolver, jsonAdapter, jcsAdapter)
	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "session"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("Fragment session stopped")
}

func networkFromConfig(n config.NetworkConfig) netconfig.Network {
	return netconfig.Network{
		ChainID:         domain.NormalizeChainID(n.ChainID),
		Name:            n.Name,
		ContractAddress: n.ContractAddress,
		DisplayOffset:   n.DisplayOffset,
	}
}
