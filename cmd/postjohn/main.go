package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/postjohn/internal/app"
	"github.com/dropDatabas3/postjohn/internal/config"
	"github.com/dropDatabas3/postjohn/internal/email"
	httpx "github.com/dropDatabas3/postjohn/internal/http"
	"github.com/dropDatabas3/postjohn/internal/http/handlers"
	jwtx "github.com/dropDatabas3/postjohn/internal/jwt"
	"github.com/dropDatabas3/postjohn/internal/observability/logger"
	"github.com/dropDatabas3/postjohn/internal/security/password"
	"github.com/dropDatabas3/postjohn/internal/store/pg"
)

func main() {
	// .env si existe; si no, seguimos con el entorno del sistema
	_ = godotenv.Load()

	cfgPath := flag.String("config", os.Getenv("POSTJOHN_CONFIG"), "ruta al config YAML (opcional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// logger todavía no inicializado
		panic("config: " + err.Error())
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "postjohn",
	})
	defer func() { _ = logger.Sync() }()
	log := logger.Named("main")

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", logger.Err(err))
	}
	if cfg.UsingDefaultSecret() {
		// Defecto heredado: sin JWT_SECRET_KEY caemos al literal "secret".
		log.Warn("JWT secret not configured, using insecure default; set JWT_SECRET_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := pg.New(ctx, cfg.Storage.DSN, pg.Options{
		MaxConns:        int32(cfg.Storage.Postgres.MaxConns),
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		log.Fatal("storage connect failed", logger.Err(err))
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		log.Fatal("migrations failed", logger.Err(err))
	}
	log.Info("storage ready")

	sender := email.NewSMTPSender(
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From,
		cfg.SMTP.Username, cfg.SMTP.Password,
	)
	sender.TLSMode = cfg.SMTP.TLSMode

	issuer := jwtx.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret)
	issuer.AccessTTL = cfg.AccessTTL()

	c := &app.Container{
		Store:  store,
		Issuer: issuer,
		Hasher: password.NewHasher(cfg.Auth.BcryptCost),
		Sender: sender,
	}

	metricsHandler, err := httpx.RegisterMetrics(httpx.MetricsConfig{
		Pool: store.Pool,
	})
	if err != nil {
		log.Fatal("metrics registration failed", logger.Err(err))
	}

	router := httpx.NewRouter(httpx.RouterDeps{
		Register:           handlers.NewAuthRegisterHandler(c),
		Login:              handlers.NewAuthLoginHandler(c),
		Send:               handlers.NewSendEmailHandler(c),
		Readyz:             handlers.NewReadyzHandler(c),
		Metrics:            metricsHandler,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RequireBearer:      cfg.Auth.RequireBearer,
		Issuer:             issuer,
	})

	srv := httpx.NewServer(cfg.Server.Addr, router, cfg.ReadTimeout(), cfg.WriteTimeout())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", logger.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server failed", logger.Err(err))
	}
	log.Info("bye")
}
