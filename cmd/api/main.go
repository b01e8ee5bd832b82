package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/http/router"
	"leadscore_backend/internal/leads"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	// The model artifact is optional: a missing or corrupt artifact puts the
	// predictor in degraded mode serving the neutral score. Logged once here.
	var model scoring.Model
	loaded, err := scoring.LoadModel(cfg.ModelPath)
	log.ModelEvent(cfg.ModelPath, err == nil, err)
	if err == nil {
		model = loaded
	}

	rules := scoring.DefaultRules()
	if cfg.RerankRulesPath != "" {
		rules, err = scoring.LoadRules(cfg.RerankRulesPath)
		if err != nil {
			log.Error("failed to load rerank rules", "path", cfg.RerankRulesPath, "error", err)
			panic("failed to load rerank rules: " + err.Error())
		}
		log.Info("rerank rules loaded", "path", cfg.RerankRulesPath, "rules", len(rules))
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	leadsModule := leads.NewModule(model, rules, val, log)

	app := &apphttp.App{
		Config:      cfg,
		Logger:      log,
		ModelLoaded: !leadsModule.Degraded(),
		Modules: []apphttp.Module{
			leadsModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
}
