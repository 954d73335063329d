package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/analysis"
	transportHttp "github.com/iamasit07/4-in-a-row/engine/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/engine/pkg/auth"
	"github.com/rs/zerolog/log"
)

func main() {
	issueToken := flag.String("issue-token", "", "print an API token for the named client and exit")
	flag.Parse()

	cfg := config.Bootstrap(false)

	if *issueToken != "" {
		token, err := auth.GenerateAccessToken(*issueToken, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot issue token (is API_JWT_SECRET set?)")
		}
		fmt.Println(token)
		return
	}

	gin.SetMode(gin.ReleaseMode)
	analysisService, err := analysis.NewService(cfg.SearchDepth, cfg.MaxSearchDepth, cfg.ParallelSearch)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create analysis service")
	}
	router := transportHttp.NewRouter(cfg, analysisService)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("API_JWT_SECRET not set, analysis endpoints are open")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("depth", cfg.SearchDepth).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
