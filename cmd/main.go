package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/teashop-server/internal/api/http/context"
	"github.com/dtroode/teashop-server/internal/api/http/router"
	httpServer "github.com/dtroode/teashop-server/internal/api/http/server"
	"github.com/dtroode/teashop-server/internal/config"
	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
	"github.com/dtroode/teashop-server/internal/password"
	"github.com/dtroode/teashop-server/internal/repository"
	"github.com/dtroode/teashop-server/internal/server"
	"github.com/dtroode/teashop-server/internal/service"
	"github.com/dtroode/teashop-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	stores, err := repository.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer stores.Close()

	hasher, err := password.NewBcrypt(cfg.Password.Cost)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithTTL(cfg.JWT.TTL))

	authService := service.NewAuth(stores.Users, hasher, tokenManager, logger)
	if _, err := authService.EnsureDefaultUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
		logger.Fatal("failed to seed default user", "error", err)
	}
	teaService := service.NewTea(stores.Teas, logger)
	ctxMgr := httpctx.NewManager()

	httpSrv := registerHTTPServer(logger, authService, teaService, ctxMgr, cfg.HTTP)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	authService *service.Auth,
	teaService *service.Tea,
	ctxMgr model.ContextManager,
	cfg config.HTTP,
) *httpServer.HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	r := router.New(authService, teaService, ctxMgr, logger)

	return httpServer.NewHTTPServer(r.Register(), cfg.Address(), cfg.ReadHeaderTimeout)
}
