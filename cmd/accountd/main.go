package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/xxxsen/accountd/internal/config"
	"github.com/xxxsen/accountd/internal/db"
	"github.com/xxxsen/accountd/internal/handler"
	"github.com/xxxsen/accountd/internal/job"
	"github.com/xxxsen/accountd/internal/middleware"
	"github.com/xxxsen/accountd/internal/repo"
	"github.com/xxxsen/accountd/internal/schedule"
	"github.com/xxxsen/accountd/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "accountd",
		Short: "user account service",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run accountd server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("dbname", cfg.Database.DBName),
	)

	userRepo := repo.NewUserRepo(conn)
	tokenTTL := time.Hour * time.Duration(cfg.JWTTTLHours)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), tokenTTL)
	accountService := service.NewAccountService(userRepo)

	loginThrottle := middleware.NewThrottle(time.Duration(cfg.LoginThrottleSeconds) * time.Second)

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserHandler(accountService),
		JWTSecret:     []byte(cfg.JWTSecret),
		TokenTTL:      tokenTTL,
		LoginThrottle: loginThrottle,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewScheduler()
	if err := scheduler.AddJob(job.NewThrottlePruneJob(loginThrottle, time.Hour), "0 * * * *"); err != nil {
		return fmt.Errorf("schedule throttle prune: %w", err)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
