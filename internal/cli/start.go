package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/bank"
	"carbon-quiz-service/internal/config"
	"carbon-quiz-service/internal/infra/memory"
	infraredis "carbon-quiz-service/internal/infra/redis"
	"carbon-quiz-service/internal/scoring"
	transport "carbon-quiz-service/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	store, closeStore, err := openSubmissionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	progressTTL := config.TTLDuration(cfg.Redis.TTL, 7*24*time.Hour)
	overviewTTL := config.TTLDuration(cfg.Overview.TTL, 30*time.Second)

	questions := bank.Default()
	engine := scoring.NewEngine(questions)
	submissions := app.NewSubmissionService(engine, store)
	admin := app.NewAdminService(store, questions)

	var progress app.ProgressStore
	var overview app.OverviewReader
	if redisClient != nil {
		progress = infraredis.NewProgressStore(redisClient, progressTTL)
		overview = infraredis.NewOverviewCache(redisClient, admin, overviewTTL)
	} else {
		progress = memory.NewProgressStore(progressTTL)
		overview = memory.NewOverviewCache(admin, overviewTTL)
	}
	runs := app.NewRunService(engine, progress, submissions)

	if cfg.Server.AdminPassword == "" {
		log.Printf("warning: admin password not configured, admin endpoints will fail")
	}

	gin.SetMode(gin.ReleaseMode)
	handler := transport.NewHandler(questions, submissions, overview, admin, cfg.Server.AdminPassword)
	router := transport.NewRouter(handler, transport.NewWSHandler(runs), cfg.Server.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
