package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Prasun6736/Ai-image-Checker/internal/application"
	appanalysis "github.com/Prasun6736/Ai-image-Checker/internal/application/analysis"
	appstatus "github.com/Prasun6736/Ai-image-Checker/internal/application/status"
	"github.com/Prasun6736/Ai-image-Checker/internal/config"
	domanalysis "github.com/Prasun6736/Ai-image-Checker/internal/domain/analysis"
	domstatus "github.com/Prasun6736/Ai-image-Checker/internal/domain/status"
	aiopenai "github.com/Prasun6736/Ai-image-Checker/internal/infra/ai/openai"
	mysqlp "github.com/Prasun6736/Ai-image-Checker/internal/infra/db/mysql"
	postgresp "github.com/Prasun6736/Ai-image-Checker/internal/infra/db/postgres"
	"github.com/Prasun6736/Ai-image-Checker/internal/infra/httpserver"
	minioStore "github.com/Prasun6736/Ai-image-Checker/internal/infra/storage"
	"github.com/Prasun6736/Ai-image-Checker/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (opened once, closed at shutdown)
	var (
		db           *sql.DB
		analysisRepo domanalysis.Repository
		statusRepo   domstatus.Repository
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		analysisRepo = postgresp.NewAnalysisRepository(db)
		statusRepo = postgresp.NewStatusRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		analysisRepo = mysqlp.NewAnalysisRepository(db)
		statusRepo = mysqlp.NewStatusRepository(db)
	}
	defer db.Close()

	// optional image archive
	var images domanalysis.ImageStore
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		images = store
	}

	// init services
	clock := application.SystemClock{}
	analysisSvc := &appanalysis.Service{
		AI:     aiopenai.NewClient(cfg.AI.APIKey, cfg.AI.Model),
		Repo:   analysisRepo,
		Images: images,
		Clock:  clock,
	}
	statusSvc := &appstatus.Service{Repo: statusRepo, Clock: clock}

	mux := httpserver.NewRouter(analysisSvc, statusSvc, httpserver.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		HealthCheckers: map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: db},
		},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
