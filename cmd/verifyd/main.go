package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	verifypb "github.com/greenmap-app/greenmap-verify/gen/proto/verify/v1"

	"github.com/greenmap-app/greenmap-verify/internal/activitycfg"
	"github.com/greenmap-app/greenmap-verify/internal/common"
	"github.com/greenmap-app/greenmap-verify/internal/export"
	"github.com/greenmap-app/greenmap-verify/internal/ocr"
	"github.com/greenmap-app/greenmap-verify/internal/pipeline"
	"github.com/greenmap-app/greenmap-verify/internal/recognize"
	repo "github.com/greenmap-app/greenmap-verify/internal/repository"
	svc "github.com/greenmap-app/greenmap-verify/internal/server"
	"github.com/greenmap-app/greenmap-verify/internal/verifyapi"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := activitycfg.Load(os.Getenv("ACTIVITY_CATALOG"), logger)
	if err != nil {
		logger.Error("failed to load activity catalog", "error", err)
		os.Exit(1)
	}

	dbcfg := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbcfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewVerificationJobRepository(entc, logger)
	subsRepo := repo.NewSubmissionRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		TessdataDir:      cfg.OCR.TessdataDir,
		TesseractLang:    cfg.OCR.Language,
		PSM:              cfg.OCR.PSM,
		OEM:              cfg.OCR.OEM,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)
	recognizer := recognize.NewOCRAdapter(extractor, logger)

	verifier := verifyapi.NewClient(cfg.Verifier.BaseURL, cfg.Verifier.Timeout, logger)

	pipe := pipeline.New(logger, pipeline.Config{}, recognizer, jobsRepo, subsRepo, verifier)
	exporter := export.NewService(jobsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	verifypb.RegisterVerificationServiceServer(grpcServer,
		svc.NewVerificationService(catalog, pipe, jobsRepo, exporter, logger))

	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
