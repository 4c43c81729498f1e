package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/gen/ent"
	"github.com/docflowhq/docflow/internal/blob"
	"github.com/docflowhq/docflow/internal/breaker"
	"github.com/docflowhq/docflow/internal/common"
	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/extract"
	"github.com/docflowhq/docflow/internal/gate"
	"github.com/docflowhq/docflow/internal/llm/openai"
	"github.com/docflowhq/docflow/internal/pipeline"
	"github.com/docflowhq/docflow/internal/recognition"
	"github.com/docflowhq/docflow/internal/recognition/tesseract"
	repo "github.com/docflowhq/docflow/internal/repository"
	"github.com/docflowhq/docflow/internal/worker"
)

// Standalone worker process: the same three pools docflowd embeds, without
// the gRPC surface. Run as many replicas as throughput needs; the queue's
// claim semantics keep them from stepping on each other.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, cleanup, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	store, err := openBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}

	tasksRepo := repo.NewTaskRepository(entc, logger)
	rulesRepo := repo.NewRuleRepository(entc, logger)
	pagesRepo := repo.NewPageResultRepository(entc, logger)
	printsRepo := repo.NewFingerprintRepository(entc, logger)
	queueRepo := repo.NewQueueRepository(entc, logger)
	receiversRepo := repo.NewReceiverRepository(entc, logger)
	attemptsRepo := repo.NewPushAttemptRepository(entc, logger)

	engines := buildEngines(cfg, logger)
	orch := recognition.NewOrchestrator(recognition.NewProvider(logger, engines...), logger,
		recognition.WithMaxConcurrent(cfg.Recognition.MaxConcurrent),
		recognition.WithTimeouts(cfg.Recognition.BaseTimeout, cfg.Recognition.PerPageTimeout),
	)

	strategies := []extract.Strategy{
		extract.PatternStrategy{},
		extract.AnchorStrategy{},
		extract.TableStrategy{},
	}
	if cfg.LLM.APIKey != "" {
		oai := openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		brk := breaker.New(cfg.LLM.BreakerThreshold, cfg.LLM.BreakerCooldown, logger)
		strategies = append(strategies, extract.NewModelStrategy(oai, brk, cfg.LLM.Timeout, logger))
	} else {
		logger.Warn("OPENAI_API_KEY not set, model strategy disabled")
	}
	router := extract.NewRouter(logger, strategies...)

	sender := delivery.NewSender(logger, delivery.WithSendTimeout(cfg.Delivery.Timeout))
	deliverySvc := delivery.NewService(tasksRepo, receiversRepo, attemptsRepo, queueRepo, sender, store, logger)

	recognizer := pipeline.NewRecognizer(tasksRepo, rulesRepo, pagesRepo, queueRepo, store, orch, router, gate.New(logger), logger)
	postProcessor := pipeline.NewPostProcessor(tasksRepo, printsRepo, logger)

	poolOpts := func(workers int) []worker.Option {
		return []worker.Option{
			worker.WithWorkers(workers),
			worker.WithPollInterval(cfg.Worker.PollInterval),
			worker.WithLease(cfg.Worker.Lease),
		}
	}
	pools := []*worker.Pool{
		worker.NewPool(queueRepo, constants.QueueRecognition, recognizer.Handle, logger, poolOpts(cfg.Worker.RecognitionWorkers)...),
		worker.NewPool(queueRepo, constants.QueueDelivery, pipeline.DeliveryHandler(deliverySvc, logger), logger, poolOpts(cfg.Worker.DeliveryWorkers)...),
		worker.NewPool(queueRepo, constants.QueuePostProcess, postProcessor.Handle, logger, poolOpts(cfg.Worker.PostProcessWorkers)...),
	}
	for _, p := range pools {
		p.Start()
	}
	logger.Info("worker pools started",
		"recognition", cfg.Worker.RecognitionWorkers,
		"delivery", cfg.Worker.DeliveryWorkers,
		"postprocess", cfg.Worker.PostProcessWorkers,
	)

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, p := range pools {
		p.Shutdown(shutdownCtx)
	}
	logger.Info("stopped")
}

func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, func(), error) {
	if cfg.Database.SQLitePath != "" {
		entc, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() { repo.Close(entc, nil, logger) }, nil
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}

func openBlobStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (blob.Store, error) {
	if cfg.Blob.LocalDir != "" {
		return blob.NewFSStore(cfg.Blob.LocalDir, logger)
	}
	return blob.NewS3Store(ctx, cfg.Blob, logger)
}

func buildEngines(cfg *common.Config, logger *slog.Logger) []recognition.Engine {
	var out []recognition.Engine
	for _, name := range cfg.Recognition.Engines {
		switch name {
		case "tesseract":
			out = append(out, tesseract.NewEngine())
		case "tesseract-cli":
			out = append(out, recognition.NewCLIEngine(
				recognition.WithBinaries(cfg.Recognition.TesseractBin, cfg.Recognition.PdftoppmBin),
				recognition.WithDPI(cfg.Recognition.DPI),
			))
		default:
			logger.Warn("unknown recognition engine skipped", "engine", name)
		}
	}
	return out
}
