package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/crimson-sun/sway/internal/config"
	"github.com/crimson-sun/sway/internal/dataset"
	"github.com/crimson-sun/sway/internal/eval"
	"github.com/crimson-sun/sway/internal/logging"
	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/output"
	"github.com/crimson-sun/sway/internal/output/file"
	"github.com/crimson-sun/sway/internal/output/multi"
	"github.com/crimson-sun/sway/internal/output/plot"
	"github.com/crimson-sun/sway/internal/output/stdout"
	"github.com/crimson-sun/sway/internal/source"
	"github.com/crimson-sun/sway/internal/store"
	"github.com/crimson-sun/sway/internal/store/memstore"
	"github.com/crimson-sun/sway/internal/store/sqlite"
	"github.com/crimson-sun/sway/pkg/sway"

	// Register source implementations.
	_ "github.com/crimson-sun/sway/internal/source/csvfile"
	_ "github.com/crimson-sun/sway/internal/source/memory"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	dataPath := flag.String("data", "", "override the source data path")
	flag.Parse()

	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *dataPath != "" {
		cfg.Source.Path = *dataPath
	}

	reportIsStdout := cfg.Output.Format != "file"
	logging.Init(reportIsStdout, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	examples, err := loadExamples(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load examples: %v", err)
	}
	slog.Info("dataset loaded", "provider", cfg.Source.Provider, "examples", len(examples))

	train, test, err := dataset.Split(examples, cfg.Split.TestRatio, cfg.Split.Seed)
	if err != nil {
		log.Fatalf("failed to split dataset: %v", err)
	}
	slog.Info("dataset split", "train", len(train), "test", len(test))

	s, err := sway.Train(toPublic(train), trainOptions(cfg)...)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}
	defer s.Close()
	slog.Info("pipeline trained", "classes", s.Classes(), "features", s.Features())

	preds, err := s.Predict(model.Texts(test))
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}
	result, err := eval.Evaluate(model.Labels(test), preds, model.Labels(train))
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	slog.Info("evaluated", "accuracy", result.Accuracy, "null_accuracy", result.NullAccuracy)

	out, err := buildOutput(cfg.Output)
	if err != nil {
		log.Fatalf("failed to build output: %v", err)
	}
	defer out.Close()

	if err := out.Write(ctx, result); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
}

// loadExamples fetches the dataset from the configured source, passing it
// through the example store when one is configured.
func loadExamples(ctx context.Context, cfg config.Config) ([]model.Example, error) {
	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		return nil, err
	}
	src, err := ctor(source.Config{
		Provider: cfg.Source.Provider,
		Path:     cfg.Source.Path,
		PageSize: cfg.Source.PageSize,
	})
	if err != nil {
		return nil, err
	}

	examples, err := src.All(ctx)
	if err != nil {
		return nil, err
	}

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return examples, nil
	}
	defer st.Close()

	if err := st.Put(ctx, examples); err != nil {
		return nil, err
	}
	cached, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	slog.Debug("examples cached", "driver", cfg.Store.Driver, "count", len(cached))
	return cached, nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case "":
		return nil, nil
	case "memory":
		return memstore.New(), nil
	case "sqlite":
		return sqlite.Open(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Driver)
	}
}

func trainOptions(cfg config.Config) []sway.Option {
	opts := []sway.Option{
		sway.WithMinDocFreq(cfg.Features.MinDocFreq),
		sway.WithTextLength(cfg.Features.TextLength),
		sway.WithLearningRate(cfg.Train.LearningRate),
		sway.WithEpochs(cfg.Train.Epochs),
		sway.WithBatchSize(cfg.Train.BatchSize),
		sway.WithL2(cfg.Train.L2),
		sway.WithSeed(cfg.Split.Seed),
	}
	if cfg.Features.Binary {
		opts = append(opts, sway.WithBinaryCounts())
	}
	if cfg.Features.Embedding.Enabled {
		opts = append(opts, sway.WithEmbedding(
			cfg.Features.Embedding.ModelPath,
			cfg.Features.Embedding.VocabPath,
		))
	}
	return opts
}

func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	var outs []output.Output

	switch cfg.Format {
	case "file":
		f, err := file.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		outs = append(outs, f)
	case "both":
		f, err := file.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		outs = append(outs, stdout.New(), f)
	default:
		outs = append(outs, stdout.New())
	}

	if cfg.PlotPath != "" {
		outs = append(outs, plot.New(cfg.PlotPath))
	}
	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}

func toPublic(examples []model.Example) []sway.Example {
	out := make([]sway.Example, len(examples))
	for i, ex := range examples {
		out[i] = sway.Example{ID: ex.ID, Text: ex.Text, Label: ex.Label}
	}
	return out
}
