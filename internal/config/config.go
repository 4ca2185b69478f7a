// Package config loads Sway configuration from environment variables,
// optionally overlaid with values from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all Sway configuration.
type Config struct {
	Source   SourceConfig
	Split    SplitConfig
	Features FeatureConfig
	Train    TrainConfig
	Store    StoreConfig
	Output   OutputConfig
	LogLevel string
}

// SourceConfig selects where training examples come from.
type SourceConfig struct {
	Provider string `yaml:"provider"`
	Path     string `yaml:"path"`
	PageSize int    `yaml:"page_size"`
}

// SplitConfig controls the train/test split.
type SplitConfig struct {
	TestRatio float64 `yaml:"test_ratio"`
	Seed      int64   `yaml:"seed"`
}

// FeatureConfig toggles and tunes the feature blocks.
type FeatureConfig struct {
	MinDocFreq int             `yaml:"min_doc_freq"`
	Binary     bool            `yaml:"binary"`
	TextLength bool            `yaml:"text_length"`
	Embedding  EmbeddingConfig `yaml:"embedding"`
}

// EmbeddingConfig configures the optional dense embedding block.
type EmbeddingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ModelPath string `yaml:"model_path"`
	VocabPath string `yaml:"vocab_path"`
}

// TrainConfig holds classifier training settings.
type TrainConfig struct {
	LearningRate float64 `yaml:"learning_rate"`
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	L2           float64 `yaml:"l2"`
}

// StoreConfig selects the example cache. An empty driver disables caching.
type StoreConfig struct {
	Driver string `yaml:"driver"` // "", "memory", "sqlite"
	Path   string `yaml:"path"`
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format   string `yaml:"format"` // "stdout", "file", "both"
	Path     string `yaml:"path"`
	PlotPath string `yaml:"plot_path"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Provider: getenv("SWAY_SOURCE", "csvfile"),
			Path:     getenv("SWAY_SOURCE_PATH", "data/tweets.csv"),
			PageSize: getenvInt("SWAY_SOURCE_PAGE_SIZE", 100),
		},
		Split: SplitConfig{
			TestRatio: getenvFloat("SWAY_TEST_RATIO", 0.25),
			Seed:      int64(getenvInt("SWAY_SEED", 1)),
		},
		Features: FeatureConfig{
			MinDocFreq: getenvInt("SWAY_MIN_DOC_FREQ", 1),
			Binary:     getenvBool("SWAY_BINARY_COUNTS", false),
			TextLength: getenvBool("SWAY_TEXT_LENGTH", true),
			Embedding: EmbeddingConfig{
				Enabled:   getenvBool("SWAY_EMBEDDING", false),
				ModelPath: getenv("SWAY_MODEL_PATH", "models/model_quantized.onnx"),
				VocabPath: getenv("SWAY_VOCAB_PATH", "models/vocab.txt"),
			},
		},
		Train: TrainConfig{
			LearningRate: getenvFloat("SWAY_LEARNING_RATE", 0.1),
			Epochs:       getenvInt("SWAY_EPOCHS", 100),
			BatchSize:    getenvInt("SWAY_BATCH_SIZE", 32),
			L2:           getenvFloat("SWAY_L2", 1e-4),
		},
		Store: StoreConfig{
			Driver: os.Getenv("SWAY_STORE"),
			Path:   getenv("SWAY_STORE_PATH", "sway.db"),
		},
		Output: OutputConfig{
			Format:   getenv("SWAY_OUTPUT", "stdout"),
			Path:     getenv("SWAY_OUTPUT_PATH", "report.txt"),
			PlotPath: os.Getenv("SWAY_PLOT_PATH"),
		},
		LogLevel: getenv("SWAY_LOG_LEVEL", "info"),
	}
}

// LoadFile loads the environment configuration and overlays values from a
// YAML file. Keys absent from the file keep their environment values.
func LoadFile(path string) (Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	overlay.apply(&cfg)
	return cfg, nil
}

// fileConfig mirrors Config with pointer fields so that absent YAML keys
// can be told apart from zero values.
type fileConfig struct {
	Source struct {
		Provider *string `yaml:"provider"`
		Path     *string `yaml:"path"`
		PageSize *int    `yaml:"page_size"`
	} `yaml:"source"`
	Split struct {
		TestRatio *float64 `yaml:"test_ratio"`
		Seed      *int64   `yaml:"seed"`
	} `yaml:"split"`
	Features struct {
		MinDocFreq *int  `yaml:"min_doc_freq"`
		Binary     *bool `yaml:"binary"`
		TextLength *bool `yaml:"text_length"`
		Embedding  struct {
			Enabled   *bool   `yaml:"enabled"`
			ModelPath *string `yaml:"model_path"`
			VocabPath *string `yaml:"vocab_path"`
		} `yaml:"embedding"`
	} `yaml:"features"`
	Train struct {
		LearningRate *float64 `yaml:"learning_rate"`
		Epochs       *int     `yaml:"epochs"`
		BatchSize    *int     `yaml:"batch_size"`
		L2           *float64 `yaml:"l2"`
	} `yaml:"train"`
	Store struct {
		Driver *string `yaml:"driver"`
		Path   *string `yaml:"path"`
	} `yaml:"store"`
	Output struct {
		Format   *string `yaml:"format"`
		Path     *string `yaml:"path"`
		PlotPath *string `yaml:"plot_path"`
	} `yaml:"output"`
	LogLevel *string `yaml:"log_level"`
}

func (f *fileConfig) apply(cfg *Config) {
	setString(&cfg.Source.Provider, f.Source.Provider)
	setString(&cfg.Source.Path, f.Source.Path)
	setInt(&cfg.Source.PageSize, f.Source.PageSize)

	setFloat(&cfg.Split.TestRatio, f.Split.TestRatio)
	if f.Split.Seed != nil {
		cfg.Split.Seed = *f.Split.Seed
	}

	setInt(&cfg.Features.MinDocFreq, f.Features.MinDocFreq)
	setBool(&cfg.Features.Binary, f.Features.Binary)
	setBool(&cfg.Features.TextLength, f.Features.TextLength)
	setBool(&cfg.Features.Embedding.Enabled, f.Features.Embedding.Enabled)
	setString(&cfg.Features.Embedding.ModelPath, f.Features.Embedding.ModelPath)
	setString(&cfg.Features.Embedding.VocabPath, f.Features.Embedding.VocabPath)

	setFloat(&cfg.Train.LearningRate, f.Train.LearningRate)
	setInt(&cfg.Train.Epochs, f.Train.Epochs)
	setInt(&cfg.Train.BatchSize, f.Train.BatchSize)
	setFloat(&cfg.Train.L2, f.Train.L2)

	setString(&cfg.Store.Driver, f.Store.Driver)
	setString(&cfg.Store.Path, f.Store.Path)

	setString(&cfg.Output.Format, f.Output.Format)
	setString(&cfg.Output.Path, f.Output.Path)
	setString(&cfg.Output.PlotPath, f.Output.PlotPath)

	setString(&cfg.LogLevel, f.LogLevel)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
