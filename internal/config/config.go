package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all pipeline settings, populated from environment variables.
type Config struct {
	NeotomaBaseURL string
	NeotomaTimeout time.Duration
	Countries      []string

	// DataDir holds inputs and per-version chronology caches; OutDir
	// receives the rendered version directories.
	DataDir string
	OutDir  string

	CanvecLakesFile string
	NHDLakesFile    string
	EditsFile       string

	// Optional inputs.
	PriorLinkageFile string
	VocabFile        string

	ChronCacheSize int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("NEOTOMA_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid NEOTOMA_TIMEOUT")
	}

	cacheSize, err := parseChronCacheSize()
	if err != nil {
		return nil, err
	}

	dataDir := envOrDefault("DATA_DIR", "data")

	cfg := &Config{
		NeotomaBaseURL: envOrDefault("NEOTOMA_BASE_URL", "https://api.neotomadb.org/v2.0"),
		NeotomaTimeout: timeout,
		Countries:      parseCountries(envOrDefault("COUNTRIES", "CA,US")),

		DataDir: dataDir,
		OutDir:  envOrDefault("OUT_DIR", "out"),

		CanvecLakesFile: resolve(dataDir, envOrDefault("CANVEC_LAKES_FILE", "canvec_lakes.csv")),
		NHDLakesFile:    resolve(dataDir, envOrDefault("NHD_LAKES_FILE", "nhd_lakes.csv")),
		EditsFile:       resolve(dataDir, envOrDefault("EDITS_FILE", "site_edits.csv")),

		PriorLinkageFile: resolveOptional(dataDir, os.Getenv("PRIOR_LINKAGE_FILE")),
		VocabFile:        resolveOptional(dataDir, os.Getenv("VOCAB_FILE")),

		ChronCacheSize: cacheSize,

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.NeotomaBaseURL == "" {
		return nil, errors.New("NEOTOMA_BASE_URL is required")
	}
	if len(cfg.Countries) == 0 {
		return nil, errors.New("COUNTRIES is required")
	}
	for _, c := range cfg.Countries {
		if len(c) != 2 {
			return nil, fmt.Errorf("COUNTRIES entry %q is not a two-letter code", c)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseCountries splits a comma-separated list of ISO country codes,
// trimming whitespace and dropping empty entries.
func parseCountries(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if c := strings.ToUpper(strings.TrimSpace(part)); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func parseChronCacheSize() (int, error) {
	s := os.Getenv("CHRON_CACHE_SIZE")
	if s == "" {
		return 1000, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid CHRON_CACHE_SIZE")
	}
	return n, nil
}

// resolve anchors relative input paths in dataDir so a bare filename in the
// environment points into the data directory.
func resolve(dataDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}

func resolveOptional(dataDir, path string) string {
	if path == "" {
		return ""
	}
	return resolve(dataDir, path)
}
