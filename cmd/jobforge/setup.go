package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/config"
	"github.com/ssalihyetim/jobforge/internal/db"
	"github.com/ssalihyetim/jobforge/internal/engine"
	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/schemas"
	"github.com/ssalihyetim/jobforge/internal/types"
)

// resolveConfig merges CLI flags over the optional config file and
// environment. Flags win, then the config file, then DATABASE_URL from the
// environment.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		Archives:    flagArchives,
		DatabaseURL: flagDatabaseURL,
		LogLevel:    flagLogLevel,
		Verbose:     flagVerbose,
	}

	if flagConfig == "" {
		if flags.DatabaseURL == "" {
			flags.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		return flags, flags.Validate()
	}

	fileCfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = flags.Verbose || fileCfg.Verbose
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return merged, merged.Validate()
}

// buildEngine constructs the synthesis engine over the configured archive
// source: PostgreSQL when a database URL is set, otherwise a JSON archives
// file loaded into memory. The returned cleanup releases the database pool
// and must be called when done.
func buildEngine(ctx context.Context, cfg config.Config) (*engine.Engine, zerolog.Logger, func(), error) {
	log := observability.NewLogger(cfg.LogLevel, cfg.Verbose)

	repo, cleanup, err := buildRepository(ctx, cfg, log)
	if err != nil {
		return nil, log, nil, err
	}

	return engine.New(archive.NewRetryingRepository(repo, log), log), log, cleanup, nil
}

func buildRepository(ctx context.Context, cfg config.Config, log zerolog.Logger) (archive.Repository, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Debug().Msg("using postgres archive store")
		return db.NewArchiveStore(database), database.Close, nil
	}

	if cfg.Archives == "" {
		return nil, nil, fmt.Errorf("no archive source configured: set --archives or --database-url")
	}

	archives, err := loadArchivesFile(cfg.Archives)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Int("archives", len(archives)).Str("path", cfg.Archives).Msg("loaded archives file")
	return archive.NewMemoryRepository(archives), func() {}, nil
}

// loadArchivesFile reads a JSON array of job archives, checking it against
// the archives schema first when the schema file can be located.
func loadArchivesFile(path string) ([]types.JobArchive, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/job_archives.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("archives file failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archives file %s: %w", path, err)
	}

	var archives []types.JobArchive
	if err := json.Unmarshal(data, &archives); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archives JSON: %w", err)
	}
	return archives, nil
}

// readJSONFile unmarshals one JSON input file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// writeJSONFile writes v as indented JSON, creating the output directory if
// needed.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	if err := ensureOutputDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func ensureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
