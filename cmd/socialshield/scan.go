package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/socialshield/socialshield/internal/config"
	"github.com/socialshield/socialshield/internal/exposure"
	"github.com/socialshield/socialshield/internal/log"
	"github.com/socialshield/socialshield/internal/media"
	"github.com/socialshield/socialshield/internal/model"
	"github.com/socialshield/socialshield/internal/pipeline"
	"github.com/socialshield/socialshield/internal/report"
	"github.com/socialshield/socialshield/internal/source"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [handle]...",
		Short: "Scan social media profiles for privacy exposure",
		Long: `Scan audits downloaded social media profiles for privacy exposure.

It reads profile archives from the archive directory and analyzes them for:
- GPS coordinates embedded in photo metadata (EXIF)
- Personal information in the biography (emails, phone numbers, IDs)
- Geotagged posts revealing visited locations
- Tagged users exposing the account's social graph

Examples:
  # Scan a single profile
  socialshield scan --dir ./archive traveller_jane

  # Scan multiple profiles
  socialshield scan --dir ./archive jane john acme_corp

  # Read handles from a file, one per line
  socialshield scan --dir ./archive --list handles.txt

  # Output JSON report
  socialshield scan --dir ./archive --json traveller_jane

  # Use a custom configuration file
  socialshield scan --dir ./archive -c myconfig.yaml traveller_jane

Configuration file (.socialshield) example:
  profiles:
    traveller_jane:
      language: pt-BR
    acme_corp:
      ignoreEntities:
        - PHONE`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Data source flags
	cmd.Flags().StringP("dir", "d", "",
		"Archive directory with one subdirectory per handle (required)")
	cmd.Flags().StringP("list", "l", "",
		"File with handles to scan, one per line")

	// Scan behavior flags
	cmd.Flags().StringP("language", "L", config.DefaultLanguage,
		"Language code handed to the PII classifier (BCP 47)")
	cmd.Flags().Bool("no-exif", false,
		"Skip EXIF metadata scanning of media files")
	cmd.Flags().Bool("no-pii", false,
		"Skip PII scanning of the biography")
	cmd.Flags().Int64("max-media-size", config.DefaultMaxMediaSize,
		"Maximum media file size in bytes to read for metadata")

	// Batch scanning flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent scans")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .socialshield in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging. The secure logger masks biographies and
	// matched PII so the scan does not re-expose what it found.
	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.ArchiveDir, err = cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}

	cfg.Language, err = cmd.Flags().GetString("language")
	if err != nil {
		return nil, err
	}

	noEXIF, err := cmd.Flags().GetBool("no-exif")
	if err != nil {
		return nil, err
	}
	cfg.EnableEXIF = !noEXIF

	noPII, err := cmd.Flags().GetBool("no-pii")
	if err != nil {
		return nil, err
	}
	cfg.EnablePII = !noPII

	cfg.MaxMediaSize, err = cmd.Flags().GetInt64("max-media-size")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-handle configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.ProfileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.ProfileConfigs = &config.File{
			Profiles: make(map[string]config.ProfileConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Collect handles from positional arguments and the optional list file
	cfg.Handles = args

	listPath, err := cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}
	if listPath != "" {
		listed, err := readHandleList(listPath)
		if err != nil {
			return nil, err
		}
		cfg.Handles = append(cfg.Handles, listed...)
	}

	return cfg, nil
}

// readHandleList reads handles from a file, one per line.
// Blank lines and lines starting with # are skipped.
func readHandleList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open handle list: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var handles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		handles = append(handles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read handle list: %w", err)
	}
	return handles, nil
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Validate and normalize all handles first so a typo fails fast
	handles := make([]model.Handle, 0, len(cfg.Handles))
	for _, raw := range cfg.Handles {
		handle, err := model.NewHandle(raw)
		if err != nil {
			return fmt.Errorf("invalid handle %q: %w", raw, err)
		}
		handles = append(handles, handle)
	}

	logger.Info("starting scan",
		"handles", len(handles),
		"archiveDir", cfg.ArchiveDir,
		"batchSize", cfg.BatchSize,
	)

	src := source.NewArchiveSource(cfg.ArchiveDir, source.WithArchiveLogger(logger))

	// Use batch processor for parallel scanning if multiple handles
	if len(handles) > 1 && cfg.BatchSize > 1 {
		return runBatchScan(ctx, cfg, src, handles, logger)
	}

	// Single handle or sequential scanning
	return runSequentialScan(ctx, cfg, src, handles, logger)
}

// runSequentialScan scans handles one at a time. Per-handle configuration
// (language, ignored entities, disabled analyzers) is applied here.
func runSequentialScan(ctx context.Context, cfg *config.Config, src source.ProfileSource, handles []model.Handle, logger *slog.Logger) error {
	for _, handle := range handles {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Get per-handle configuration
		pc := getProfileConfig(cfg, handle)

		// Create pipeline with per-handle options
		p := createPipelineForHandle(cfg, src, logger, pc)

		scanReport := model.NewExposureReport(handle)

		fmt.Printf("Scanning @%s...\n", handle)
		startTime := time.Now()

		// Execute the pipeline
		if err := p.Execute(ctx, scanReport); err != nil {
			logger.Error("scan failed", "handle", handle, "error", err)
			fmt.Fprintf(os.Stderr, "Scan error for @%s: %v\n", handle, err)
		}
		scanReport.Finalize()

		elapsed := time.Since(startTime)
		fmt.Printf("Scan completed in %s\n\n", elapsed.Round(time.Millisecond))

		// Generate and output report
		if err := outputReport(cfg, scanReport); err != nil {
			logger.Error("report failed", "handle", handle, "error", err)
		}
	}

	return nil
}

// runBatchScan scans multiple handles concurrently using BatchProcessor.
func runBatchScan(ctx context.Context, cfg *config.Config, src source.ProfileSource, handles []model.Handle, logger *slog.Logger) error {
	fmt.Printf("Starting batch scan of %d handles (concurrency: %d)...\n\n",
		len(handles), cfg.BatchSize)

	startTime := time.Now()

	// Warn user about batch processing limitation
	if cfg.ProfileConfigs != nil && len(cfg.ProfileConfigs.Profiles) > 0 {
		logger.Warn("batch processing uses default profile config only; per-handle configs (language, ignored entities) are ignored",
			"profileCount", len(cfg.ProfileConfigs.Profiles))
		fmt.Fprintf(os.Stderr, "Warning: Per-handle configurations are ignored in batch mode. Use sequential mode (--batch 1) to apply per-handle settings.\n\n")
	}

	// Create batch processor with pipeline factory
	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			// Note: For batch processing, we use the default profile config.
			// Per-handle configs would require per-handle pipeline creation.
			var pc config.ProfileConfig
			if cfg.ProfileConfigs != nil {
				pc = cfg.ProfileConfigs.Defaults
			}
			return createPipelineForHandle(cfg, src, logger, pc)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, handles, func(scanReport *model.ExposureReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] Scan completed: @%s\n", index+1, len(handles), scanReport.Subject)

		// Generate and output report
		if err := outputReport(cfg, scanReport); err != nil {
			logger.Error("report failed", "handle", scanReport.Subject, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch scan completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// getProfileConfig returns the per-handle configuration for a handle.
// Falls back to defaults if no per-handle config exists.
func getProfileConfig(cfg *config.Config, handle model.Handle) config.ProfileConfig {
	if cfg.ProfileConfigs == nil {
		return config.ProfileConfig{}
	}
	return cfg.ProfileConfigs.GetProfileConfig(handle.String())
}

// createPipelineForHandle creates a pipeline with the given configuration.
func createPipelineForHandle(cfg *config.Config, src source.ProfileSource, logger *slog.Logger, pc config.ProfileConfig) *pipeline.Pipeline {
	p := pipeline.New(
		pipeline.WithLogger(logger),
	)

	p.AddStep(pipeline.NewLoadProfileStep(src, pipeline.WithLoadLogger(logger)))
	p.AddStep(pipeline.NewCollectPostsStep(
		exposure.NewPostAnalyzer(exposure.WithPostLogger(logger)),
	))

	if cfg.EnableEXIF && !pc.SkipEXIF {
		decoder := media.NewEXIFDecoder(media.WithMaxFileSize(cfg.MaxMediaSize))
		p.AddStep(pipeline.NewCollectMediaStep(
			exposure.NewMediaAnalyzer(decoder, exposure.WithMediaLogger(logger)),
		))
	}

	if cfg.EnablePII && !pc.SkipPII {
		// Per-handle language overrides the global setting
		language := cfg.Language
		if pc.Language != "" {
			language = pc.Language
		}

		var classifier exposure.Classifier = exposure.NewRegexClassifier()
		if len(pc.IgnoreEntities) > 0 {
			classifier = exposure.NewFilteredClassifier(classifier, pc.IgnoreEntities)
		}

		p.AddStep(pipeline.NewScanBiographyStep(
			exposure.NewScanner(classifier,
				exposure.WithLanguage(language),
				exposure.WithScannerLogger(logger),
			),
		))
	}

	return p
}

// outputReport outputs the scan report in the requested format.
func outputReport(cfg *config.Config, scanReport *model.ExposureReport) error {
	// Generate the summary if needed
	if scanReport.Summary == nil {
		scanReport.Summary = model.NewSummary(scanReport)
	}

	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/append the output file with secure permissions (0600).
		// Reports contain the personal data the scan found, so they should
		// only be readable by the owner. Append so batch scans collect all
		// reports in one file.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // flushed by Write below
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (detailed report with all data)
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(scanReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(scanReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(scanReport)
	return err
}
