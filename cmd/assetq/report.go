package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/assetquality"
	"github.com/tsawler/assetquality/model"
)

func reportCmd() *cobra.Command {
	var (
		out      string
		profiles string
		lang     string
		dpi      float64
		workers  int
		timeout  time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "report [files or directories]",
		Short: "Extract one or more documents and write the report workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPDFs(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no PDF files found in %v", args)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			run := assetquality.OpenAll(paths...).
				Language(lang).
				DPI(dpi).
				Workers(workers).
				Timeout(timeout).
				Logger(logger)
			if profiles != "" {
				run = run.ProfilesFile(profiles)
			}

			results, err := run.Report(cmd.Context(), out)
			if err != nil {
				return err
			}
			printSummary(cmd, results)
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "report.xlsx", "output workbook path")
	cmd.Flags().StringVar(&profiles, "profiles", "", "YAML file overlaying the issuer profiles")
	cmd.Flags().StringVar(&lang, "lang", "chi_tra+eng", "OCR language models")
	cmd.Flags().Float64Var(&dpi, "dpi", 400, "OCR rasterization DPI")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent documents")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "per-document timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-document progress")
	return cmd
}

// collectPDFs expands directory arguments into the PDF files they contain.
func collectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Let the pipeline report it as source_missing.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.pdf"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func printSummary(cmd *cobra.Command, results []model.Result) {
	counts := make(map[model.Status]int)
	for _, res := range results {
		counts[res.Status]++
		if res.Status == model.StatusComplete {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n",
			res.Status, res.FilePath, res.Diagnostic)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d complete, %d partial, %d failed, %d missing\n",
		counts[model.StatusComplete], counts[model.StatusPartial],
		counts[model.StatusFailed], counts[model.StatusSourceMissing])
}
