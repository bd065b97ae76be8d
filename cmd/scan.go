package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yeisme/missionscan/pkg/scanner"
	"github.com/yeisme/missionscan/pkg/style"
	"github.com/yeisme/missionscan/pkg/utils/ignore"
	"github.com/yeisme/missionscan/pkg/watch"
)

var (
	scanFormat string
	scanOutput string
	scanWatch  bool

	scanCmd = &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a mission file or directory for classes and equipment",
		Long: `missionscan scan analyzes a single mission file or a directory tree and
reports, per file, the declared class names and the referenced equipment
identifiers. Directories are walked recursively; only files with a
supported extension (.sqf, .hpp, .ext) are analyzed.`,
		Example: strings.TrimSpace(`
  missionscan scan mission/loadouts.hpp
  missionscan scan mission/ --format json
  missionscan scan mission/ --format json -o report.json
  missionscan scan mission/ --watch
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if scanFormat != "text" && scanFormat != "json" {
				return fmt.Errorf("unknown format %q (expected text or json)", scanFormat)
			}

			s := scanner.New(scanner.Options{
				DataDirs: appCtx.Config.Scan.DataDirs,
				Exclude:  appCtx.Config.Scan.Exclude,
			})

			runOnce := func() error {
				results, err := scanTarget(s, target)
				if err != nil {
					return err
				}
				return writeResults(cmd.OutOrStdout(), results)
			}

			if err := runOnce(); err != nil {
				return err
			}

			if scanWatch {
				opts := watch.Options{
					Debounce: time.Duration(appCtx.Config.Scan.WatchDebounce) * time.Millisecond,
					Exclude:  ignore.New(appCtx.Config.Scan.Exclude),
				}
				return watch.Run(target, opts, func() {
					if err := runOnce(); err != nil {
						log.Error().Err(err).Msg("rescan failed")
					}
				})
			}
			return nil
		},
	}
)

// scanTarget scans a directory tree or a single file. Single-file errors
// (not found, unsupported extension) surface directly; per-file failures
// inside a directory scan are carried in the result records.
func scanTarget(s *scanner.Scanner, target string) ([]scanner.Result, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return s.ScanDir(target)
	}
	result, err := s.Scan(target)
	if err != nil {
		return nil, err
	}
	return []scanner.Result{result}, nil
}

// writeResults renders the result records to --output or stdout. Styled
// output is used only on a terminal; files always get plain text.
func writeResults(stdout io.Writer, results []scanner.Result) error {
	styled := scanOutput == "" && isatty.IsTerminal(os.Stdout.Fd())

	var rendered string
	if scanFormat == "json" {
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		rendered = string(b) + "\n"
		if styled {
			return style.PrintJSON(stdout, b)
		}
	} else {
		rendered = renderText(results, styled)
	}

	if scanOutput != "" {
		if err := os.WriteFile(scanOutput, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().Str("file", scanOutput).Msg("report written")
		return nil
	}
	_, err := fmt.Fprint(stdout, rendered)
	return err
}

// renderText renders the classic text report: one block per file with the
// class and equipment entries as indented bullets.
func renderText(results []scanner.Result, styled bool) string {
	label := func(s string) string {
		if styled {
			return style.LabelStyle.Render(s)
		}
		return s
	}

	var b strings.Builder
	for _, result := range results {
		fmt.Fprintf(&b, "\n%s %s\n", label("File:"), result.File)
		if result.Error != "" {
			errText := result.Error
			if styled {
				errText = style.ErrorStyle.Render(errText)
			}
			fmt.Fprintf(&b, "%s %s\n", label("Error:"), errText)
		}
		fmt.Fprintf(&b, "%s\n", label("Classes:"))
		for _, class := range result.Classes {
			fmt.Fprintf(&b, "  - %s\n", class)
		}
		fmt.Fprintf(&b, "%s\n", label("Equipment:"))
		for _, equipment := range result.Equipment {
			fmt.Fprintf(&b, "  - %s\n", equipment)
		}
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "output format: text or json")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write the report to this file instead of stdout")
	scanCmd.Flags().BoolVarP(&scanWatch, "watch", "w", false, "rescan whenever the target changes")
}
