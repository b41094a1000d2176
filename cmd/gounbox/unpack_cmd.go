// cmd/gounbox/unpack_cmd.go

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-unbox/pkg/unpack"
)

// newRootCmd builds the unpack command with its subcommands attached
func newRootCmd() *cobra.Command {
	var outputPath string
	var verbose bool
	var quiet bool
	var overwrite bool
	var checksum bool
	var exclude []string
	var upxPath string
	var msiextractPath string

	cmd := &cobra.Command{
		Use:   "gounbox <file>",
		Short: "go-unbox - identify a file by its content and unpack it",
		Long: "go-unbox sniffs the real type of a file, ignoring its extension, and extracts it:\n" +
			"7z, zip, tar, gzip, xz, zstd and rar archives, MSI installers (msiextract)\n" +
			"and UPX-packed executables (upx).",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			opts := &unpack.Options{
				InputPath:      args[0],
				OutputPath:     outputPath,
				Overwrite:      overwrite,
				Checksum:       checksum,
				Exclude:        exclude,
				UPXPath:        upxPath,
				MSIExtractPath: msiextractPath,
				Verbose:        verbose,
				Quiet:          quiet,
				Output:         out,
			}

			// Validate and set defaults
			if err := opts.Validate(); err != nil {
				return err
			}

			log := func(format string, args ...interface{}) {
				if !quiet {
					fmt.Fprintf(out, format+"\n", args...)
				}
			}

			log("Starting unpack...")
			log("  Input:       %s", opts.InputPath)
			log("  Output:      %s", opts.OutputPath)
			if overwrite {
				log("  Mode:        OVERWRITE (replacing existing files)")
			}
			if len(exclude) > 0 {
				log("  Exclude:     %s", strings.Join(exclude, ", "))
			}
			log("")

			var progressCb unpack.ProgressCallback
			var progress *mpb.Progress

			if !quiet && !verbose {
				progressCb, progress = unpack.ProgressBarCallback()
			}

			result, err := unpack.File(opts, progressCb)

			// Wait for progress bars to finish rendering
			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return err
			}

			log("")
			if !quiet {
				fmt.Fprint(out, unpack.FormatSummary(result))
			}
			if checksum && len(result.Files) > 0 {
				log("")
				log("Checksums (BLAKE3):")
				for _, f := range result.Files {
					log("  %s  %s", f.Digest, f.Name)
				}
			}

			switch result.Status {
			case unpack.StatusSuccess:
				return nil
			case unpack.StatusPartial:
				return fmt.Errorf("finished with %d errors", len(result.Errors))
			default:
				return result.Err
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (default: the input file's directory)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&checksum, "checksum", false, "Print a BLAKE3 digest of every extracted file")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Skip entries matching a gitignore-style pattern (repeatable)")
	cmd.Flags().StringVar(&upxPath, "upx", "upx", "Path to the upx executable")
	cmd.Flags().StringVar(&msiextractPath, "msiextract", "msiextract", "Path to the msiextract executable")

	cmd.AddCommand(
		detectCmd(),
		versionCmd(),
	)

	return cmd
}
