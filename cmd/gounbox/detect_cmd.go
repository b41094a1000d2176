// cmd/gounbox/detect_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-unbox/pkg/classify"
)

func detectCmd() *cobra.Command {
	var upxPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Identify the content type of a file without unpacking it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			classifier := classify.Default(&classify.Options{UPXPath: upxPath})
			det, err := classifier.Detect(args[0])
			if det == nil {
				return err
			}

			fmt.Fprintf(out, "MIME type: %s\n", det.MIME)
			fmt.Fprintf(out, "Type:      %s\n", det.Type)
			if det.Probe != "" {
				fmt.Fprintf(out, "Probe:     %s\n", det.Probe)
			}

			if verbose {
				fmt.Fprintln(out, "Probes:")
				for _, a := range det.Attempts {
					if a.Err != nil {
						fmt.Fprintf(out, "  %-10s %s (%v)\n", a.Probe, a.Verdict, a.Err)
					} else {
						fmt.Fprintf(out, "  %-10s %s\n", a.Probe, a.Verdict)
					}
				}
			}

			return err
		},
	}

	cmd.Flags().StringVar(&upxPath, "upx", "upx", "Path to the upx executable")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show every probe's answer")

	return cmd
}
