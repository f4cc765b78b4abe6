package main

import (
	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/spf13/cobra"
)

// NewScanCommand creates the 'scan' command for the CLI.
func NewScanCommand(a *app) *cobra.Command {
	var formats string
	var noRecursive bool
	var output string
	var asTable bool
	var noIgnore bool
	var ignoreFile string

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan directory for model files",
		Long: `Scans a directory for model files by extension and prints a JSON object
mapping each file's path, relative to the directory, to its SHA-256 checksum.
Paths matching patterns in the directory's .micignore file are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags given explicitly override the config file.
			scanOpts := a.cfg.ScanOptions()
			if parsed := lib.ParseFormats(formats); parsed != nil {
				scanOpts.Formats = parsed
			}
			if cmd.Flags().Changed("no-recursive") {
				scanOpts.Recursive = !noRecursive
			}
			if cmd.Flags().Changed("ignore-file") {
				scanOpts.IgnoreFile = ignoreFile
			}
			scanOpts.NoIgnore = noIgnore

			return commands.Scan(a.env, commands.ScanOptions{
				Directory: args[0],
				Scan:      scanOpts,
				Output:    output,
				Table:     asTable,
			})
		},
	}

	cmd.Flags().StringVarP(&formats, "formats", "f", "", "Comma-separated list of formats (e.g., .h5,.pt)")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Don't scan subdirectories")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file for checksums")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print results as a table instead of JSON")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't apply ignore rules")
	cmd.Flags().StringVar(&ignoreFile, "ignore-file", lib.DefaultIgnoreFilename, "Name of the ignore file in the scanned directory")
	_ = cmd.RegisterFlagCompletionFunc("formats", formatCompletions)

	return cmd
}
