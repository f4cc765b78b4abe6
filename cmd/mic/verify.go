package main

import (
	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the 'verify' command for the CLI.
func NewVerifyCommand(a *app) *cobra.Command {
	var checksum string
	var checksumFile string

	cmd := &cobra.Command{
		Use:   "verify <model>",
		Short: "Verify model checksum",
		Long: `Verifies a model file against an expected SHA-256 checksum, given either
directly with --checksum or looked up in a JSON checksum file with
--checksum-file. The model path is looked up exactly as given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Verify(a.env, commands.VerifyOptions{
				ModelPath:    args[0],
				Checksum:     checksum,
				ChecksumFile: checksumFile,
			})
		},
	}

	cmd.Flags().StringVarP(&checksum, "checksum", "c", "", "Expected checksum value")
	cmd.Flags().StringVarP(&checksumFile, "checksum-file", "f", "", "JSON file with checksums")
	cmd.MarkFlagsOneRequired("checksum", "checksum-file")
	cmd.MarkFlagsMutuallyExclusive("checksum", "checksum-file")

	return cmd
}
