package main

import (
	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/spf13/cobra"
)

// NewCalculateCommand creates the 'calculate' command for the CLI.
func NewCalculateCommand(a *app) *cobra.Command {
	var output string
	var algorithm string

	cmd := &cobra.Command{
		Use:   "calculate <model>",
		Short: "Calculate checksum for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Calculate(a.env, commands.CalculateOptions{
				ModelPath: args[0],
				Output:    output,
				Algorithm: algorithm,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file for checksum")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(types.DefaultAlgorithm), "Digest algorithm: sha256, md5, sha1, blake2b or blake3")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
