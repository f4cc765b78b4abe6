package main

import (
	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' command for the CLI.
func NewCheckCommand(a *app) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "check <checksum-file>",
		Short: "Verify every model listed in a checksum file",
		Long: `Re-computes the checksum of every entry in a checksum file written by
'calculate -o' or 'scan -o' and reports OK or FAILED for each. Relative
entries are resolved against --base-dir, which defaults to the directory
holding the checksum file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Check(a.env, commands.CheckOptions{
				ChecksumFile: args[0],
				BaseDir:      baseDir,
			})
		},
	}

	cmd.Flags().StringVarP(&baseDir, "base-dir", "d", "", "Directory that relative entries are resolved against")

	return cmd
}
