package main

import (
	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/spf13/cobra"
)

func NewFormatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Formats(a.env)
		},
	}
}
