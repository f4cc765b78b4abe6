package commands

import (
	"fmt"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
)

// Formats is the main function for the 'formats' command: one supported
// extension per line.
func Formats(env Env) error {
	for _, format := range lib.SupportedFormats() {
		fmt.Fprintln(env.Out, format)
	}
	return nil
}
