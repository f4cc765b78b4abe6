package main

import (
	"strings"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/spf13/cobra"
)

// formatCompletions completes the comma-separated --formats flag. Formats
// already present in the list are not offered again.
func formatCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	used := map[string]bool{}
	if idx := strings.LastIndex(toComplete, ","); idx >= 0 {
		prefix = toComplete[:idx+1]
		for _, format := range lib.ParseFormats(prefix) {
			used[format] = true
		}
	}

	var suggestions []string
	for _, format := range lib.SupportedFormats() {
		if !used[format] {
			suggestions = append(suggestions, prefix+format)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// algorithmCompletions offers every supported digest algorithm.
func algorithmCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	suggestions := make([]string, 0, len(types.Algorithms))
	for _, algo := range types.Algorithms {
		suggestions = append(suggestions, string(algo))
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
