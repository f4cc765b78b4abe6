package commands

import (
	"fmt"
	"sort"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ScanOptions holds the configuration for the scan command.
type ScanOptions struct {
	Directory string
	Scan      lib.ScanOptions
	// Output, when set, receives the record instead of stdout.
	Output string
	// Table renders the record as a table instead of JSON.
	Table bool
}

// Scan is the main function for the 'scan' command.
func Scan(env Env, opts ScanOptions) error {
	scanOpts := opts.Scan
	scanOpts.Logger = env.logger()

	checksums, err := lib.ScanDirectory(env.Fs, opts.Directory, scanOpts)
	if err != nil {
		return err
	}
	env.logger().Info("scan finished", "directory", opts.Directory, "files", len(checksums))

	switch {
	case opts.Output != "":
		if err := saveChecksums(env, checksums, opts.Output); err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Found %d model file(s). Checksums saved to %s\n", len(checksums), opts.Output)
	case opts.Table:
		fmt.Fprintln(env.Out, renderChecksumTable(checksums))
	default:
		content, err := lib.MarshalChecksums(checksums)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, string(content))
	}
	return nil
}

// renderChecksumTable lays the record out as PATH / DIGEST rows sorted by path.
func renderChecksumTable(checksums types.ChecksumRecord) string {
	paths := make([]string, 0, len(checksums))
	for path := range checksums {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"PATH", "DIGEST"})
	for _, path := range paths {
		tw.AppendRow(table.Row{path, checksums[path]})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d file(s)", len(paths)), ""})
	return tw.Render()
}
