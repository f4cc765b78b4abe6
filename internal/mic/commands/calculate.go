package commands

import (
	"fmt"

	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/gingerrexayers/mic-go/internal/mic/types"
)

// CalculateOptions holds the configuration for the calculate command.
type CalculateOptions struct {
	ModelPath string
	// Output, when set, receives {ModelPath: digest} instead of stdout.
	Output    string
	Algorithm string
}

// Calculate is the main function for the 'calculate' command.
func Calculate(env Env, opts CalculateOptions) error {
	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = string(types.DefaultAlgorithm)
	}

	checksum, err := lib.CalculateChecksum(env.Fs, opts.ModelPath, algorithm)
	if err != nil {
		return err
	}
	env.logger().Debug("calculated checksum", "path", opts.ModelPath, "algorithm", algorithm, "digest", checksum)

	if opts.Output == "" {
		fmt.Fprintln(env.Out, checksum)
		return nil
	}

	if err := saveChecksums(env, types.ChecksumRecord{opts.ModelPath: checksum}, opts.Output); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Checksum saved to %s\n", opts.Output)
	return nil
}
