package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gingerrexayers/mic-go/internal/mic/commands"
	"github.com/gingerrexayers/mic-go/internal/mic/lib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errNoCommand = errors.New("no command given")

// app holds the state shared by all sub-commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg lib.Config
	env commands.Env
}

// setup loads the optional config file and builds the command environment.
// It runs before every sub-command.
func (a *app) setup(cmd *cobra.Command) error {
	fsys := afero.NewOsFs()

	cfg, err := lib.LoadConfig(fsys, a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	logger, err := lib.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.env = commands.Env{Fs: fsys, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr(), Logger: logger}
	return nil
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mic",
		Short: "Model Integrity Checker - Verify ML model checksums",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errNoCommand
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file with default settings")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", lib.LogFormatAuto, "Log format: auto, text or json")

	// Add commands
	rootCmd.AddCommand(NewCalculateCommand(a))
	rootCmd.AddCommand(NewVerifyCommand(a))
	rootCmd.AddCommand(NewScanCommand(a))
	rootCmd.AddCommand(NewFormatsCommand(a))
	rootCmd.AddCommand(NewCheckCommand(a))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// run executes the CLI with the given arguments and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
