package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Othello1111/rocketsass/pkg"
	"github.com/Othello1111/rocketsass/pkg/build"
	"github.com/Othello1111/rocketsass/pkg/settings"
)

// Version is overwritten at build time with -ldflags "-X github.com/Othello1111/rocketsass/cmd.Version=..."
var Version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rocketsass [path]",
		Short: "Compiles each stylesheet in a directory to the destination named in its header",
		Long: `rocketsass looks for .scss and .sass files in the given directory (./css/scss/ by default)
and compiles each of them with sass. The destination is read from the first line of the
file which has to be a comment like this:

  /* compileDest=../main.css */

Files starting with the ignore prefix ("_" by default) are skipped since those are usually partials.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		RunE:    runBuild,
	}

	flags := rootCmd.Flags()
	flags.StringP("ignore", "i", "", `Files starting with this string should be ignored for compilation. By default "_"`)
	flags.StringP("compiler", "c", "", `compiler command; the source and destination are appended. By default "sass"`)
	flags.BoolP("dry", "n", false, "dry run; only print the commands, don't execute anything")
	flags.Bool("brotli", false, "write a brotli compressed copy (.br) next to each compiled file")
	flags.Bool("progress", false, "show a progress bar")
	flags.String("config", "", "path to the config file (default "+settings.DefaultConfigFile+" if it exists)")
	flags.String("log-level", "", "one of trace, debug, info, warn or error")

	return rootCmd
}

func loadOptions(cmd *cobra.Command, args []string) (settings.Options, error) {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return settings.Options{}, err
	}

	required := cfgPath != ""
	if !required {
		cfgPath = settings.DefaultConfigFile
	}

	opts, err := settings.LoadFile(cfgPath, settings.Defaults(), required)
	if err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Path = args[0]
	}

	// An empty prefix falls back to the default just like a missing flag.
	if ignore, _ := flags.GetString("ignore"); ignore != "" {
		opts.IgnorePrefix = ignore
	}

	if compiler, _ := flags.GetString("compiler"); compiler != "" {
		opts.Compiler = compiler
	}

	if level, _ := flags.GetString("log-level"); level != "" {
		opts.Log.Level = level
	}

	for name, field := range map[string]*bool{
		"dry":      &opts.DryRun,
		"brotli":   &opts.Brotli,
		"progress": &opts.Progress,
	} {
		if flags.Changed(name) {
			*field, err = flags.GetBool(name)
			if err != nil {
				return opts, err
			}
		}
	}

	return opts, opts.Validate()
}

func runBuild(cmd *cobra.Command, args []string) error {
	// From here on, errors are reported through the logger.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	logger := zerolog.New(NewConsoleWriter(cmd.ErrOrStderr()))

	opts, err := loadOptions(cmd, args)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	logger = logger.Level(opts.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = build.WithLogger(ctx, &logger)

	builder := build.New(opts)
	builder.Progress = cmd.ErrOrStderr()

	result, err := builder.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Build failed")
		return err
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		pkg.PrintTask(out, fmt.Sprintf("Dry run: %d of %d sources would be compiled", len(result.Compilations), len(result.Sources)))
		return nil
	}

	pkg.PrintTask(out, fmt.Sprintf("Compiled %d sources from %s", len(result.Compilations), opts.Path))
	for _, done := range result.Compilations {
		if done.Brotli != "" {
			pkg.PrintSubtask(out, done.Brotli)
		}
	}

	return nil
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
