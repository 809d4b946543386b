// Package build ties everything together: it scans the source directory,
// reads all header directives and runs the compiler for each source.
package build

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/aidarkhanov/nanoid"
	"golang.org/x/sync/errgroup"

	"github.com/Othello1111/rocketsass/pkg/aggregate"
	"github.com/Othello1111/rocketsass/pkg/compiler"
	"github.com/Othello1111/rocketsass/pkg/header"
	"github.com/Othello1111/rocketsass/pkg/scan"
	"github.com/Othello1111/rocketsass/pkg/settings"
)

// Compilation is a single finished compiler run.
type Compilation struct {
	Target string
	// Dest is empty if the header has no compileDest. sass prints the CSS to
	// stdout in that case.
	Dest string
	// Brotli is the path of the precompressed output, if any.
	Brotli string
}

// Result lists the compilations in the order they finished.
type Result struct {
	Sources      []string
	Compilations []Compilation
}

type Builder struct {
	Options  settings.Options
	Invoker  *compiler.Invoker
	Progress io.Writer
}

// New creates a Builder that runs the compiler configured in opts.
func New(opts settings.Options) *Builder {
	return &Builder{
		Options: opts,
		Invoker: &compiler.Invoker{
			Command: opts.Compiler,
			Env:     opts.Env,
		},
		Progress: os.Stderr,
	}
}

// Run executes a complete build. The first error aborts the run and cancels
// all compilers which are still running.
func (b *Builder) Run(ctx context.Context) (Result, error) {
	var result Result
	opts := b.Options

	logger := log(ctx).With().Str("run", nanoid.New()).Logger()
	ctx = WithLogger(ctx, &logger)

	names, err := scan.Sources(opts.Path, opts.Filter())
	if err != nil {
		return result, err
	}
	result.Sources = names

	logger.Debug().Str("path", opts.Path).Msgf("Found %d sources in %s", len(names), opts.Path)

	configs, err := aggregate.NewCollector(opts.Path).Collect(ctx, names)
	if err != nil {
		return result, err
	}

	inv := b.invoker()
	bar := newProgressBar(b.progressWriter(), len(configs), opts.Progress && !opts.DryRun)
	lock := sync.Mutex{}
	group, gctx := errgroup.WithContext(ctx)

	for _, config := range configs {
		config := config
		group.Go(func() error {
			done, err := b.compile(gctx, inv, config)
			if err != nil {
				return err
			}

			lock.Lock()
			result.Compilations = append(result.Compilations, done)
			lock.Unlock()

			_ = bar.Add(1)
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return result, err
	}

	_ = bar.Finish()
	return result, nil
}

func (b *Builder) compile(ctx context.Context, inv *compiler.Invoker, config header.Config) (Compilation, error) {
	target := config.Target()
	dest, _ := config.CompileDest()
	done := Compilation{Target: target, Dest: dest}

	if b.Options.DryRun {
		line, err := inv.Describe(target, dest)
		if err != nil {
			return done, err
		}

		log(ctx).Info().
			Str("target", target).
			Bool("command", true).
			Msg(line)
		return done, nil
	}

	err := inv.Invoke(ctx, target, dest)
	if err != nil {
		return done, err
	}

	destLabel := dest
	if destLabel == "" {
		destLabel = "stdout"
	}

	log(ctx).Info().
		Str("target", target).
		Str("dest", dest).
		Msgf("Compiling sass: %s => %s", target, destLabel)

	if b.Options.Brotli && dest != "" {
		output := dest
		if inv.Dir != "" && !filepath.IsAbs(output) {
			output = filepath.Join(inv.Dir, output)
		}

		done.Brotli, err = precompress(output)
		if err != nil {
			return done, err
		}

		log(ctx).Debug().
			Str("target", target).
			Msgf("Wrote %s", done.Brotli)
	}

	return done, nil
}

func (b *Builder) invoker() *compiler.Invoker {
	if b.Invoker == nil {
		b.Invoker = &compiler.Invoker{Command: b.Options.Compiler, Env: b.Options.Env}
	}
	return b.Invoker
}

func (b *Builder) progressWriter() io.Writer {
	if b.Progress == nil {
		return os.Stderr
	}
	return b.Progress
}
