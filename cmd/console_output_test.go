package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv(debugEnv, "")

	buf := &bytes.Buffer{}
	return zerolog.New(NewConsoleWriter(buf)), buf
}

func TestConsoleWriter_DryRunCommand(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Info().Str("target", "main.scss").Bool("command", true).Msg("sass main.scss main.css")
	require.Contains(t, buf.String(), "main.scss: $ sass main.scss main.css")
}

func TestConsoleWriter_ShortensDest(t *testing.T) {
	logger, buf := newTestLogger(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	dest := filepath.Join(wd, "out", "main.css")

	logger.Info().Str("dest", dest).Msgf("Compiling sass: %s => %s", "main.scss", dest)
	require.Contains(t, buf.String(), "Compiling sass: main.scss => "+filepath.Join("out", "main.css"))
	require.NotContains(t, buf.String(), wd)
}

func TestConsoleWriter_Error(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Error().Err(eris.New("compiler exploded")).Msg("Build failed")
	require.Contains(t, buf.String(), "Error: Build failed")
	require.Contains(t, buf.String(), "compiler exploded")
}

func TestSimplifyPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	require.Equal(t, filepath.Join("scss", "main.scss"), simplifyPath(filepath.Join(wd, "scss", "main.scss")))
	require.Equal(t, "main.scss", simplifyPath("main.scss"))
	require.Equal(t, "../main.css", simplifyPath("../main.css"))
}
