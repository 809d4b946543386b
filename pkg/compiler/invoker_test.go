package compiler

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/interp"
)

func recordingHandler(calls *[][]string, status uint8) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		*calls = append(*calls, append([]string(nil), args...))
		if status != 0 {
			return interp.NewExitStatus(status)
		}
		return nil
	}
}

func TestInvoke_PassesTargetAndDest(t *testing.T) {
	var calls [][]string
	inv := &Invoker{ExecHandler: recordingHandler(&calls, 0)}

	err := inv.Invoke(context.Background(), "css/scss/main.scss", "css/main.css")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"sass", "css/scss/main.scss", "css/main.css"}}, calls)
}

func TestInvoke_WithoutDest(t *testing.T) {
	var calls [][]string
	inv := &Invoker{ExecHandler: recordingHandler(&calls, 0)}

	err := inv.Invoke(context.Background(), "main.scss", "")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"sass", "main.scss"}}, calls)
}

func TestInvoke_CommandWithFlags(t *testing.T) {
	var calls [][]string
	inv := &Invoker{
		Command:     "sass --no-source-map --style=compressed",
		ExecHandler: recordingHandler(&calls, 0),
	}

	err := inv.Invoke(context.Background(), "my styles/main.scss", "out dir/main.css")
	require.NoError(t, err)
	require.Equal(t, [][]string{{
		"sass", "--no-source-map", "--style=compressed", "my styles/main.scss", "out dir/main.css",
	}}, calls)
}

func TestInvoke_ExitStatus(t *testing.T) {
	var calls [][]string
	inv := &Invoker{ExecHandler: recordingHandler(&calls, 65)}

	err := inv.Invoke(context.Background(), "main.scss", "main.css")

	var ierr *InvocationError
	require.True(t, eris.As(err, &ierr))
	require.Equal(t, 65, ierr.Status)
	require.Equal(t, "main.scss", ierr.Target)
	require.Equal(t, "main.css", ierr.Dest)
}

func TestInvoke_BadCommand(t *testing.T) {
	inv := &Invoker{Command: "sass; rm -rf /"}

	err := inv.Invoke(context.Background(), "main.scss", "main.css")

	var ierr *InvocationError
	require.True(t, eris.As(err, &ierr))
	require.Equal(t, 0, ierr.Status)
}

func TestDescribe(t *testing.T) {
	inv := &Invoker{}

	line, err := inv.Describe("main.scss", "out dir/main.css")
	require.NoError(t, err)
	require.Equal(t, "sass main.scss 'out dir/main.css'", line)
}
