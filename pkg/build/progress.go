package build

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

func newProgressBar(w io.Writer, length int, visible bool) *progressbar.ProgressBar {
	if !visible || os.Getenv("CI") == "true" {
		return progressbar.NewOptions(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.NewOptions(length,
		progressbar.OptionSetDescription("Compiling"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
}
