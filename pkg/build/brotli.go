package build

import (
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/rotisserie/eris"
)

// precompress writes a brotli compressed copy of path to path + ".br" so
// static file servers can hand it out directly.
func precompress(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to open %s", path)
	}
	defer in.Close()

	brPath := path + ".br"
	out, err := os.Create(brPath)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to create %s", brPath)
	}
	defer out.Close()

	writer := brotli.NewWriterLevel(out, brotli.BestCompression)
	_, err = io.Copy(writer, in)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to compress %s", path)
	}

	err = writer.Close()
	if err != nil {
		return "", eris.Wrapf(err, "Failed to compress %s", path)
	}

	return brPath, out.Close()
}
