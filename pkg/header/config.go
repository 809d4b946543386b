package header

const (
	// KeyTarget is injected by the reader and always holds the source path.
	KeyTarget = "target"
	// KeyCompileDest names the output path of the compiled stylesheet.
	KeyCompileDest = "compileDest"
)

// Config contains the directive values of a single source file
type Config map[string]Value

func (c Config) Get(key string) (Value, bool) {
	v, ok := c[key]
	return v, ok
}

// Target returns the path of the source file this config was read from.
func (c Config) Target() string {
	return c[KeyTarget].String()
}

func (c Config) CompileDest() (string, bool) {
	v, ok := c[KeyCompileDest]
	if !ok {
		return "", false
	}
	return v.String(), true
}
