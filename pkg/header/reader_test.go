package header

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadConfig_PairsAndTarget(t *testing.T) {
	path := writeSource(t, "main.scss", "/* compileDest=../main.css, precision=6 */"+lineSeparator+"body { color: red; }"+lineSeparator)

	config, err := ReadConfig(path)
	require.NoError(t, err)

	require.Equal(t, Config{
		"compileDest": StringValue("../main.css"),
		"precision":   NumberValue(6),
		"target":      StringValue(path),
	}, config)
	require.Equal(t, path, config.Target())

	dest, ok := config.CompileDest()
	require.True(t, ok)
	require.Equal(t, "../main.css", dest)
}

func TestReadConfig_TargetOverridesHeader(t *testing.T) {
	path := writeSource(t, "main.scss", "/* target=elsewhere.scss, compileDest=out.css */")

	config, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, config.Target())
}

func TestReadConfig_MalformedHeader(t *testing.T) {
	path := writeSource(t, "main.scss", "not a comment"+lineSeparator+"/* compileDest=out.css */")

	config, err := ReadConfig(path)
	require.Nil(t, config)

	var malformed *MalformedHeaderError
	require.True(t, eris.As(err, &malformed))
	require.Equal(t, path, malformed.Path)
	require.Contains(t, err.Error(), "First line is not a block-style comment")
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.scss"))
	require.Error(t, err)

	var malformed *MalformedHeaderError
	require.False(t, eris.As(err, &malformed))
}

func TestParseHeader_Edges(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "triple part item dropped",
			content: "/* a=b=c, x=1 */",
			want:    Config{"x": NumberValue(1), "target": StringValue("f.scss")},
		},
		{
			name:    "item without equals dropped",
			content: "/* standalone, x=foo */",
			want:    Config{"x": StringValue("foo"), "target": StringValue("f.scss")},
		},
		{
			name:    "empty value stays a string",
			content: "/* x= */",
			want:    Config{"x": StringValue(""), "target": StringValue("f.scss")},
		},
		{
			name:    "empty comment",
			content: "/**/",
			want:    Config{"target": StringValue("f.scss")},
		},
		{
			name:    "overlapping markers",
			content: "/*/",
			want:    Config{"target": StringValue("f.scss")},
		},
		{
			name:    "leading whitespace is not trimmed",
			content: " /* x=1 */",
			wantErr: true,
		},
		{
			name:    "close marker on a later line",
			content: "/* x=1" + lineSeparator + "*/",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseHeader(tt.content, "f.scss")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, config)
		})
	}
}

func TestParseItem(t *testing.T) {
	key, value, ok := ParseItem("  compileDest = ../out.css ")
	require.True(t, ok)
	require.Equal(t, "compileDest", key)
	require.Equal(t, StringValue("../out.css"), value)

	_, _, ok = ParseItem("a=b=c")
	require.False(t, ok)

	_, _, ok = ParseItem("")
	require.False(t, ok)
}
