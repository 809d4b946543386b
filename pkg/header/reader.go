// Package header reads the build directive from the first line of a stylesheet.
//
// A directive looks like this:
//
//	/* compileDest=../main.css, precision=6 */
//
// Items are separated by commas and hold exactly one "=". Anything else is
// ignored.
package header

import (
	"io/ioutil"
	"runtime"
	"strings"

	"github.com/rotisserie/eris"
)

var lineSeparator = "\n"

func init() {
	if runtime.GOOS == "windows" {
		lineSeparator = "\r\n"
	}
}

// ReadConfig reads the file at path and parses its header directive.
func ReadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read %s", path)
	}

	return ParseHeader(string(data), path)
}

// ParseHeader parses the directive on the first line of content. The returned
// config always contains path as its target.
func ParseHeader(content, path string) (Config, error) {
	firstLine := strings.SplitN(content, lineSeparator, 2)[0]
	if !strings.HasPrefix(firstLine, "/*") || !strings.HasSuffix(firstLine, "*/") {
		return nil, &MalformedHeaderError{Path: path}
	}

	// "/*/" passes both checks; the markers overlap and there's nothing inside.
	configString := ""
	if len(firstLine) >= 4 {
		configString = strings.TrimSpace(firstLine[2 : len(firstLine)-2])
	}
	config := make(Config)
	for _, item := range strings.Split(configString, ",") {
		key, value, ok := ParseItem(item)
		if ok {
			config[key] = value
		}
	}

	config[KeyTarget] = StringValue(path)
	return config, nil
}

// ParseItem splits a "key=value" item. Items without exactly one "=" are
// reported as not ok.
func ParseItem(item string) (string, Value, bool) {
	pair := strings.Split(strings.TrimSpace(item), "=")
	if len(pair) != 2 {
		return "", Value{}, false
	}

	return strings.TrimSpace(pair[0]), ParseValue(strings.TrimSpace(pair[1])), true
}
