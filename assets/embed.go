// Package assets holds the word lists compiled into the binary.
// start.txt is the pool of root words; dictionary.txt is the default
// recognition list for DICTIONARY_LOCALE=en.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// ReadLines returns the non-blank, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

func StartList() ([]string, error) {
	return readEmbedded("start.txt")
}

func DictionaryList() ([]string, error) {
	return readEmbedded("dictionary.txt")
}
