// Package docs embeds the documentation topics printed by `rcv topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/etnz/recovery"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing the others.
const Index = "readme"

// Topic returns the content of a documentation topic. "*" returns all of
// them, the index first.
func Topic(name string) (string, error) {
	if name == "*" {
		names, err := Topics()
		if err != nil {
			return "", err
		}
		return Concat(append([]string{Index}, names...)...)
	}

	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: topic %q, run 'rcv topic' for the list", recovery.ErrNotFound, name)
	}
	return string(content), nil
}

// Concat returns several topics separated by a blank line.
func Concat(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics returns the sorted names of the topics, without the index.
func Topics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || name == Index {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
