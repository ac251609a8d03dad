// Package sample provides the benchmark input corpus: the sample document
// loaded from disk plus embedded reduced renditions for converters that
// cannot parse the full feature set.
package sample

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Gregwar/RST and Nim's rst2html reject several constructs in the full
// sample (grid tables, admonitions, topic/sidebar directives). They are
// benchmarked with this reduced document of comparable length instead.
//
//go:embed data/simplified.rst
var simplifiedRST string

//go:embed data/simplified.md
var simplifiedMD string

// Document is one benchmark input.
type Document struct {
	// Name is the base name shown in the report header.
	Name string
	Text string
}

// Lines counts the document's lines the way an editor would: a trailing
// newline does not start an empty final line.
func (d Document) Lines() int {
	if d.Text == "" {
		return 0
	}
	n := strings.Count(d.Text, "\n")
	if !strings.HasSuffix(d.Text, "\n") {
		n++
	}
	return n
}

// Bytes is the document size in bytes.
func (d Document) Bytes() int {
	return len(d.Text)
}

// Load reads the sample document at path. Relative paths are resolved
// against the working directory first, then against the directory holding
// the rstbench executable, so the suite works both from a checkout and
// from an installed binary.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil && !filepath.IsAbs(path) {
		if exe, exeErr := os.Executable(); exeErr == nil {
			alt := filepath.Join(filepath.Dir(exe), path)
			if altData, altErr := os.ReadFile(alt); altErr == nil {
				return Document{Name: filepath.Base(path), Text: string(altData)}, nil
			}
		}
	}
	if err != nil {
		return Document{}, fmt.Errorf("sample document not found at %s", path)
	}
	return Document{Name: filepath.Base(path), Text: string(data)}, nil
}

// Simplified returns the reduced RST rendition.
func Simplified() string {
	return simplifiedRST
}

// Markdown returns the Markdown rendition used by the in-process converter.
func Markdown() string {
	return simplifiedMD
}
