// Package lines reads puzzle input as a slice of whitespace-trimmed lines.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns every line of r with surrounding whitespace removed.
func Read(r io.Reader) ([]string, error) {
	var out []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		out = append(out, strings.TrimSpace(sc.Text()))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return out, nil
}

// ReadFile reads the lines of the file at path. The path "-" reads stdin.
func ReadFile(path string) ([]string, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
