package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a maze.
//
//	name: corridor
//	rows:
//	  - S 0 0 0 E
type Document struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Parse reads a text maze: one row per non-blank line, cells optionally
// separated by whitespace. Lines starting with '#' are comments.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading grid: %w", err)
	}

	return FromStrings(rows, opts...)
}

// ParseYAML decodes a Document and builds its Grid.
func ParseYAML(r io.Reader, opts ...Option) (*Grid, string, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, "", ErrEmptyGrid
		}
		return nil, "", fmt.Errorf("maze: decoding yaml: %w", err)
	}
	g, err := FromStrings(doc.Rows, opts...)
	if err != nil {
		return nil, doc.Name, err
	}

	return g, doc.Name, nil
}
