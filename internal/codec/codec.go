// Package codec reads and writes the backing file representation of a recipe book.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/recipebook/internal/models"
)

// Format identifies a backing file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("codec: unsupported backing file extension %q", filepath.Ext(path))
	}
}

// Encode serializes the book. Store order and ingredient order are preserved.
func Encode(f Format, book *models.Book) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(book); err != nil {
			return nil, fmt.Errorf("codec: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("codec: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("codec: encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("codec: unknown format %q", f)
	}
}

// Decode parses data into a book and checks every record. Blank input yields
// an empty book.
func Decode(f Format, data []byte) (*models.Book, error) {
	book := models.NewBook()
	if len(bytes.TrimSpace(data)) == 0 {
		return book, nil
	}

	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, book); err != nil {
			return nil, fmt.Errorf("codec: decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, book); err != nil {
			return nil, fmt.Errorf("codec: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("codec: unknown format %q", f)
	}

	for pair := book.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			return nil, fmt.Errorf("codec: recipe %q has no fields", pair.Key)
		}
		pair.Value.Normalize()
		if err := pair.Value.Validate(); err != nil {
			return nil, fmt.Errorf("codec: recipe %q: %w", pair.Key, err)
		}
	}
	return book, nil
}
