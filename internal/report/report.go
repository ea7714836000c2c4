// Package report renders looked-up error codes for the errno command.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/errcode"
)

// Format selects how entries are rendered.
type Format string

const (
	// FormatText prints one "SYMBOL code message" line per entry.
	FormatText Format = "text"

	// FormatJSON prints an indented JSON array.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML sequence.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", platformerrors.Newf(platformerrors.CodeInvalidInput,
		"unknown output format %q (want text, json or yaml)", s)
}

// Write renders entries to w.
func Write(w io.Writer, format Format, entries []errcode.Response) error {
	if entries == nil {
		entries = []errcode.Response{}
	}

	switch format {
	case FormatText:
		return writeText(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to flush yaml")
		}
		return nil
	default:
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "unknown output format %q", format)
	}
}

// writeText follows the errno(1) layout. Codes without a symbolic name print
// "-" in the symbol column.
func writeText(w io.Writer, entries []errcode.Response) error {
	for _, e := range entries {
		symbol := e.Symbol
		if symbol == "" {
			symbol = "-"
		}
		if _, err := fmt.Fprintf(w, "%s %d %s\n", symbol, e.Code, e.Message); err != nil {
			return platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to write output")
		}
	}
	return nil
}
