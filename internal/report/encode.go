package report

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Options control rendering.
type Options struct {
	Format Format
	// Color enables ANSI colors in text output.
	Color bool
}

// Write renders r to w.
func Write(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return WriteText(w, r, opts.Color)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatMsgpack:
		return WriteMsgpack(w, r)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

// WriteMsgpack writes r as a single msgpack value.
func WriteMsgpack(w io.Writer, r Report) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

// ReadMsgpack decodes a report written by WriteMsgpack.
func ReadMsgpack(rd io.Reader) (Report, error) {
	var r Report

	dec := msgpack.NewDecoder(rd)
	if err := dec.Decode(&r); err != nil {
		return Report{}, fmt.Errorf("failed to decode report: %w", err)
	}

	return r, nil
}
