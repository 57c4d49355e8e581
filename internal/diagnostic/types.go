package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"overload-resolver/internal/common"
)

// Diagnostics holds all rendered diagnostics of a run.
type Diagnostics struct {
	Errors   []Diagnostic `yaml:"errors,omitempty"   msgpack:"errors,omitempty"`
	Warnings []Diagnostic `yaml:"warnings,omitempty" msgpack:"warnings,omitempty"`
	Infos    []Diagnostic `yaml:"infos,omitempty"    msgpack:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity" msgpack:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code" msgpack:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" msgpack:"message"`
	// Site identifies the call or conditional expression (if any).
	Site string `yaml:"site,omitempty" msgpack:"site,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `yaml:"suggestions,omitempty" msgpack:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	// DiagnosticIgnore drops the finding; it never reaches Diagnostics.
	DiagnosticIgnore DiagnosticSeverity = iota
	DiagnosticInfo
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticIgnore:
		return "ignore"
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// ParseSeverity reads a severity name as written in configuration files.
func ParseSeverity(s string) (DiagnosticSeverity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return DiagnosticIgnore, nil
	case "info":
		return DiagnosticInfo, nil
	case "warning":
		return DiagnosticWarning, nil
	case "error":
		return DiagnosticError, nil
	default:
		return DiagnosticIgnore, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalYAML writes the severity by name.
func (s DiagnosticSeverity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, site string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Site:     site,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, site string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Site:     site,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, site string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Site:     site,
	})
}

// Add appends a diagnostic to the list matching its severity. Ignored
// diagnostics are dropped.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	case DiagnosticInfo:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if d.Site != "" {
		return d.Site + ": " + msg
	}

	return msg
}
