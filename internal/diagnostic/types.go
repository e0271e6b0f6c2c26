package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes reported by almanac validation.
const (
	CodeOverlappingRules = "overlapping-rules"
	CodeBrokenChain      = "broken-chain"
	CodeEmptyStage       = "empty-stage"
)

const unknownStr = "unknown"

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Stage names the stage this relates to (if any).
	Stage string
	// Line is the 1-based input line this relates to, or 0.
	Line int
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return unknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stage string, line int) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, stage, line))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stage string, line int) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, stage, line))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stage string, line int) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, stage, line))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, stage string, line int) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Line:     line,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsEmpty returns true if nothing at all was reported.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Errors)+len(d.Warnings)+len(d.Infos) == 0
}

// All returns every diagnostic, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
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
	var prefix []string
	if d.Stage != "" {
		prefix = append(prefix, "["+d.Stage+"]")
	}

	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
