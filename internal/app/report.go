package app

import (
	"encoding/json"

	"github.com/devindavies/barrelint/internal/core/domain"
	"go.trai.ch/zerr"
)

// diagnosticDTO is the machine-readable form of a diagnostic.
type diagnosticDTO struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Specifier  string `json:"specifier"`
	GraphSize  int    `json:"moduleGraphSize"`
	MaxAllowed int    `json:"maxAllowed"`
	Message    string `json:"message"`
}

func (a *App) reportJSON(diags []domain.Diagnostic) error {
	out := make([]diagnosticDTO, 0, len(diags))
	for _, d := range diags {
		out = append(out, diagnosticDTO{
			File:       d.File,
			Line:       d.Line,
			Column:     d.Column,
			Specifier:  d.Specifier.String(),
			GraphSize:  d.GraphSize,
			MaxAllowed: d.MaxAllowed,
			Message:    d.Message(),
		})
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return zerr.Wrap(err, "failed to encode diagnostics")
	}
	return nil
}
