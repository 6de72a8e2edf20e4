package ui

import (
	"strings"

	"toruslife/pkg/core"
)

// statusKeys lists the snapshot entries shown on the HUD, in order.
var statusKeys = []string{"iterations", "alive", "status"}

// StatusLine formats the run progress from a parameter snapshot, e.g.
// "Iterations 12  Alive 340  Status running". Missing keys are skipped.
func StatusLine(s core.ParameterSnapshot) string {
	parts := make([]string, 0, len(statusKeys))
	for _, key := range statusKeys {
		if p, ok := s.Lookup(key); ok {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}
