package app

import (
	"fmt"
	"os"

	"sailfish-platforms/internal/types"
)

// overrideHints returns one hint per built-in platform that a user file
// replaced.  Replacement is whole-profile, so a user entry that only
// meant to tweak one define silently drops the rest.
func overrideHints(overrides []string, source *types.ExtensionSource) []string {
	if source == nil {
		return nil
	}
	hints := make([]string, 0, len(overrides))
	for _, id := range overrides {
		hints = append(hints, fmt.Sprintf(
			"hint: %s from %s replaces the built-in profile entirely; copy any built-in defines you still need",
			id, source.Path,
		))
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
