package core

import (
	"fmt"

	"sailfish-platforms/internal/shared"
	"sailfish-platforms/internal/types"
)

const (
	SplashMessageSymbol  = "PLATFORM_SPLASH1_MSG"
	ProductNameSymbol    = "PLATFORM_THE_REPLICATOR_STR"
	SplashMessageWidth   = 20
	ProductNameMaxLength = 16
)

// CheckDisplayContracts reports string defines that will not fit the
// 20x4 LCD the firmware renders them on.  Values are never altered.
func CheckDisplayContracts(profile types.ResolvedProfile) []types.Diagnostic {
	var diagnostics []types.Diagnostic
	if define, ok := profile.Define(SplashMessageSymbol); ok && define.HasValue {
		text := shared.UnquoteDefineValue(define.Value)
		width := shared.DisplayWidth(text)
		switch {
		case width > SplashMessageWidth:
			diagnostics = append(diagnostics, types.Diagnostic{
				Platform: profile.ID,
				Symbol:   SplashMessageSymbol,
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("splash message is %d characters, display line holds %d", width, SplashMessageWidth),
			})
		case width < SplashMessageWidth:
			diagnostics = append(diagnostics, types.Diagnostic{
				Platform: profile.ID,
				Symbol:   SplashMessageSymbol,
				Severity: types.SeverityNotice,
				Message:  fmt.Sprintf("splash message is %d characters, expected exactly %d", width, SplashMessageWidth),
			})
		}
	}
	if define, ok := profile.Define(ProductNameSymbol); ok && define.HasValue {
		text := shared.UnquoteDefineValue(define.Value)
		if width := shared.DisplayWidth(text); width > ProductNameMaxLength {
			diagnostics = append(diagnostics, types.Diagnostic{
				Platform: profile.ID,
				Symbol:   ProductNameSymbol,
				Severity: types.SeverityWarning,
				Message:  fmt.Sprintf("product name is %d characters, limit is %d", width, ProductNameMaxLength),
			})
		}
	}
	return diagnostics
}
