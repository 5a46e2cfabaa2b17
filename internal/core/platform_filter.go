package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"sailfish-platforms/internal/types"
)

// PlatformEnv is the environment a filter expression is evaluated
// against.  Defines holds composed symbol names only.
type PlatformEnv struct {
	ID             string   `expr:"id"`
	MCU            string   `expr:"mcu"`
	Programmer     string   `expr:"programmer"`
	BoardDirectory string   `expr:"board_directory"`
	Defines        []string `expr:"defines"`
	Squeeze        []string `expr:"squeeze"`
	Origin         string   `expr:"origin"`
}

// PlatformFilter selects resolved profiles with a boolean expression
// such as `mcu == "atmega2560" && "CORE_XY" in defines`.
type PlatformFilter struct {
	source  string
	program *vm.Program
}

// NewPlatformFilter compiles expression.  An empty expression matches
// every platform.
func NewPlatformFilter(expression string) (PlatformFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return PlatformFilter{}, nil
	}
	program, err := expr.Compile(expression, expr.Env(PlatformEnv{}), expr.AsBool())
	if err != nil {
		return PlatformFilter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid platform filter: %s", expression)).
			WithCause(err)
	}
	return PlatformFilter{source: expression, program: program}, nil
}

// Match reports whether profile satisfies the filter.
func (f PlatformFilter) Match(profile types.ResolvedProfile) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, NewPlatformEnv(profile))
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform filter failed for %s: %s", profile.ID, f.source)).
			WithCause(err)
	}
	matched, ok := out.(bool)
	return ok && matched, nil
}

func NewPlatformEnv(profile types.ResolvedProfile) PlatformEnv {
	squeeze := profile.Squeeze
	if squeeze == nil {
		squeeze = []string{}
	}
	return PlatformEnv{
		ID:             profile.ID,
		MCU:            profile.MCU,
		Programmer:     profile.Programmer,
		BoardDirectory: profile.BoardDirectory,
		Defines:        profile.DefineNames(),
		Squeeze:        squeeze,
		Origin:         string(profile.Origin),
	}
}
