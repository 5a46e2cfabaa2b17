package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/types"
)

type platformCheck struct {
	diagnostics []types.Diagnostic
	err         error
}

// Validate resolves every platform in the merged registry and reports
// all composition failures together with display diagnostics.  In
// strict mode any warning fails validation.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	loaded, err := s.LoadRegistry(ctx, req.RegistryRequest)
	if err != nil {
		return ValidateResult{}, err
	}

	var ids []string
	for id := range loaded.Registry.PlatformIDs() {
		ids = append(ids, id)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	checks := make([]platformCheck, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			profile, err := loaded.Registry.Resolve(id)
			if err != nil {
				checks[i] = platformCheck{err: err}
				return nil
			}
			checks[i] = platformCheck{diagnostics: core.CheckDisplayContracts(profile)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{Platforms: len(ids)}
	if loaded.Extension != nil {
		result.Extension = loaded.Extension.Path
	}
	var failures []error
	warnings := 0
	for _, check := range checks {
		if check.err != nil {
			failures = append(failures, check.err)
			continue
		}
		for _, diagnostic := range check.diagnostics {
			if diagnostic.Severity == types.SeverityWarning {
				warnings++
			}
		}
		result.Diagnostics = append(result.Diagnostics, check.diagnostics...)
	}
	if len(failures) > 0 {
		return result, errors.Join(failures...)
	}
	if req.Strict && warnings > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d display warning(s) in strict mode", warnings))
	}
	log.Ctx(ctx).Debug().
		Int("platforms", result.Platforms).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("platforms validated")
	return result, nil
}
