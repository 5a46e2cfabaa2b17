package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/types"
)

// LoadRegistry builds the merged registry: baseline first, then the user
// extension if one is found.  A broken extension fails the whole load.
func (s Service) LoadRegistry(ctx context.Context, req RegistryRequest) (RegistryResult, error) {
	baseline, err := s.Baseline.Load(ctx)
	if err != nil {
		return RegistryResult{}, err
	}

	var (
		extension map[string]types.PlatformProfile
		source    *types.ExtensionSource
	)
	if req.SkipUserPlatforms && req.PlatformsFile == "" {
		log.Ctx(ctx).Debug().Msg("user platforms skipped")
	} else {
		located, ok, err := s.Locator.Locate(ctx, req.PlatformsFile)
		if err != nil {
			return RegistryResult{}, err
		}
		if ok {
			extension, err = s.Extensions.Load(ctx, located)
			if err != nil {
				return RegistryResult{}, err
			}
			source = &located
		}
	}

	registry := core.BuildRegistry(baseline, extension)
	overrides := overriddenPlatforms(registry)
	emitHints(overrideHints(overrides, source))
	log.Ctx(ctx).Debug().
		Int("platforms", registry.Len()).
		Int("overrides", len(overrides)).
		Msg("registry ready")
	return RegistryResult{Registry: registry, Extension: source, Overrides: overrides}, nil
}

func overriddenPlatforms(registry core.Registry) []string {
	var out []string
	for id := range registry.PlatformIDs() {
		if origin, _ := registry.Origin(id); origin == types.OriginOverride {
			out = append(out, id)
		}
	}
	return out
}
