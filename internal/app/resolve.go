package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sailfish-platforms/internal/core"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("platform id is required")
	}
	loaded, err := s.LoadRegistry(ctx, req.RegistryRequest)
	if err != nil {
		return ResolveResult{}, err
	}
	return resolveIn(ctx, loaded.Registry, platform)
}

func resolveIn(ctx context.Context, registry core.Registry, platform string) (ResolveResult, error) {
	profile, err := registry.Resolve(platform)
	if err != nil {
		return ResolveResult{}, err
	}
	assert.NotEmpty(ctx, profile.MCU, "resolved mcu must be set")
	assert.NotEmpty(ctx, profile.Programmer, "resolved programmer must be set")
	assert.NotEmpty(ctx, profile.BoardDirectory, "resolved board_directory must be set")

	log.Ctx(ctx).Debug().
		Str("platform", profile.ID).
		Str("origin", string(profile.Origin)).
		Int("defines", len(profile.Defines)).
		Msg("platform resolved")
	return ResolveResult{Profile: profile, Diagnostics: core.CheckDisplayContracts(profile)}, nil
}
