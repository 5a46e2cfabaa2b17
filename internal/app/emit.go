package app

import (
	"context"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sailfish-platforms/internal/types"
)

// Emit resolves one platform and writes the files a firmware build
// consumes: the resolved profile, its define flags and the platform list.
func (s Service) Emit(ctx context.Context, req EmitRequest) (EmitResult, error) {
	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		return EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("platform id is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return EmitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	loaded, err := s.LoadRegistry(ctx, req.RegistryRequest)
	if err != nil {
		return EmitResult{}, err
	}
	resolved, err := resolveIn(ctx, loaded.Registry, platform)
	if err != nil {
		return EmitResult{}, err
	}

	output := s.Output(outputDir)
	profilePath, err := output.WriteResolvedProfile(resolved.Profile)
	if err != nil {
		return EmitResult{}, err
	}
	definesPath, err := output.WriteDefineFlags(resolved.Profile)
	if err != nil {
		return EmitResult{}, err
	}
	listPath, err := output.WritePlatformList(slices.Collect(loaded.Registry.PlatformIDs()))
	if err != nil {
		return EmitResult{}, err
	}
	for _, diagnostic := range resolved.Diagnostics {
		if diagnostic.Severity == types.SeverityWarning {
			log.Ctx(ctx).Warn().Msg(diagnostic.String())
		} else {
			log.Ctx(ctx).Debug().Msg(diagnostic.String())
		}
	}
	log.Ctx(ctx).Info().
		Str("platform", resolved.Profile.ID).
		Str("output", outputDir).
		Msg("platform emitted")
	return EmitResult{Profile: resolved.Profile, Files: []string{profilePath, definesPath, listPath}}, nil
}
