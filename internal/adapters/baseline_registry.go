package adapters

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/ports"
	"sailfish-platforms/internal/types"
)

//go:embed baseline_platforms.yaml
var baselinePlatforms []byte

// BaselineRegistryAdapter serves the platform table compiled into the
// binary.  It never touches the filesystem.
type BaselineRegistryAdapter struct {
	Data      []byte
	Validator core.ProfileValidator
}

func NewBaselineRegistryAdapter() BaselineRegistryAdapter {
	return BaselineRegistryAdapter{
		Data:      baselinePlatforms,
		Validator: core.NewProfileValidator(),
	}
}

func (a BaselineRegistryAdapter) Load(ctx context.Context) (map[string]types.PlatformProfile, error) {
	var file types.PlatformFile
	decoder := yaml.NewDecoder(bytes.NewReader(a.Data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, core.NewMalformedBaselineError("", "failed to parse baseline yaml", err)
	}
	if len(file.Platforms) == 0 {
		return nil, core.NewMalformedBaselineError("", "no platforms defined", nil)
	}
	if id, err := a.Validator.ValidateAll(ctx, file.Platforms); err != nil {
		return nil, core.NewMalformedBaselineError(id, "invalid profile", err)
	}
	log.Ctx(ctx).Debug().Int("platforms", len(file.Platforms)).Msg("baseline registry loaded")
	return file.Platforms, nil
}

var _ ports.BaselinePort = BaselineRegistryAdapter{}
