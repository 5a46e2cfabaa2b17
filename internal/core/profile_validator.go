package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sailfish-platforms/internal/types"
)

type ProfileValidator struct{}

func NewProfileValidator() ProfileValidator {
	return ProfileValidator{}
}

// ValidateProfile checks the structural requirements every profile must
// meet before it can enter a registry.  Define syntax is checked later,
// when the profile is resolved.
func (v ProfileValidator) ValidateProfile(ctx context.Context, id string, profile types.PlatformProfile) error {
	if strings.TrimSpace(id) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("platform id must not be empty")
	}
	if strings.ContainsAny(id, " \t\r\n") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform id %q must not contain whitespace", id))
	}
	if strings.TrimSpace(profile.MCU) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform %s missing mcu", id))
	}
	if strings.TrimSpace(profile.Programmer) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform %s missing programmer", id))
	}
	if strings.TrimSpace(profile.BoardDirectory) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform %s missing board_directory", id))
	}
	for i, define := range profile.Defines {
		if strings.TrimSpace(define) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("platform %s has empty defines entry at position %d", id, i))
		}
	}
	for i, file := range profile.Squeeze {
		if strings.TrimSpace(file) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("platform %s has empty squeeze entry at position %d", id, i))
		}
	}
	log.Ctx(ctx).Debug().Str("platform", id).Msg("profile validated")
	return nil
}

// ValidateAll validates every profile in a mapping in sorted id order so
// the first reported failure is stable.
func (v ProfileValidator) ValidateAll(ctx context.Context, profiles map[string]types.PlatformProfile) (string, error) {
	for _, id := range sortedIDs(profiles) {
		if err := v.ValidateProfile(ctx, id, profiles[id]); err != nil {
			return id, err
		}
	}
	return "", nil
}

func sortedIDs(profiles map[string]types.PlatformProfile) []string {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
