package core

import (
	"errors"
	"iter"
	"slices"
	"sort"
	"strings"

	"sailfish-platforms/internal/types"
)

// Registry is the merged, read-only table of platform profiles.  It has
// no mutating methods, so a single value may be shared by concurrent
// Resolve callers.
type Registry struct {
	profiles map[string]types.PlatformProfile
	origins  map[string]types.ProfileOrigin
	ids      []string
}

// BuildRegistry merges extension profiles on top of the baseline.  An
// extension entry replaces the baseline entry with the same id as a
// whole; no fields are inherited.  Neither input is modified.
func BuildRegistry(baseline map[string]types.PlatformProfile, extension map[string]types.PlatformProfile) Registry {
	registry := Registry{
		profiles: make(map[string]types.PlatformProfile, len(baseline)+len(extension)),
		origins:  make(map[string]types.ProfileOrigin, len(baseline)+len(extension)),
	}
	for id, profile := range baseline {
		registry.profiles[id] = cloneProfile(profile)
		registry.origins[id] = types.OriginBaseline
	}
	for id, profile := range extension {
		if _, found := registry.profiles[id]; found {
			registry.origins[id] = types.OriginOverride
		} else {
			registry.origins[id] = types.OriginExtension
		}
		registry.profiles[id] = cloneProfile(profile)
	}
	registry.ids = make([]string, 0, len(registry.profiles))
	for id := range registry.profiles {
		registry.ids = append(registry.ids, id)
	}
	sort.Strings(registry.ids)
	return registry
}

// Resolve returns the profile for id with its defines composed.
func (r Registry) Resolve(id string) (types.ResolvedProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return types.ResolvedProfile{}, NewUnknownPlatformError(id, r.suggest(id))
	}
	defines, err := ComposeDefines(profile.Defines)
	if err != nil {
		var invalid *InvalidDefineError
		if errors.As(err, &invalid) {
			return types.ResolvedProfile{}, invalid.WithPlatform(id)
		}
		return types.ResolvedProfile{}, err
	}
	return types.ResolvedProfile{
		ID:             id,
		MCU:            profile.MCU,
		Programmer:     profile.Programmer,
		BoardDirectory: profile.BoardDirectory,
		Defines:        defines,
		Squeeze:        uniqueStrings(profile.Squeeze),
		Origin:         r.origins[id],
	}, nil
}

// Profile returns a copy of the raw, uncomposed profile for id.
func (r Registry) Profile(id string) (types.PlatformProfile, bool) {
	profile, ok := r.profiles[id]
	if !ok {
		return types.PlatformProfile{}, false
	}
	return cloneProfile(profile), true
}

// Origin reports where the profile for id came from.
func (r Registry) Origin(id string) (types.ProfileOrigin, bool) {
	origin, ok := r.origins[id]
	return origin, ok
}

// PlatformIDs yields every known id in sorted order.  The sequence may
// be ranged over any number of times.
func (r Registry) PlatformIDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range r.ids {
			if !yield(id) {
				return
			}
		}
	}
}

func (r Registry) Len() int {
	return len(r.ids)
}

// suggest returns up to three known ids that contain the unknown id or
// are a prefix of it, ignoring case.
func (r Registry) suggest(id string) []string {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return nil
	}
	var out []string
	for _, known := range r.ids {
		lower := strings.ToLower(known)
		if strings.Contains(lower, needle) || strings.HasPrefix(needle, lower) {
			out = append(out, known)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}

func cloneProfile(profile types.PlatformProfile) types.PlatformProfile {
	return types.PlatformProfile{
		MCU:            profile.MCU,
		Programmer:     profile.Programmer,
		BoardDirectory: profile.BoardDirectory,
		Defines:        slices.Clone(profile.Defines),
		Squeeze:        slices.Clone(profile.Squeeze),
	}
}

func uniqueStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
