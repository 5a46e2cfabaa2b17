package ports

import (
	"context"

	"sailfish-platforms/internal/types"
)

// BaselinePort provides the platform profiles shipped with the tool.
type BaselinePort interface {
	Load(ctx context.Context) (map[string]types.PlatformProfile, error)
}

// ExtensionLocatorPort finds the optional user extension file.
//
// An explicit override path takes precedence over the per-user default
// location.  When no source exists Locate returns (zero, false, nil);
// absence is never an error.
type ExtensionLocatorPort interface {
	Locate(ctx context.Context, override string) (types.ExtensionSource, bool, error)
}

// ExtensionSourcePort parses an extension file into platform profiles.
// A source that exists but cannot be parsed fails as a whole.
type ExtensionSourcePort interface {
	Load(ctx context.Context, source types.ExtensionSource) (map[string]types.PlatformProfile, error)
}
