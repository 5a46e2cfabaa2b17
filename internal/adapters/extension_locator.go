package adapters

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"

	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/ports"
	"sailfish-platforms/internal/types"
)

const (
	userPlatformsBase   = ".sailfish_platforms"
	legacyPlatformsFile = ".sailfish_platforms.py"
)

// LocatorEnv is the part of the process environment the locator reads.
type LocatorEnv struct {
	Home            string `env:"HOME"`
	PlatformsFile   string `env:"SAILFISH_PLATFORMS_FILE"`
	NoUserPlatforms bool   `env:"SAILFISH_NO_USER_PLATFORMS"`
}

// ExtensionLocatorAdapter finds the user extension file.  Home, when
// set, replaces $HOME as the directory searched for the default file.
type ExtensionLocatorAdapter struct {
	Home string
}

func NewExtensionLocatorAdapter() ExtensionLocatorAdapter {
	return ExtensionLocatorAdapter{}
}

func (a ExtensionLocatorAdapter) Locate(ctx context.Context, override string) (types.ExtensionSource, bool, error) {
	var cfg LocatorEnv
	if err := env.Parse(&cfg); err != nil {
		return types.ExtensionSource{}, false, core.NewExtensionLoadError("environment", "failed to parse locator environment", err)
	}
	home := a.Home
	if home == "" {
		home = cfg.Home
	}

	path := strings.TrimSpace(override)
	if path == "" {
		path = strings.TrimSpace(cfg.PlatformsFile)
	}
	if path != "" {
		source, err := explicitSource(expandHome(path, home))
		if err != nil {
			return types.ExtensionSource{}, false, err
		}
		log.Ctx(ctx).Debug().Str("path", source.Path).Msg("using explicit platform file")
		return source, true, nil
	}

	if cfg.NoUserPlatforms {
		log.Ctx(ctx).Debug().Msg("user platform file disabled")
		return types.ExtensionSource{}, false, nil
	}
	if home == "" {
		return types.ExtensionSource{}, false, nil
	}

	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		candidate := filepath.Join(home, userPlatformsBase+ext)
		found, err := regularFile(candidate)
		if err != nil {
			return types.ExtensionSource{}, false, err
		}
		if found {
			format, _ := formatForPath(candidate)
			log.Ctx(ctx).Debug().Str("path", candidate).Msg("found user platform file")
			return types.ExtensionSource{Path: candidate, Format: format}, true, nil
		}
	}

	legacy := filepath.Join(home, legacyPlatformsFile)
	if found, _ := regularFile(legacy); found {
		log.Ctx(ctx).Warn().
			Str("path", legacy).
			Msg("ignoring executable platform file; move its profiles to " + filepath.Join(home, userPlatformsBase+".yaml"))
	}
	return types.ExtensionSource{}, false, nil
}

func explicitSource(path string) (types.ExtensionSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ExtensionSource{}, core.NewMissingExtensionError(path, err)
		}
		return types.ExtensionSource{}, core.NewExtensionLoadError(path, "failed to stat platform file", err)
	}
	if info.IsDir() {
		return types.ExtensionSource{}, core.NewExtensionLoadError(path, "platform file is a directory", nil)
	}
	format, ok := formatForPath(path)
	if !ok {
		return types.ExtensionSource{}, core.NewExtensionLoadError(path, "unsupported platform file format (want .yaml, .yml or .toml)", nil)
	}
	return types.ExtensionSource{Path: path, Format: format}, nil
}

func regularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, core.NewExtensionLoadError(path, "failed to stat platform file", err)
	}
	return !info.IsDir(), nil
}

func formatForPath(path string) (types.ExtensionFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.ExtensionFormatYAML, true
	case ".toml":
		return types.ExtensionFormatTOML, true
	default:
		return "", false
	}
}

func expandHome(path string, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

var _ ports.ExtensionLocatorPort = ExtensionLocatorAdapter{}
