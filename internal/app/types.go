package app

import (
	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/types"
)

// RegistryRequest controls where user platforms come from.  PlatformsFile
// overrides the default per-user location.
type RegistryRequest struct {
	PlatformsFile     string
	SkipUserPlatforms bool
}

type RegistryResult struct {
	Registry  core.Registry
	Extension *types.ExtensionSource
	Overrides []string
}

type ResolveRequest struct {
	RegistryRequest
	Platform string
}

type ResolveResult struct {
	Profile     types.ResolvedProfile
	Diagnostics []types.Diagnostic
}

type ListRequest struct {
	RegistryRequest
	Filter string
}

type ListResult struct {
	IDs []string
}

type ValidateRequest struct {
	RegistryRequest
	Strict bool
}

type ValidateResult struct {
	Platforms   int
	Extension   string
	Diagnostics []types.Diagnostic
}

type EmitRequest struct {
	RegistryRequest
	Platform  string
	OutputDir string
}

type EmitResult struct {
	Profile types.ResolvedProfile
	Files   []string
}
