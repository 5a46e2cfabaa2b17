package ports

import "sailfish-platforms/internal/types"

type OutputPort interface {
	WriteResolvedProfile(profile types.ResolvedProfile) (string, error)
	WriteDefineFlags(profile types.ResolvedProfile) (string, error)
	WritePlatformList(ids []string) (string, error)
}
