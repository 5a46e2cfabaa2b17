package app

import (
	"context"

	"sailfish-platforms/internal/core"
)

// List returns the known platform ids in sorted order.  With a filter,
// each platform is resolved so the expression can see its composed
// defines.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	filter, err := core.NewPlatformFilter(req.Filter)
	if err != nil {
		return ListResult{}, err
	}
	loaded, err := s.LoadRegistry(ctx, req.RegistryRequest)
	if err != nil {
		return ListResult{}, err
	}
	ids := make([]string, 0, loaded.Registry.Len())
	for id := range loaded.Registry.PlatformIDs() {
		if req.Filter == "" {
			ids = append(ids, id)
			continue
		}
		profile, err := loaded.Registry.Resolve(id)
		if err != nil {
			return ListResult{}, err
		}
		matched, err := filter.Match(profile)
		if err != nil {
			return ListResult{}, err
		}
		if matched {
			ids = append(ids, id)
		}
	}
	return ListResult{IDs: ids}, nil
}
