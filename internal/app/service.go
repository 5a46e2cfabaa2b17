package app

import (
	"sailfish-platforms/internal/adapters"
	"sailfish-platforms/internal/ports"
)

type Service struct {
	Baseline   ports.BaselinePort
	Locator    ports.ExtensionLocatorPort
	Extensions ports.ExtensionSourcePort
	Output     func(dir string) ports.OutputPort
}

func NewService() Service {
	return Service{
		Baseline:   adapters.NewBaselineRegistryAdapter(),
		Locator:    adapters.NewExtensionLocatorAdapter(),
		Extensions: adapters.NewExtensionFileAdapter(),
		Output: func(dir string) ports.OutputPort {
			return adapters.NewOutputFileAdapter(dir)
		},
	}
}
