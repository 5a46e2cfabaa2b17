package types

import "strings"

// PlatformProfile is the build description of one firmware variant as
// authored in the baseline or in a user extension file.
type PlatformProfile struct {
	MCU            string   `yaml:"mcu" toml:"mcu"`
	Programmer     string   `yaml:"programmer" toml:"programmer"`
	BoardDirectory string   `yaml:"board_directory" toml:"board_directory"`
	Defines        []string `yaml:"defines" toml:"defines"`
	Squeeze        []string `yaml:"squeeze,omitempty" toml:"squeeze,omitempty"`
}

// PlatformFile is the top-level structure shared by the embedded
// baseline and user extension documents.
type PlatformFile struct {
	Platforms map[string]PlatformProfile `yaml:"platforms" toml:"platforms"`
}

// DefineDirective is one parsed entry of a profile's defines list.
type DefineDirective struct {
	Kind     DirectiveKind
	Name     string
	Value    string
	HasValue bool
	Raw      string
	Position int
}

// Define is a composed preprocessor symbol.
type Define struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value,omitempty"`
	HasValue bool   `yaml:"has_value,omitempty"`
}

// String renders the define the way it appears in a defines list.
func (d Define) String() string {
	if !d.HasValue {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// Flag renders the define as a compiler argument.
func (d Define) Flag() string {
	return "-D" + d.String()
}

// ResolvedProfile is a profile whose defines went through composition.
type ResolvedProfile struct {
	ID             string        `yaml:"id"`
	MCU            string        `yaml:"mcu"`
	Programmer     string        `yaml:"programmer"`
	BoardDirectory string        `yaml:"board_directory"`
	Defines        []Define      `yaml:"defines"`
	Squeeze        []string      `yaml:"squeeze,omitempty"`
	Origin         ProfileOrigin `yaml:"origin"`
}

// Define returns the composed define with the given name.
func (p ResolvedProfile) Define(name string) (Define, bool) {
	for _, define := range p.Defines {
		if define.Name == name {
			return define, true
		}
	}
	return Define{}, false
}

// DefineNames lists the composed define names in order.
func (p ResolvedProfile) DefineNames() []string {
	names := make([]string, 0, len(p.Defines))
	for _, define := range p.Defines {
		names = append(names, define.Name)
	}
	return names
}

// Flags renders every composed define as a compiler argument.
func (p ResolvedProfile) Flags() []string {
	flags := make([]string, 0, len(p.Defines))
	for _, define := range p.Defines {
		flags = append(flags, define.Flag())
	}
	return flags
}

// ExtensionSource points at a user-supplied platform file.
type ExtensionSource struct {
	Path   string
	Format ExtensionFormat
}

// Diagnostic is a non-fatal finding about a resolved profile.
type Diagnostic struct {
	Platform string
	Symbol   string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	b.WriteString(d.Platform)
	if d.Symbol != "" {
		b.WriteString(" ")
		b.WriteString(d.Symbol)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// ProfileDocument is the serialized form of a resolved profile.  Its
// layout matches a user platform entry so it can be copied into one.
type ProfileDocument struct {
	ID             string   `yaml:"id"`
	Origin         string   `yaml:"origin"`
	MCU            string   `yaml:"mcu"`
	Programmer     string   `yaml:"programmer"`
	BoardDirectory string   `yaml:"board_directory"`
	Defines        []string `yaml:"defines"`
	Squeeze        []string `yaml:"squeeze,omitempty"`
}

func NewProfileDocument(profile ResolvedProfile) ProfileDocument {
	defines := make([]string, 0, len(profile.Defines))
	for _, define := range profile.Defines {
		defines = append(defines, define.String())
	}
	return ProfileDocument{
		ID:             profile.ID,
		Origin:         string(profile.Origin),
		MCU:            profile.MCU,
		Programmer:     profile.Programmer,
		BoardDirectory: profile.BoardDirectory,
		Defines:        defines,
		Squeeze:        profile.Squeeze,
	}
}
