package types

type DirectiveKind string

const (
	DirectiveAdd    DirectiveKind = "add"
	DirectiveRemove DirectiveKind = "remove"
)

type ProfileOrigin string

const (
	OriginBaseline  ProfileOrigin = "baseline"
	OriginExtension ProfileOrigin = "extension"
	OriginOverride  ProfileOrigin = "override"
)

type ExtensionFormat string

const (
	ExtensionFormatYAML ExtensionFormat = "yaml"
	ExtensionFormatTOML ExtensionFormat = "toml"
)

type Severity string

const (
	SeverityNotice  Severity = "notice"
	SeverityWarning Severity = "warning"
)
