package adapters

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"sailfish-platforms/internal/core"
	"sailfish-platforms/internal/ports"
	"sailfish-platforms/internal/types"
)

var errMultipleDocuments = errors.New("platform file must contain a single YAML document")

//go:embed extension_schema.json
var extensionSchemaJSON []byte

var extensionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("extension.schema.json", bytes.NewReader(extensionSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("extension.schema.json")
})

// ExtensionFileAdapter reads a declarative user platform file.  The
// document is checked against the extension schema before it is decoded
// so that every problem is reported with its location.
type ExtensionFileAdapter struct {
	Validator core.ProfileValidator
}

func NewExtensionFileAdapter() ExtensionFileAdapter {
	return ExtensionFileAdapter{Validator: core.NewProfileValidator()}
}

func (a ExtensionFileAdapter) Load(ctx context.Context, source types.ExtensionSource) (map[string]types.PlatformProfile, error) {
	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, core.NewExtensionLoadError(source.Path, "failed to read platform file", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, core.NewExtensionLoadError(source.Path, "platform file is empty", nil)
	}

	document, err := decodeDocument(source.Format, data)
	if errors.Is(err, errMultipleDocuments) {
		return nil, core.NewExtensionLoadError(source.Path, errMultipleDocuments.Error(), nil)
	}
	if err != nil {
		return nil, core.NewExtensionLoadError(source.Path, fmt.Sprintf("failed to parse %s", source.Format), err)
	}
	if err := validateDocument(document); err != nil {
		return nil, core.NewExtensionLoadError(source.Path, "platform file does not match schema", err)
	}

	file, err := decodePlatformFile(source.Format, data)
	if errors.Is(err, errMultipleDocuments) {
		return nil, core.NewExtensionLoadError(source.Path, errMultipleDocuments.Error(), nil)
	}
	if err != nil {
		return nil, core.NewExtensionLoadError(source.Path, fmt.Sprintf("failed to decode %s", source.Format), err)
	}
	if id, err := a.Validator.ValidateAll(ctx, file.Platforms); err != nil {
		return nil, core.NewExtensionLoadError(source.Path, "invalid profile "+id, err)
	}
	if file.Platforms == nil {
		file.Platforms = map[string]types.PlatformProfile{}
	}
	log.Ctx(ctx).Info().
		Str("path", source.Path).
		Int("platforms", len(file.Platforms)).
		Msg("loaded user platform file")
	return file.Platforms, nil
}

// decodeDocument parses data into a generic tree and normalizes it
// through JSON so the schema validator sees only JSON value types.
func decodeDocument(format types.ExtensionFormat, data []byte) (any, error) {
	var raw any
	switch format {
	case types.ExtensionFormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if err := singleDocument(decoder); err != nil {
			return nil, err
		}
		keyed, err := stringKeys(raw, "")
		if err != nil {
			return nil, err
		}
		raw = keyed
	case types.ExtensionFormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		raw = table
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return nil, err
	}
	return document, nil
}

func validateDocument(document any) error {
	schema, err := extensionSchema()
	if err != nil {
		return fmt.Errorf("failed to compile extension schema: %w", err)
	}
	if err := schema.Validate(document); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(validationErr)
		}
		return err
	}
	return nil
}

func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)
	if len(messages) == 0 {
		return errors.New(err.Message)
	}
	return errors.New(strings.Join(messages, "; "))
}

func decodePlatformFile(format types.ExtensionFormat, data []byte) (types.PlatformFile, error) {
	var file types.PlatformFile
	switch format {
	case types.ExtensionFormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return types.PlatformFile{}, err
		}
		if err := singleDocument(decoder); err != nil {
			return types.PlatformFile{}, err
		}
	case types.ExtensionFormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return types.PlatformFile{}, err
		}
	default:
		return types.PlatformFile{}, fmt.Errorf("unsupported format %q", format)
	}
	return file, nil
}

// singleDocument fails when decoder holds another document after the
// one already read.
func singleDocument(decoder *yaml.Decoder) error {
	var extra yaml.Node
	err := decoder.Decode(&extra)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errMultipleDocuments
	}
}

// stringKeys converts the map[any]any values yaml.v3 builds for
// non-string keys into map[string]any, and rejects keys that are not
// strings, such as an unquoted numeric platform id.
func stringKeys(value any, path string) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			converted, err := stringKeys(item, path+"/"+key)
			if err != nil {
				return nil, err
			}
			v[key] = converted
		}
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				location := path
				if location == "" {
					location = "(root)"
				}
				return nil, fmt.Errorf("%s: key %v is not a string (quote '%v')", location, key, key)
			}
			converted, err := stringKeys(item, path+"/"+name)
			if err != nil {
				return nil, err
			}
			out[name] = converted
		}
		return out, nil
	case []any:
		for i, item := range v {
			converted, err := stringKeys(item, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			v[i] = converted
		}
		return v, nil
	}
	return value, nil
}

var _ ports.ExtensionSourcePort = ExtensionFileAdapter{}
