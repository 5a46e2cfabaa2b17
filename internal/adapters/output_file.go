package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"sailfish-platforms/internal/ports"
	"sailfish-platforms/internal/shared"
	"sailfish-platforms/internal/types"
)

const platformListFile = "platforms.list"

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteResolvedProfile(profile types.ResolvedProfile) (string, error) {
	path, err := a.profilePath(profile.ID, ".platform.yaml")
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(types.NewProfileDocument(profile))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resolved profile").
			WithCause(err)
	}
	return path, writeFile(path, data)
}

// WriteDefineFlags writes one compiler flag per line in composition
// order.  Values are written byte-for-byte.
func (a OutputFileAdapter) WriteDefineFlags(profile types.ResolvedProfile) (string, error) {
	path, err := a.profilePath(profile.ID, ".defines")
	if err != nil {
		return "", err
	}
	return path, writeFile(path, []byte(joinLines(profile.Flags())))
}

func (a OutputFileAdapter) WritePlatformList(ids []string) (string, error) {
	path, err := a.ensurePath(platformListFile)
	if err != nil {
		return "", err
	}
	return path, writeFile(path, []byte(joinLines([]string{shared.JoinIDs(ids)})))
}

func (a OutputFileAdapter) profilePath(id string, suffix string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("platform id %q cannot be used as a file name", id))
	}
	return a.ensurePath(id + suffix)
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + filepath.Base(path)).
			WithCause(err)
	}
	return nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

var _ ports.OutputPort = OutputFileAdapter{}
