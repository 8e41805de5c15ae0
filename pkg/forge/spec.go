package forge

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

const (
	// ConfigPath is the default path to the forge configuration file.
	ConfigPath = "forge.yaml"

	// DefaultArtifactStorePath is used when artifactStorePath is not set.
	DefaultArtifactStorePath = ".forge/artifact-store.yaml"
)

// Spec represents the forge configuration.
// It is read from the forge.yaml file.
type Spec struct {
	// Name is the name of the project.
	Name string `json:"name,omitempty"`

	// Path to the artifact store. The artifact store is a yaml data structure that
	// tracks the name, timestamp and input fingerprint of every generated target.
	ArtifactStorePath string `json:"artifactStorePath,omitempty"`

	// Fabrikt holds the configuration of the fabrikt code generator.
	Fabrikt FabriktConfig `json:"fabrikt"`
}

// Validate validates the Spec
func (s *Spec) Validate() error {
	errs := field.ErrorList{}

	if s.ArtifactStorePath == "" {
		errs = append(errs, field.Required(field.NewPath("artifactStorePath"), ""))
	}

	errs = append(errs, s.Fabrikt.Validate(field.NewPath("fabrikt"))...)

	return errs.ToAggregate()
}

// ApplyDefaults sets the defaults of every unset field. Relative paths are
// resolved against baseDir.
func (s *Spec) ApplyDefaults(baseDir string) {
	if s.ArtifactStorePath == "" {
		s.ArtifactStorePath = DefaultArtifactStorePath
	}
	s.ArtifactStorePath = resolvePath(baseDir, s.ArtifactStorePath)

	s.Fabrikt.ApplyDefaults(baseDir)
}

var errReadingProjectConfig = errors.New("error reading project config")

// ReadSpecFromPath reads the forge configuration from the specified file path.
// Defaults are applied and relative paths are resolved against the directory of
// the file before the spec is validated.
func ReadSpecFromPath(path string) (Spec, error) {
	b, err := os.ReadFile(path) //nolint:varnamelen
	if err != nil {
		return Spec{}, flaterrors.Join(err, errReadingProjectConfig)
	}

	out := Spec{} //nolint:exhaustruct // unmarshal

	if err := yaml.UnmarshalStrict(b, &out); err != nil {
		return Spec{}, flaterrors.Join(err, errReadingProjectConfig)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return Spec{}, flaterrors.Join(err, errReadingProjectConfig)
	}

	out.ApplyDefaults(baseDir)

	if err := out.Validate(); err != nil {
		return Spec{}, flaterrors.Join(err, errReadingProjectConfig)
	}

	return out, nil
}

// resolvePath makes p absolute relative to baseDir. Empty paths stay empty.
func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
