package forge

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"sigs.k8s.io/yaml"
)

// ArtifactTypeGenerated is the type of the artifacts recorded for generation targets.
const ArtifactTypeGenerated = "fabrikt-generated"

type Artifact struct {
	// The name of the artifact, i.e. the name of the generation target.
	Name string `json:"name"`
	// Type of artifact
	Type string `json:"type"`
	// Location of the artifact, i.e. the output directory.
	Location string `json:"location"`
	// Timestamp when the artifact was generated
	Timestamp string `json:"timestamp"`
	// Version is the git commit the artifact was generated at
	Version string `json:"version"`
	// Fingerprint identifies the inputs of the generation: the executable, the
	// arguments and the content of the api files.
	Fingerprint string `json:"fingerprint,omitempty"`
}

type ArtifactStore struct {
	Version     string     `json:"version"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Artifacts   []Artifact `json:"artifacts"`
}

var (
	errReadingArtifactStore = errors.New("reading artifact store")
	errWritingArtifactStore = errors.New("writing artifact store")
	errArtifactNotFound     = errors.New("artifact not found")
)

const artifactStoreVersion = "1.0"

// ReadArtifactStore reads the artifact store from the specified path.
// Returns an error if the file doesn't exist.
func ReadArtifactStore(path string) (ArtifactStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ArtifactStore{}, flaterrors.Join(err, errReadingArtifactStore)
	}

	out := ArtifactStore{} //nolint:exhaustruct // unmarshal

	if err := yaml.Unmarshal(b, &out); err != nil {
		return ArtifactStore{}, flaterrors.Join(err, errReadingArtifactStore)
	}

	if out.Artifacts == nil {
		out.Artifacts = []Artifact{}
	}
	if out.Version == "" {
		out.Version = artifactStoreVersion
	}

	return out, nil
}

// ReadOrCreateArtifactStore reads the artifact store from the specified path.
// If the file doesn't exist, it returns an initialized empty store.
func ReadOrCreateArtifactStore(path string) (ArtifactStore, error) {
	store, err := ReadArtifactStore(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ArtifactStore{
				Version:     artifactStoreVersion,
				LastUpdated: time.Now().UTC(),
				Artifacts:   []Artifact{},
			}, nil
		}
		return ArtifactStore{}, err
	}
	return store, nil
}

// WriteArtifactStore writes the artifact store to the specified path, creating
// its parent directory if needed.
func WriteArtifactStore(path string, store ArtifactStore) error {
	b, err := yaml.Marshal(store)
	if err != nil {
		return flaterrors.Join(err, errWritingArtifactStore)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return flaterrors.Join(err, errWritingArtifactStore)
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return flaterrors.Join(err, errWritingArtifactStore)
	}

	return nil
}

// AddOrUpdateArtifact adds a new artifact to the store or replaces the artifact
// with the same name and type.
func AddOrUpdateArtifact(store *ArtifactStore, artifact Artifact) {
	if store == nil {
		return
	}

	store.LastUpdated = time.Now().UTC()

	for i, existing := range store.Artifacts {
		if existing.Name == artifact.Name && existing.Type == artifact.Type {
			store.Artifacts[i] = artifact
			return
		}
	}

	store.Artifacts = append(store.Artifacts, artifact)
}

// GetLatestArtifact finds the most recent artifact with the given name and type.
func GetLatestArtifact(store ArtifactStore, name, artifactType string) (Artifact, error) {
	var latest Artifact
	var latestTime time.Time
	found := false

	for _, artifact := range store.Artifacts {
		if artifact.Name != name || artifact.Type != artifactType {
			continue
		}

		t, err := time.Parse(time.RFC3339, artifact.Timestamp)
		if err != nil {
			// Skip artifacts with invalid timestamps
			continue
		}

		if !found || t.After(latestTime) {
			latest = artifact
			latestTime = t
			found = true
		}
	}

	if !found {
		return Artifact{}, flaterrors.Join(
			errors.New("no artifact found with name: "+name),
			errArtifactNotFound,
		)
	}

	return latest, nil
}

// IsUpToDate reports whether the latest artifact of the target was generated
// from the same inputs and its output still exists.
func IsUpToDate(store ArtifactStore, name, fingerprint string) bool {
	artifact, err := GetLatestArtifact(store, name, ArtifactTypeGenerated)
	if err != nil || artifact.Fingerprint == "" || artifact.Fingerprint != fingerprint {
		return false
	}

	info, err := os.Stat(artifact.Location)
	return err == nil && info.IsDir()
}
