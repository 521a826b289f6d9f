package inference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Metadata is the sidecar JSON the model exporter writes next to each
// exported model, describing the dimensions it was traced with.
type Metadata struct {
	Algorithm string `json:"algorithm"`
	ObsDim    int    `json:"obs_dim"`
	ActDim    int    `json:"act_dim"`
}

// SidecarPath returns the metadata path for a model: the model path with
// its extension replaced by .json.
func SidecarPath(modelPath string) string {
	ext := filepath.Ext(modelPath)
	return strings.TrimSuffix(modelPath, ext) + ".json"
}

// LoadMetadata reads the metadata sidecar for modelPath. It returns
// (nil, nil) when no sidecar exists; a sidecar that exists but cannot be
// parsed is an error.
func LoadMetadata(modelPath string) (*Metadata, error) {
	path := SidecarPath(modelPath)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read model metadata %s: %w", path, err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse model metadata %s: %w", path, err)
	}
	return &meta, nil
}
