package embed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// SupportedManifestVersion is the current manifest schema version.
const SupportedManifestVersion = 1

// Manifest is the JSON sidecar written next to a generated artifact. It
// records what was embedded so `pixkit stats` and `pixkit validate` can
// inspect a build without parsing Go source.
type Manifest struct {
	Version     int                             `json:"version"`
	GeneratedAt string                          `json:"generated_at"`
	SourceDir   string                          `json:"source_dir"`
	Toolkit     string                          `json:"toolkit,omitempty"`
	Preset      string                          `json:"preset,omitempty"`
	Themes      map[string]map[string]AssetInfo `json:"themes"`
	Stats       Stats                           `json:"stats"`
}

// AssetInfo describes a single embedded asset.
type AssetInfo struct {
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RawSize      int64  `json:"raw_size"`
	EncodedSize  int64  `json:"encoded_size"` // pre-base64 payload bytes
	Hash         string `json:"hash"`         // 16 hex chars of xxhash64
	Recompressed bool   `json:"recompressed,omitempty"`
}

// Stats aggregates embed metrics.
type Stats struct {
	Themes       int   `json:"themes"`
	Assets       int   `json:"assets"`
	RawBytes     int64 `json:"raw_bytes"`
	EncodedBytes int64 `json:"encoded_bytes"`
}

// NewManifest creates an empty manifest for a source directory.
func NewManifest(sourceDir string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		SourceDir:   sourceDir,
		Themes:      make(map[string]map[string]AssetInfo),
	}
}

// Add records one embedded asset.
func (m *Manifest) Add(theme, key string, info AssetInfo) {
	if m.Themes[theme] == nil {
		m.Themes[theme] = make(map[string]AssetInfo)
	}
	m.Themes[theme][key] = info
}

// ComputeStats recalculates aggregate statistics from the theme map.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.Themes = len(m.Themes)
	for _, assets := range m.Themes {
		s.Assets += len(assets)
		for _, a := range assets {
			s.RawBytes += a.RawSize
			s.EncodedBytes += a.EncodedSize
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to path.
func (m *Manifest) WriteJSON(path string) error {
	m.ComputeStats()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", imgerr.ErrIO, path, err)
	}
	return nil
}

// ReadManifest loads and parses a manifest file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", imgerr.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", imgerr.ErrIO, path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
