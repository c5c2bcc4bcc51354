package embed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// EmbedFolder processes folder, renders the source artifact, and writes
// it to outFile along with a JSON manifest sidecar. Underlying scan,
// encode, and render errors propagate unchanged; an unwritable output
// path reports ErrIO.
func EmbedFolder(folder, outFile string, opts Options, code CodeOptions) (*Manifest, error) {
	themes, manifest, err := ProcessFolder(folder, opts)
	if err != nil {
		return nil, err
	}

	source, err := GenerateCode(themes, code)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(outFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: mkdir %s: %v", imgerr.ErrIO, dir, err)
		}
	}
	if err := os.WriteFile(outFile, []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("%w: write %s: %v", imgerr.ErrIO, outFile, err)
	}

	manifest.Toolkit = code.Toolkit
	manifest.Preset = code.Preset
	if err := manifest.WriteJSON(ManifestPath(outFile)); err != nil {
		return nil, err
	}
	return manifest, nil
}

// ManifestPath derives the manifest sidecar path for an artifact file:
// assets.go -> assets.manifest.json.
func ManifestPath(outFile string) string {
	return strings.TrimSuffix(outFile, filepath.Ext(outFile)) + ".manifest.json"
}
