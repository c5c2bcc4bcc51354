package embed

import (
	"encoding/base64"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/hasher"
)

// ThemeMap is the nested theme -> asset key -> base64 payload mapping.
// It is rebuilt wholesale on every encode run, never patched in place.
type ThemeMap map[string]map[string]string

// Options controls a folder encode run.
type Options struct {
	// Quality is the re-compression quality for lossy formats. Values
	// outside [1,100] are clamped; it is a tuning knob, not a
	// correctness-critical value. 0 selects the default (85).
	Quality int
	// Workers bounds the per-file fan-out. 0 means NumCPU.
	Workers int
	// Verbose enables per-file progress logging to stderr.
	Verbose bool
}

// DefaultQuality is the re-compression quality used when none is given.
const DefaultQuality = 85

func (o Options) effective() Options {
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Quality < 1 {
		o.Quality = 1
	}
	if o.Quality > 100 {
		o.Quality = 100
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// processResult holds the outcome for a single source file.
type processResult struct {
	src     Source
	payload string // base64
	info    AssetInfo
	err     error
}

// ProcessFolder scans folder and builds the theme map. Lossy formats are
// re-encoded at the clamped quality; everything else is copied raw.
// Unreadable or corrupted files are logged and skipped; an empty or
// all-invalid folder yields an empty map, not an error. Each file's
// encode is independent, so files are processed in parallel and merged
// under a single writer.
func ProcessFolder(folder string, opts Options) (ThemeMap, *Manifest, error) {
	opts = opts.effective()

	sources, err := ScanFolder(folder)
	if err != nil {
		return nil, nil, err
	}
	if opts.Verbose {
		logf("found %d images in %s", len(sources), folder)
	}

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = processFile(s, opts.Quality)
		}(i, src)
	}
	wg.Wait()

	themes := make(ThemeMap)
	m := NewManifest(folder)
	for _, r := range results {
		if r.err != nil {
			logf("warning: skipping %s: %v", r.src.AbsPath, r.err)
			continue
		}
		if themes[r.src.Theme] == nil {
			themes[r.src.Theme] = make(map[string]string)
		}
		themes[r.src.Theme][r.src.Key] = r.payload
		m.Add(r.src.Theme, r.src.Key, r.info)
		if opts.Verbose {
			logf("embedded %s/%s (%d -> %d bytes)", r.src.Theme, r.src.Key,
				r.info.RawSize, r.info.EncodedSize)
		}
	}
	m.ComputeStats()
	return themes, m, nil
}

// processFile reads, optionally re-compresses, and base64-encodes one
// source image.
func processFile(src Source, quality int) processResult {
	result := processResult{src: src}

	data, err := os.ReadFile(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("read: %w", err)
		return result
	}

	// Decode even when copying raw: this validates the bytes and
	// records the dimensions in the manifest.
	img, _, err := codec.Decode(data)
	if err != nil {
		result.err = err
		return result
	}

	recompressed := false
	if src.Format == "jpeg" {
		out, err := codec.Encode(img, "jpeg", quality)
		if err != nil {
			result.err = err
			return result
		}
		data = out
		recompressed = true
	}

	bounds := img.Bounds()
	result.payload = base64.StdEncoding.EncodeToString(data)
	result.info = AssetInfo{
		Format:       src.Format,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		RawSize:      src.Size,
		EncodedSize:  int64(len(data)),
		Hash:         hasher.Fingerprint(data, 16),
		Recompressed: recompressed,
	}
	return result
}

func logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[pixkit] "+format+"\n", args...)
}
