// Package embed turns a folder of image files into an embeddable Go
// source artifact: a theme-keyed base64 asset map plus a loader function
// for a target GUI toolkit, with a JSON manifest describing what was
// embedded.
package embed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// Source is one discovered image file, already bucketed into a theme.
type Source struct {
	// AbsPath is the path to the file on disk.
	AbsPath string
	// Theme is the lower-cased theme bucket parsed from the filename
	// prefix, or "default".
	Theme string
	// Key is the asset key: the filename with the theme prefix stripped.
	Key string
	// Format is the source format by extension (png, jpeg, gif, ...).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// ScanFolder lists the immediate image files of folder (non-recursive)
// and buckets each by theme. A filename "dark_icon.png" lands in theme
// "dark" with key "icon.png"; a prefix that is not purely alphabetic
// ("2x_icon.png") is kept as part of the key under "default".
func ScanFolder(folder string) ([]Source, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", imgerr.ErrNotFound, folder)
		}
		return nil, fmt.Errorf("%w: read dir %s: %v", imgerr.ErrIO, folder, err)
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !imageExtensions[ext] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}

		theme, key := SplitThemeKey(e.Name())

		format := strings.TrimPrefix(ext, ".")
		if format == "jpg" {
			format = "jpeg"
		}
		if format == "tif" {
			format = "tiff"
		}

		sources = append(sources, Source{
			AbsPath: filepath.Join(folder, e.Name()),
			Theme:   theme,
			Key:     key,
			Format:  format,
			Size:    info.Size(),
		})
	}
	return sources, nil
}

// SplitThemeKey parses the "{theme}_" filename prefix rule. The prefix
// counts as a theme only when it is a purely alphabetic token; the theme
// is lower-cased, the key keeps its original casing and extension.
func SplitThemeKey(filename string) (theme, key string) {
	idx := strings.Index(filename, "_")
	if idx <= 0 {
		return "default", filename
	}
	prefix := filename[:idx]
	rest := filename[idx+1:]
	if rest == "" || !isAlphabetic(prefix) {
		return "default", filename
	}
	return strings.ToLower(prefix), rest
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
