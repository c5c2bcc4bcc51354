package embed

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// Target describes one GUI toolkit flavor the generated artifact can be
// consumed from. The registry is an explicit table; adding a toolkit
// means adding an entry here, not hooking an init.
type Target struct {
	Name         string
	Imports      []string
	BlankImports []string
	HandleType   string
	// DecodeBody is the loader body between payload lookup and return.
	// It receives `name string` and `data []byte` in scope and must
	// return (HandleType, error).
	DecodeBody string
}

// targets is the static toolkit registration table.
var targets = map[string]Target{
	"fyne": {
		Name:       "fyne",
		Imports:    []string{"encoding/base64", "fmt", "fyne.io/fyne/v2"},
		HandleType: "fyne.Resource",
		DecodeBody: `	return fyne.NewStaticResource(name, data), nil`,
	},
	"gio": {
		Name:         "gio",
		Imports:      []string{"bytes", "encoding/base64", "fmt", "image", "gioui.org/op/paint"},
		BlankImports: []string{"image/gif", "image/jpeg", "image/png"},
		HandleType:   "paint.ImageOp",
		DecodeBody: `	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return paint.ImageOp{}, fmt.Errorf("decode asset %q: %w", name, err)
	}
	return paint.NewImageOp(img), nil`,
	},
}

// Toolkits lists the supported toolkit flavor names.
func Toolkits() []string { return []string{"fyne", "gio"} }

// presetDocs maps usage presets to the doc comment of the generated
// file. The preset changes documentation and the example block only,
// never the data payload.
var presetDocs = map[string]string{
	"icons":       "Icon assets for toolbar and menu use. Assets are looked up by\n// filename key and decoded on demand; themes switch entire icon sets.",
	"buttons":     "Button imagery (normal/hover/pressed states as separate keys).\n// Load the state you need and hand it to your button widget.",
	"backgrounds": "Background and banner imagery. Decoded lazily; keep the returned\n// handle alive for as long as the widget displays it.",
	"general":     "Embedded image assets, grouped by theme. Decoded on demand by\n// LoadImage; themes fall back to \"default\" per key.",
}

// presetExamples holds the optional usage example per preset.
var presetExamples = map[string]string{
	"icons":       "//\n// Example:\n//\n//\tres, err := LoadImage(\"gear.png\", \"dark\")\n//\tif err != nil { ... }\n//\ttoolbarAction.SetIcon(res)",
	"buttons":     "//\n// Example:\n//\n//\tnormal, _ := LoadImage(\"ok.png\", theme)\n//\tpressed, _ := LoadImage(\"ok_pressed.png\", theme)",
	"backgrounds": "//\n// Example:\n//\n//\tbg, err := LoadImage(\"hero.jpg\", \"default\")",
	"general":     "//\n// Example:\n//\n//\timg, err := LoadImage(\"logo.png\", \"default\")",
}

// CodeOptions selects how the artifact is rendered.
type CodeOptions struct {
	// Toolkit is the target flavor: "fyne" or "gio".
	Toolkit string
	// Preset selects the doc/example variant: icons, buttons,
	// backgrounds or general. Defaults to general.
	Preset string
	// Package is the package name of the generated file.
	Package string
	// IncludeExamples appends a usage example to the file doc.
	IncludeExamples bool
}

const artifactTemplate = `// Code generated by pixkit embed. DO NOT EDIT.
// Regenerate with: pixkit embed <folder> -o <this file>

// {{.Doc}}{{if .Example}}
{{.Example}}{{end}}
package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
{{- range .BlankImports}}
	_ "{{.}}"
{{- end}}
)

// EmbeddedImages maps theme -> asset key -> base64-encoded image bytes.
// Lookups fall back to the "default" theme when a key is missing from
// the requested theme.
var EmbeddedImages = map[string]map[string]string{
{{- range .Themes}}
	{{printf "%q" .Name}}: {
{{- range .Assets}}
		{{printf "%q" .Key}}: "{{.Payload}}",
{{- end}}
	},
{{- end}}
}

// LoadImage decodes the named asset for the given theme into a
// {{.HandleType}}. A key absent from both the requested theme and
// "default" is an error.
func LoadImage(name, theme string) ({{.HandleType}}, error) {
	payload, ok := EmbeddedImages[theme][name]
	if !ok {
		payload, ok = EmbeddedImages["default"][name]
	}
	if !ok {
		var zero {{.HandleType}}
		return zero, fmt.Errorf("embedded asset %q not found in theme %q or default", name, theme)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		var zero {{.HandleType}}
		return zero, fmt.Errorf("corrupt embedded asset %q: %w", name, err)
	}
{{.DecodeBody}}
}
`

type artifactData struct {
	Doc          string
	Example      string
	Package      string
	Imports      []string
	BlankImports []string
	HandleType   string
	DecodeBody   string
	Themes       []artifactTheme
}

type artifactTheme struct {
	Name   string
	Assets []artifactAsset
}

type artifactAsset struct {
	Key     string
	Payload string
}

// GenerateCode renders the Go source artifact for a theme map. Themes
// and keys are emitted in sorted order so regeneration from unchanged
// sources is byte-identical. An empty theme map fails with
// ErrNoValidImages.
func GenerateCode(themes ThemeMap, opts CodeOptions) (string, error) {
	total := 0
	for _, assets := range themes {
		total += len(assets)
	}
	if total == 0 {
		return "", fmt.Errorf("%w: nothing to embed", imgerr.ErrNoValidImages)
	}

	target, ok := targets[opts.Toolkit]
	if !ok {
		return "", fmt.Errorf("%w: unknown toolkit %q (want one of %s)",
			imgerr.ErrInvalidParameter, opts.Toolkit, strings.Join(Toolkits(), ", "))
	}
	preset := opts.Preset
	if preset == "" {
		preset = "general"
	}
	doc, ok := presetDocs[preset]
	if !ok {
		return "", fmt.Errorf("%w: unknown preset %q", imgerr.ErrInvalidParameter, preset)
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "embedded"
	}

	data := artifactData{
		Doc:          doc,
		Package:      pkg,
		Imports:      target.Imports,
		BlankImports: target.BlankImports,
		HandleType:   target.HandleType,
		DecodeBody:   target.DecodeBody,
	}
	if opts.IncludeExamples {
		data.Example = presetExamples[preset]
	}

	themeNames := make([]string, 0, len(themes))
	for name := range themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)
	for _, name := range themeNames {
		th := artifactTheme{Name: name}
		keys := make([]string, 0, len(themes[name]))
		for key := range themes[name] {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			th.Assets = append(th.Assets, artifactAsset{Key: key, Payload: themes[name][key]})
		}
		data.Themes = append(data.Themes, th)
	}

	tmpl := template.Must(template.New("artifact").Parse(artifactTemplate))
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render artifact: %w", err)
	}
	return sb.String(), nil
}
