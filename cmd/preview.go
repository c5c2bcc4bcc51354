package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixkit/internal/anim"
	"github.com/AnyUserName/pixkit/internal/assets"
	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/embed"
	"github.com/AnyUserName/pixkit/internal/transform"
)

var (
	previewTheme    string
	previewPreset   string
	previewAnimated bool
	previewDelay    int
	previewQuality  int
)

var previewCmd = &cobra.Command{
	Use:   "preview <folder> <name> <output>",
	Short: "Render an asset the way an embedding application would see it",
	Long: `Builds the theme map from the source folder exactly as "pixkit embed"
would, then resolves the named asset through the runtime library:
theme lookup with default fallback, the transformation pipeline, and
the memory adapter. The result is written to the output file.

Useful to inspect what LoadImage in a generated artifact will hand to
a widget, without compiling the artifact into an application.`,
	Args: cobra.ExactArgs(3),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewTheme, "theme", "t", "", "theme to resolve the asset in (default theme when empty)")
	previewCmd.Flags().StringVarP(&previewPreset, "preset", "p", "", "transform preset applied before adaptation")
	previewCmd.Flags().BoolVar(&previewAnimated, "animated", false, "render a multi-frame GIF asset frame by frame")
	previewCmd.Flags().IntVar(&previewDelay, "delay", 0, "animated frame delay in ms (0 = keep source)")
	previewCmd.Flags().IntVarP(&previewQuality, "quality", "q", 0, "encode quality 1-100 for lossy outputs")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	folder, name, output := args[0], args[1], args[2]

	cfg := transform.NewConfig()
	if previewPreset != "" {
		preset, ok := transform.Preset(previewPreset)
		if !ok {
			return fmt.Errorf("unknown preset %q", previewPreset)
		}
		cfg = preset
	}

	themes, _, err := embed.ProcessFolder(folder, embed.Options{Verbose: verbose})
	if err != nil {
		return err
	}
	lib := assets.NewLibrary(themes)
	logVerbose("library holds %d assets across %d themes", lib.Len(), len(lib.Themes()))

	handle, err := lib.GetImage(name, assets.ImageOptions{
		Theme:      previewTheme,
		Config:     cfg,
		Animated:   previewAnimated,
		FrameDelay: previewDelay,
	})
	if err != nil {
		return err
	}

	if handle.IsAnimated() {
		seq := &anim.Sequence{Delay: handle.Delay}
		for _, frame := range handle.Frames {
			seq.Frames = append(seq.Frames, frame.(*image.NRGBA))
		}
		data, err := anim.EncodeGIF(seq)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		logVerbose("wrote %d frames (%d ms delay) to %s", len(seq.Frames), seq.Delay, output)
		return nil
	}

	img := handle.Static.(*image.NRGBA)
	if err := codec.Save(img, output, "", previewQuality); err != nil {
		return err
	}
	logVerbose("wrote %s (%dx%d)", output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
