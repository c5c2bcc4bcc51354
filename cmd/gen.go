package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixkit/internal/anim"
	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/sample"
)

var (
	genTheme  string
	genSize   int
	genFrames int
)

var genCmd = &cobra.Command{
	Use:   "gen <out_dir>",
	Short: "Generate sample assets for a theme",
	Long: `Writes a deterministic set of procedural assets for the given theme:
icon archetypes, geometric shapes, tileable patterns, gradients, button
mockups and a spinner GIF. Filenames carry the theme prefix, so the
output folder feeds straight into 'pixkit embed'.`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genTheme, "theme", "t", "default", "theme: "+strings.Join(sample.ThemeNames(), ", "))
	genCmd.Flags().IntVarP(&genSize, "size", "s", 64, "asset size in pixels")
	genCmd.Flags().IntVar(&genFrames, "frames", 12, "animation frame count")
	rootCmd.AddCommand(genCmd)
}

func runGen(_ *cobra.Command, args []string) error {
	outDir := args[0]
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pal := sample.ThemePalette(genTheme)
	prefix := genTheme + "_"
	written := 0

	for _, kind := range sample.IconKinds() {
		path := filepath.Join(outDir, fmt.Sprintf("%sicon-%s.png", prefix, kind))
		if err := codec.Save(sample.Icon(kind, genSize, pal), path, "", 0); err != nil {
			return err
		}
		written++
	}

	for _, kind := range []sample.ShapeKind{sample.ShapeCircle, sample.ShapeSquare, sample.ShapeTriangle, sample.ShapeRing} {
		path := filepath.Join(outDir, fmt.Sprintf("%sshape-%s.png", prefix, kind))
		if err := codec.Save(sample.Shape(kind, genSize, pal, true), path, "", 0); err != nil {
			return err
		}
		written++
	}

	for _, kind := range []sample.PatternKind{sample.PatternChecker, sample.PatternStripes, sample.PatternDots} {
		path := filepath.Join(outDir, fmt.Sprintf("%spattern-%s.png", prefix, kind))
		if err := codec.Save(sample.Pattern(kind, genSize, pal), path, "", 0); err != nil {
			return err
		}
		written++
	}

	stops := sample.ThemeStops(pal)
	if err := codec.Save(sample.LinearGradient(genSize*4, genSize, stops),
		filepath.Join(outDir, prefix+"gradient-linear.png"), "", 0); err != nil {
		return err
	}
	if err := codec.Save(sample.RadialGradient(genSize*2, stops),
		filepath.Join(outDir, prefix+"gradient-radial.png"), "", 0); err != nil {
		return err
	}
	written += 2

	for _, style := range []sample.ButtonStyle{sample.ButtonFlat, sample.ButtonRaised, sample.ButtonRounded} {
		path := filepath.Join(outDir, fmt.Sprintf("%sbutton-%s.png", prefix, style))
		if err := codec.Save(sample.Button(style, genSize*3, genSize, pal), path, "", 0); err != nil {
			return err
		}
		written++
	}

	for _, kind := range []sample.AnimationKind{sample.AnimSpinner, sample.AnimPulse, sample.AnimBounce} {
		frames := sample.Animation(kind, genSize, genFrames, pal)
		seq := &anim.Sequence{Frames: frames, Delay: anim.DefaultDelay}
		data, err := anim.EncodeGIF(seq)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("%sanim-%s.gif", prefix, kind))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}

	fmt.Printf("  Wrote %d sample assets for theme %q to %s\n", written, genTheme, outDir)
	return nil
}
