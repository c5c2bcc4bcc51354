package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixkit/internal/embed"
)

var (
	embedOut      string
	embedQuality  int
	embedToolkit  string
	embedPreset   string
	embedPackage  string
	embedExamples bool
	embedWorkers  int
)

var embedCmd = &cobra.Command{
	Use:   "embed <folder>",
	Short: "Embed a folder of images as a generated Go source file",
	Long: `Scans the folder's immediate files for images, buckets them by the
{theme}_ filename prefix ("dark_icon.png" -> theme "dark", key
"icon.png"), re-compresses lossy formats at the given quality, and
writes a Go file holding the base64 asset map plus a loader for the
chosen toolkit. A JSON manifest sidecar describes the build.

Corrupted files are skipped with a warning; the command fails only when
the folder is missing, nothing at all could be embedded, or the output
cannot be written.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringVarP(&embedOut, "out", "o", "embedded_assets.go", "output Go file")
	embedCmd.Flags().IntVarP(&embedQuality, "quality", "q", embed.DefaultQuality, "re-compression quality 1-100 (clamped)")
	embedCmd.Flags().StringVar(&embedToolkit, "toolkit", "fyne", "target toolkit: fyne or gio")
	embedCmd.Flags().StringVar(&embedPreset, "preset", "general", "usage preset: icons, buttons, backgrounds, general")
	embedCmd.Flags().StringVar(&embedPackage, "package", "embedded", "package name of the generated file")
	embedCmd.Flags().BoolVar(&embedExamples, "examples", false, "include a usage example in the file doc")
	embedCmd.Flags().IntVarP(&embedWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(_ *cobra.Command, args []string) error {
	folder := args[0]
	start := time.Now()

	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("resolve folder: %w", err)
	}
	logVerbose("folder:  %s", absFolder)
	logVerbose("output:  %s", embedOut)
	logVerbose("toolkit: %s, preset: %s, quality: %d", embedToolkit, embedPreset, embedQuality)

	m, err := embed.EmbedFolder(absFolder, embedOut, embed.Options{
		Quality: embedQuality,
		Workers: embedWorkers,
		Verbose: verbose,
	}, embed.CodeOptions{
		Toolkit:         embedToolkit,
		Preset:          embedPreset,
		Package:         embedPackage,
		IncludeExamples: embedExamples,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Embedded %d assets across %d themes\n", m.Stats.Assets, m.Stats.Themes)
	fmt.Printf("  Payload:  %s (from %s raw)\n",
		formatBytes(m.Stats.EncodedBytes), formatBytes(m.Stats.RawBytes))
	fmt.Printf("  Artifact: %s\n", embedOut)
	fmt.Printf("  Manifest: %s\n", embed.ManifestPath(embedOut))
	fmt.Printf("  Time:     %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
