package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixkit/internal/embed"
)

var statsCmd = &cobra.Command{
	Use:   "stats <manifest_or_dir>",
	Short: "Display statistics for an embed manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for a manifest inside.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		matches, _ := filepath.Glob(filepath.Join(path, "*.manifest.json"))
		if len(matches) == 0 {
			return fmt.Errorf("no *.manifest.json in %s", path)
		}
		path = matches[0]
	}

	m, err := embed.ReadManifest(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

func printStats(m *embed.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Source dir:       %s\n", m.SourceDir)
	if m.Toolkit != "" {
		fmt.Printf("  Toolkit:          %s\n", m.Toolkit)
	}
	if m.Preset != "" {
		fmt.Printf("  Preset:           %s\n", m.Preset)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Themes:       %d\n", s.Themes)
	fmt.Printf("  Assets:       %d\n", s.Assets)
	fmt.Printf("  Raw size:     %s\n", formatBytes(s.RawBytes))
	fmt.Printf("  Payload size: %s\n", formatBytes(s.EncodedBytes))
	if s.RawBytes > 0 {
		ratio := float64(s.EncodedBytes) / float64(s.RawBytes) * 100
		fmt.Printf("  Ratio:        %.1f%% of original\n", ratio)
	}
	fmt.Println()

	// Per-theme breakdown, sorted by name.
	themes := make([]string, 0, len(m.Themes))
	for name := range m.Themes {
		themes = append(themes, name)
	}
	sort.Strings(themes)

	fmt.Println("  Theme breakdown:")
	for _, theme := range themes {
		var bytes int64
		recompressed := 0
		for _, a := range m.Themes[theme] {
			bytes += a.EncodedSize
			if a.Recompressed {
				recompressed++
			}
		}
		fmt.Printf("    %-12s %4d assets  %10s", theme, len(m.Themes[theme]), formatBytes(bytes))
		if recompressed > 0 {
			fmt.Printf("  (%d re-compressed)", recompressed)
		}
		fmt.Println()
	}
	fmt.Println()

	// Per-format breakdown.
	formatCounts := map[string]int{}
	for _, assets := range m.Themes {
		for _, a := range assets {
			formatCounts[a.Format]++
		}
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"} {
		if n, ok := formatCounts[f]; ok {
			fmt.Printf("    %-6s %4d assets\n", f, n)
		}
	}
	fmt.Println()
}
