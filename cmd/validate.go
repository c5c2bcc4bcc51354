package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixkit/internal/embed"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate an embed manifest against its generated artifact",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := embed.ReadManifest(manifestPath)
	if err != nil {
		return err
	}

	artifactPath := strings.TrimSuffix(manifestPath, ".manifest.json") + ".go"
	errs := validateManifest(m, artifactPath)

	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets in %d themes, artifact matches\n", m.Stats.Assets, m.Stats.Themes)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *embed.Manifest, artifactPath string) []string {
	var errs []string

	if m.Version != embed.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	artifact, err := os.ReadFile(artifactPath)
	if err != nil {
		errs = append(errs, fmt.Sprintf("artifact not found: %s", artifactPath))
	}
	source := string(artifact)

	for theme, assets := range m.Themes {
		if len(assets) == 0 {
			errs = append(errs, fmt.Sprintf("theme %q has no assets", theme))
		}
		if source != "" && !strings.Contains(source, fmt.Sprintf("%q: {", theme)) {
			errs = append(errs, fmt.Sprintf("theme %q missing from artifact", theme))
		}
		for key, a := range m.Themes[theme] {
			if a.Width <= 0 || a.Height <= 0 {
				errs = append(errs, fmt.Sprintf("asset %s/%s: invalid dimensions %dx%d",
					theme, key, a.Width, a.Height))
			}
			if a.Hash == "" {
				errs = append(errs, fmt.Sprintf("asset %s/%s: missing hash", theme, key))
			}
			if a.EncodedSize <= 0 {
				errs = append(errs, fmt.Sprintf("asset %s/%s: empty payload", theme, key))
			}
			if source != "" && !strings.Contains(source, fmt.Sprintf("%q: ", key)) {
				errs = append(errs, fmt.Sprintf("asset %s/%s: missing from artifact", theme, key))
			}
		}
	}

	// Stats consistency.
	assetCount := 0
	for _, assets := range m.Themes {
		assetCount += len(assets)
	}
	if m.Stats.Assets != assetCount {
		errs = append(errs, fmt.Sprintf("stats.assets mismatch: %d != %d", m.Stats.Assets, assetCount))
	}
	if m.Stats.Themes != len(m.Themes) {
		errs = append(errs, fmt.Sprintf("stats.themes mismatch: %d != %d", m.Stats.Themes, len(m.Themes)))
	}

	return errs
}
