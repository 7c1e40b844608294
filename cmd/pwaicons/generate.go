package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davesmith10/pwaicons/internal/ir"
	"github.com/davesmith10/pwaicons/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the standard PWA icon set",
	RunE:  runGenerate,
}

// iconSet is the fixed set of icons a PWA manifest expects.
var iconSet = []struct {
	name   string
	width  int
	height int
}{
	{"pwa-192x192.png", 192, 192},
	{"pwa-512x512.png", 512, 512},
	{"apple-touch-icon.png", 180, 180},
}

func init() {
	generateCmd.Flags().StringP("out", "o", "public", "Output directory")
	generateCmd.Flags().String("color", "#6366f1", "Base icon color (hex)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	colorStr, _ := cmd.Flags().GetString("color")

	base, err := ir.ParseHex(colorStr)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, icon := range iconSet {
		result, err := pipeline.Run(pipeline.Options{
			Width:  icon.width,
			Height: icon.height,
			Base:   base,
		})
		if err != nil {
			return fmt.Errorf("generating %s: %w", icon.name, err)
		}

		path := filepath.Join(outDir, icon.name)
		if err := os.WriteFile(path, result.Data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("Created %s (%dx%d, %d bytes)\n", path, icon.width, icon.height, len(result.Data))
	}

	return nil
}
