package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/pwaicons/internal/ir"
	"github.com/davesmith10/pwaicons/internal/pipeline"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single icon with explicit geometry",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "Output PNG file")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().String("color", "#6366f1", "Base icon color (hex)")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	colorStr, _ := cmd.Flags().GetString("color")

	base, err := ir.ParseHex(colorStr)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(pipeline.Options{
		Width:  width,
		Height: height,
		Base:   base,
	})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Encoded %dx%d %s → %s (%d bytes)\n", width, height, base, outputPath, len(result.Data))
	return nil
}
