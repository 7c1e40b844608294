package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davesmith10/pwaicons/internal/png"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PNG's header and chunk layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := png.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Printf("Bit depth:  %d\n", info.BitDepth)
	fmt.Printf("Color type: %s\n", png.ColorTypeName(info.ColorType))
	if info.Interlace != 0 {
		fmt.Println("Interlace:  Adam7")
	}
	fmt.Printf("Chunks:     %s\n", strings.Join(info.Chunks, " "))
	fmt.Printf("IDAT size:  %d bytes\n", info.IDATSize)
	fmt.Printf("File size:  %d bytes\n", len(data))

	return nil
}
