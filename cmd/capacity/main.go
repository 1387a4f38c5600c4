package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/faanross/simulacra_img/internal/imageio"
	"github.com/faanross/simulacra_img/internal/spec"
	"github.com/faanross/simulacra_img/internal/stego"
)

func main() {
	inputFile := flag.String("input", "", "Path to cover image")
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("❌ Please provide input image with -input flag")
	}

	img, format, err := imageio.Load(*inputFile)
	if err != nil {
		log.Fatalf("❌ Error loading image: %v", err)
	}

	fmt.Printf("\n📊 Capacity of %s (%s, %dx%d, %d pixels)\n",
		*inputFile, format, img.Width, img.Height, img.PixelCount())
	fmt.Println("=" + strings.Repeat("=", 40))
	fmt.Printf("   %-6s %12s %12s %12s\n", "bits", "raw bytes", "text chars", "file bytes")

	for _, w := range spec.VALID_BIT_WIDTHS {
		raw := stego.Capacity(img.PixelCount(), w)
		fmt.Printf("   %-6d %12d %12d %12d\n", w, raw, raw, stego.FileCapacity(img.PixelCount(), w))
	}
}
