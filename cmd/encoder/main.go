package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faanross/simulacra_img/internal/imageio"
	"github.com/faanross/simulacra_img/internal/logging"
	"github.com/faanross/simulacra_img/internal/prompt"
	"github.com/faanross/simulacra_img/internal/report"
	"github.com/faanross/simulacra_img/internal/spec"
	"github.com/faanross/simulacra_img/internal/stego"
)

func main() {
	// Command line arguments
	inputFile := flag.String("input", "", "Path to cover image")
	outputFile := flag.String("output", "stego.png", "Output image (png, bmp or tiff)")
	bits := flag.Int("bits", spec.DEFAULT_BIT_WIDTH, "Low bits used per color channel (1, 2, 4 or 8)")
	text := flag.String("text", "", "Text to hide (prompt if neither -text nor -file is given)")
	hideFile := flag.String("file", "", "File to hide")
	reportFile := flag.String("report", "", "Write a run report to this path")
	reportFormat := flag.String("report-format", report.FormatJSON, "Report format: json, cbor or msgpack")
	loggerKind := flag.String("logger", logging.KindZap, "Logger: zap, logrus or none")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Validate input
	if *inputFile == "" {
		log.Fatal("❌ Please provide a cover image with -input flag")
	}
	if *text != "" && *hideFile != "" {
		log.Fatal("❌ Use either -text or -file, not both")
	}

	logger, flush, err := logging.New(*loggerKind, *debug)
	if err != nil {
		log.Fatalf("❌ Logger error: %v", err)
	}
	defer flush()

	fmt.Println("\n🖼️  Pixel Steganography Encoder")
	fmt.Println("=" + strings.Repeat("=", 40))

	// Load cover image
	cover, format, err := imageio.Load(*inputFile)
	if err != nil {
		log.Fatalf("❌ Error loading image: %v", err)
	}

	codec, err := stego.NewCodec(cover, stego.WithBitWidth(*bits), stego.WithLogger(logger))
	if err != nil {
		log.Fatalf("❌ Codec error: %v", err)
	}

	fmt.Printf("\n📷 Cover image: %s (%s, %dx%d)\n", *inputFile, format, cover.Width, cover.Height)
	fmt.Printf("   Bits per channel: %d\n", codec.BitWidth())
	fmt.Printf("   Capacity: %d bytes\n", codec.MaxPayloadBytes())

	rep := &report.Report{
		Operation: report.OpEncode,
		Input: report.Image{
			Path:   *inputFile,
			Format: format,
			Width:  cover.Width,
			Height: cover.Height,
		},
		Output:    *outputFile,
		BitWidth:  codec.BitWidth(),
		Capacity:  codec.MaxPayloadBytes(),
		CreatedAt: time.Now().UTC(),
	}

	var encoded *stego.PixelBuffer
	if *hideFile != "" {
		content, err := os.ReadFile(*hideFile)
		if err != nil {
			log.Fatalf("❌ Error reading file: %v", err)
		}
		name := filepath.Base(*hideFile)
		fmt.Printf("\n📄 Hiding file: %s (%d bytes)\n", name, len(content))
		fmt.Printf("   File limit: %d bytes (name + content)\n", codec.MaxFileBytes())

		encoded, err = codec.EncodeFile(content, name)
		if err != nil {
			log.Fatalf("❌ Encoding failed: %v", err)
		}
		rep.Mode = report.ModeFile
		rep.FileName = name
		rep.PayloadBytes = spec.FRAME_HEADER_SIZE + len(stego.CharBytes(name)) + len(content)
		rep.Fingerprint = report.Fingerprint(content)
	} else {
		message := *text
		if message == "" {
			input, err := prompt.New().ReadConfirmed("\n🔑 Enter text to hide: ", "🔑 Confirm text: ")
			if err != nil {
				log.Fatalf("❌ Input error: %v", err)
			}
			message = string(input)
		}
		fmt.Printf("\n📝 Hiding text: %d characters\n", len([]rune(message)))

		encoded, err = codec.EncodeString(message)
		if err != nil {
			log.Fatalf("❌ Encoding failed: %v", err)
		}
		rep.Mode = report.ModeString
		hidden := stego.CharBytes(message)
		rep.PayloadBytes = len(hidden)
		rep.Fingerprint = report.Fingerprint(hidden)
	}

	// Save image
	if err := imageio.Save(*outputFile, encoded); err != nil {
		log.Fatalf("❌ Saving image failed: %v", err)
	}

	fmt.Printf("\n✅ Steganography complete!\n")
	fmt.Printf("   Output: %s\n", *outputFile)
	fmt.Printf("   Utilization: %.1f%%\n", rep.Utilization())
	fmt.Printf("   Fingerprint: %s...\n", rep.Fingerprint[:16])

	if *reportFile != "" {
		if err := report.Write(*reportFile, *reportFormat, rep); err != nil {
			log.Fatalf("❌ Report failed: %v", err)
		}
		fmt.Printf("   Report: %s (%s)\n", *reportFile, *reportFormat)
	}

	fmt.Printf("\n🔓 To decode: decoder -input %s -bits %d\n", *outputFile, codec.BitWidth())
}
