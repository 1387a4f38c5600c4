package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faanross/simulacra_img/internal/analysis"
	"github.com/faanross/simulacra_img/internal/imageio"
	"github.com/faanross/simulacra_img/internal/logging"
	"github.com/faanross/simulacra_img/internal/report"
	"github.com/faanross/simulacra_img/internal/spec"
	"github.com/faanross/simulacra_img/internal/stego"
)

func main() {
	// Command line arguments
	inputFile := flag.String("input", "", "Path to stego image")
	bits := flag.Int("bits", spec.DEFAULT_BIT_WIDTH, "Low bits used per color channel (1, 2, 4 or 8)")
	mode := flag.String("mode", report.ModeString, "Payload mode: string or file")
	outDir := flag.String("outdir", ".", "Directory for recovered files")
	outputFile := flag.String("output", "", "Save extracted text, or the recovered file, to this path")
	analyze := flag.Bool("analyze", false, "Perform carrier analysis only")
	verbose := flag.Bool("verbose", false, "Show full extracted text")
	reportFile := flag.String("report", "", "Write a run report to this path")
	reportFormat := flag.String("report-format", report.FormatJSON, "Report format: json, cbor or msgpack")
	loggerKind := flag.String("logger", logging.KindZap, "Logger: zap, logrus or none")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Validate input
	if *inputFile == "" {
		log.Fatal("❌ Please provide input image with -input flag")
	}
	if *mode != report.ModeString && *mode != report.ModeFile {
		log.Fatalf("❌ Unknown mode %q (want string or file)", *mode)
	}

	logger, flush, err := logging.New(*loggerKind, *debug)
	if err != nil {
		log.Fatalf("❌ Logger error: %v", err)
	}
	defer flush()

	fmt.Println("\n🔓 Pixel Steganography Decoder")
	fmt.Println("=" + strings.Repeat("=", 40))

	img, format, err := imageio.Load(*inputFile)
	if err != nil {
		log.Fatalf("❌ Error loading image: %v", err)
	}

	fmt.Printf("\n📷 Image loaded:\n")
	fmt.Printf("   File: %s\n", *inputFile)
	fmt.Printf("   Format: %s\n", format)
	fmt.Printf("   Dimensions: %dx%d\n", img.Width, img.Height)

	codec, err := stego.NewCodec(img, stego.WithBitWidth(*bits), stego.WithLogger(logger))
	if err != nil {
		log.Fatalf("❌ Codec error: %v", err)
	}
	fmt.Printf("   Bits per channel: %d\n", codec.BitWidth())
	fmt.Printf("   Capacity: %d bytes\n", codec.MaxPayloadBytes())

	rep := &report.Report{
		Operation: report.OpDecode,
		Mode:      *mode,
		Input: report.Image{
			Path:   *inputFile,
			Format: format,
			Width:  img.Width,
			Height: img.Height,
		},
		BitWidth:  codec.BitWidth(),
		Capacity:  codec.MaxPayloadBytes(),
		CreatedAt: time.Now().UTC(),
	}

	// Analysis mode
	if *analyze {
		stats := analysis.Analyze(codec)
		analysis.Print(os.Stdout, stats)
		rep.Analysis = &stats
		writeReport(*reportFile, *reportFormat, rep)
		return
	}

	switch *mode {
	case report.ModeFile:
		f, err := codec.DecodeFile()
		if err != nil {
			log.Fatalf("❌ Extraction failed: %v", err)
		}
		out := recoveredPath(*outputFile, *outDir, f.Name)
		if err := os.WriteFile(out, f.Content, 0644); err != nil {
			log.Fatalf("❌ Error saving file: %v", err)
		}

		fmt.Printf("\n✅ FILE SUCCESSFULLY EXTRACTED\n")
		fmt.Printf("   Hidden name: %s\n", f.Name)
		fmt.Printf("   Size: %d bytes\n", len(f.Content))
		fmt.Printf("\n💾 File saved to: %s\n", out)

		rep.Output = out
		rep.FileName = f.Name
		rep.PayloadBytes = spec.FRAME_HEADER_SIZE + len(stego.CharBytes(f.Name)) + len(f.Content)
		rep.Fingerprint = report.Fingerprint(f.Content)

	default:
		message := codec.DecodeString()
		if message == "" {
			log.Fatal("❌ No printable text found (wrong -bits or -mode?)")
		}

		fmt.Printf("\n✅ TEXT SUCCESSFULLY EXTRACTED (%d characters)\n", len(message))
		fmt.Println("\n" + strings.Repeat("=", 60))
		if *verbose || len(message) <= 500 {
			fmt.Println(message)
		} else {
			// Show preview for long messages
			fmt.Printf("%s\n... [%d more characters] ...\n%s\n",
				message[:200],
				len(message)-400,
				message[len(message)-200:])
			fmt.Printf("\n(Use -verbose flag to see full text)\n")
		}
		fmt.Println(strings.Repeat("=", 60))

		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, []byte(message), 0644); err != nil {
				log.Fatalf("❌ Error saving output: %v", err)
			}
			fmt.Printf("\n💾 Text saved to: %s\n", *outputFile)
			rep.Output = *outputFile
		}

		rep.PayloadBytes = len(message)
		rep.Fingerprint = report.Fingerprint([]byte(message))
	}

	writeReport(*reportFile, *reportFormat, rep)
	fmt.Println("\n✅ Decoding complete!")
}

func writeReport(path, format string, rep *report.Report) {
	if path == "" {
		return
	}
	if err := report.Write(path, format, rep); err != nil {
		log.Fatalf("❌ Report failed: %v", err)
	}
	fmt.Printf("\n🧾 Report: %s (%s)\n", path, format)
}

// recoveredPath is where file mode writes the extracted content: -output when
// set, otherwise decoded_<name> inside -outdir. Only the base of the hidden
// name is used so a crafted frame cannot escape the directory.
func recoveredPath(output, dir, hiddenName string) string {
	if output != "" {
		return output
	}
	return filepath.Join(dir, stego.DecodedName(filepath.Base(hiddenName)))
}
