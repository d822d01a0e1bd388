// Command pcmconv converts WAV or raw PCM files to float32 at a fixed rate.
//
// Usage:
//
//	pcmconv input.wav output.wav                         # 48 kHz, low latency
//	pcmconv -quality high_quality in.wav out.f32         # raw float32 output
//	pcmconv -in-rate 16000 -channels 1 in.pcm out.wav    # raw input, format detected
//	pcmconv -features                                    # print CPU tiers and backend
//
// A YAML config file (-config) supplies defaults for quality, target_rate,
// library_path and log_level. Flags given on the command line win.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	converter "github.com/tphakala/go-pcm-converter"
	"github.com/tphakala/go-pcm-converter/internal/backend"
	"github.com/tphakala/go-pcm-converter/internal/config"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	flag.Int("rate", converter.FixedSampleRate, "Target sample rate in Hz")
	flag.String("quality", converter.QualityTagLowLatency, "Quality: low_latency or high_quality")
	inRate := flag.Int("in-rate", 0, "Sample rate of raw input in Hz (required for raw input)")
	channels := flag.Int("channels", converter.FixedChannels, "Channel count of raw input")
	format := flag.String("format", "auto", "Sample format of raw input: auto, int16 or float32")
	features := flag.Bool("features", false, "Print CPU capability tiers and backend availability")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// The backend reads this once, on first use.
	if cfg.LibraryPath != "" {
		if err := os.Setenv(backend.EnvLibraryPath, cfg.LibraryPath); err != nil {
			return fmt.Errorf("setting %s: %w", backend.EnvLibraryPath, err)
		}
	}

	if *features {
		printFeatures()
		if flag.NArg() == 0 {
			return nil
		}
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s in.wav out.wav                          # Convert to 48 kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 16000 speech.wav speech.f32       # Raw float32 for ASR\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in-rate 44100 -format int16 in.pcm out.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	q, err := converter.ParseQuality(cfg.Quality)
	if err != nil {
		return err
	}
	conv, err := converter.NewConverter(&converter.Config{
		Quality:    q,
		TargetRate: cfg.TargetRate,
	})
	if err != nil {
		return err
	}

	srcFormat, err := parseFormat(*format)
	if err != nil {
		return err
	}

	inputPath, outputPath := args[0], args[1]
	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Target rate: %d Hz", conv.TargetRate())
		log.Printf("Quality: %s", conv.Quality())
	}

	start := time.Now()
	stats, err := convertFile(conv, inputPath, outputPath, rawInput{
		rate:     *inRate,
		channels: *channels,
		format:   srcFormat,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Converted %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %s input)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.format)
	fmt.Printf("  %d frames -> %d frames\n", stats.inputFrames, stats.outputFrames)
	fmt.Printf("  Duration: %.3fs\n", elapsed.Seconds())

	return nil
}

// loadConfig reads path, or returns defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags copies explicitly set flags over the file values.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.TargetRate = f.Value.(flag.Getter).Get().(int)
		case "quality":
			cfg.Quality = f.Value.String()
		}
	})
}

func printFeatures() {
	f := converter.CPUFeatures()
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("  baseline: %v\n", f.Baseline)
	fmt.Printf("  mid:      %v\n", f.Mid)
	fmt.Printf("  advanced: %v\n", f.Advanced)
	fmt.Printf("Int16 strategy: %s\n", f.Strategy)
	if converter.HighQualityAvailable() {
		fmt.Printf("libsamplerate: %s\n", converter.HighQualityLibrary())
	} else {
		fmt.Printf("libsamplerate: not available\n")
	}
}
