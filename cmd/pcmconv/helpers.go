package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	converter "github.com/tphakala/go-pcm-converter"
	"github.com/tphakala/go-pcm-converter/internal/pcm"
)

const (
	bitsPerSample16 = 16
	wavFormatPCM    = 1
)

// rawInput describes headerless PCM input.
type rawInput struct {
	rate     int
	channels int
	format   converter.Format
}

// pcmData is a decoded input file.
type pcmData struct {
	data     []byte
	rate     int
	channels int
	format   converter.Format
}

type convertStats struct {
	inputRate    int
	outputRate   int
	channels     int
	format       converter.Format
	inputFrames  int
	outputFrames int
}

func parseFormat(s string) (converter.Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return converter.FormatUnknown, nil
	case "int16":
		return converter.FormatInt16, nil
	case "float32":
		return converter.FormatFloat32, nil
	default:
		return converter.FormatUnknown, fmt.Errorf("unknown format %q (want auto, int16 or float32)", s)
	}
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// convertFile reads inputPath, converts it to float32 at the converter's
// target rate and writes outputPath.
func convertFile(conv *converter.Converter, inputPath, outputPath string, raw rawInput) (*convertStats, error) {
	var (
		in  *pcmData
		err error
	)
	if isWAV(inputPath) {
		in, err = readWAV(inputPath)
	} else {
		in, err = readRaw(inputPath, raw)
	}
	if err != nil {
		return nil, err
	}

	out, err := conv.ToFixedFormat(in.data, in.rate, in.channels, in.format)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	if isWAV(outputPath) {
		err = writeWAV(outputPath, out, conv.TargetRate(), in.channels)
	} else {
		err = writeRaw(outputPath, out)
	}
	if err != nil {
		return nil, err
	}

	inFormat := in.format
	if inFormat == converter.FormatUnknown {
		inFormat = converter.DetectFormat(in.data)
	}
	inBytes := 2
	if inFormat == converter.FormatFloat32 {
		inBytes = 4
	}

	return &convertStats{
		inputRate:    in.rate,
		outputRate:   conv.TargetRate(),
		channels:     in.channels,
		format:       inFormat,
		inputFrames:  len(in.data) / (inBytes * in.channels),
		outputFrames: converter.FrameCount(out, in.channels),
	}, nil
}

// readWAV decodes a 16-bit PCM WAV file into little-endian int16 bytes.
func readWAV(path string) (*pcmData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if decoder.BitDepth != bitsPerSample16 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d (only 16-bit PCM)", decoder.BitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	data := make([]byte, len(samples)*pcm.BytesPerInt16)
	pcm.EncodeInt16LE(data, samples)

	return &pcmData{
		data:     data,
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		format:   converter.FormatInt16,
	}, nil
}

// readRaw loads headerless PCM described by raw.
func readRaw(path string, raw rawInput) (*pcmData, error) {
	if raw.rate <= 0 {
		return nil, fmt.Errorf("raw input %s needs -in-rate", path)
	}
	if raw.channels <= 0 {
		return nil, fmt.Errorf("raw input %s needs -channels", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	return &pcmData{
		data:     data,
		rate:     raw.rate,
		channels: raw.channels,
		format:   raw.format,
	}, nil
}

// writeWAV encodes float32 PCM as a 16-bit WAV file.
func writeWAV(path string, data []byte, rate, channels int) (err error) {
	floats := make([]float32, len(data)/pcm.BytesPerFloat32)
	pcm.DecodeFloat32LE(floats, data)

	samples := make([]int16, len(floats))
	pcm.Float32ToInt16(samples, floats)

	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bitsPerSample16, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           ints,
		SourceBitDepth: bitsPerSample16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close finalizes the RIFF header sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// writeRaw writes float32 PCM without a header.
func writeRaw(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return nil
}
