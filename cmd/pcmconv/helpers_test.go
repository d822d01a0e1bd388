package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	converter "github.com/tphakala/go-pcm-converter"
	"github.com/tphakala/go-pcm-converter/internal/config"
	"github.com/tphakala/go-pcm-converter/internal/testutil"
)

// writeTestWAV writes a 16-bit sine WAV and returns its path.
func writeTestWAV(t *testing.T, rate, channels, frames int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	samples := testutil.SineInt16(frames*channels, 440, float64(rate*channels), 12000)
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           ints,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestParseFormat(t *testing.T) {
	tests := map[string]converter.Format{
		"auto":    converter.FormatUnknown,
		"":        converter.FormatUnknown,
		"int16":   converter.FormatInt16,
		"FLOAT32": converter.FormatFloat32,
	}
	for in, want := range tests {
		got, err := parseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseFormat("int24")
	require.Error(t, err)
}

func TestIsWAV(t *testing.T) {
	assert.True(t, isWAV("a.wav"))
	assert.True(t, isWAV("/x/B.WAV"))
	assert.False(t, isWAV("a.f32"))
	assert.False(t, isWAV("wav"))
}

func TestReadWAV_FileNotFound(t *testing.T) {
	_, err := readWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadWAV_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := readWAV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestReadWAV(t *testing.T) {
	path := writeTestWAV(t, 44100, 2, 441)

	in, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 44100, in.rate)
	assert.Equal(t, 2, in.channels)
	assert.Equal(t, converter.FormatInt16, in.format)
	assert.Len(t, in.data, 441*2*2)
}

func TestReadRaw_RequiresRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.pcm")
	require.NoError(t, os.WriteFile(path, make([]byte, 16), 0o644))

	_, err := readRaw(path, rawInput{channels: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-in-rate")
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	err := writeWAV("/nonexistent/dir/out.wav", make([]byte, 8), 48000, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	floats := []float32{0, 0.5, -0.5, 1, -1, 0.25}
	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, writeWAV(path, testutil.Float32Bytes(floats), 48000, 2))

	in, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 48000, in.rate)
	assert.Equal(t, 2, in.channels)

	back, err := converter.ConvertInt16ToFloat32(in.data)
	require.NoError(t, err)
	testutil.AssertFloat32Equal(t, floats, testutil.BytesFloat32(back), 1.0/32768)
}

func TestConvertFile_WAVToWAV(t *testing.T) {
	conv, err := converter.NewConverter(nil)
	require.NoError(t, err)

	inPath := writeTestWAV(t, 44100, 2, 4410)
	outPath := filepath.Join(t.TempDir(), "out.wav")

	stats, err := convertFile(conv, inPath, outPath, rawInput{})
	require.NoError(t, err)
	assert.Equal(t, 44100, stats.inputRate)
	assert.Equal(t, 48000, stats.outputRate)
	assert.Equal(t, 4410, stats.inputFrames)
	assert.Equal(t, 4800, stats.outputFrames)

	out, err := readWAV(outPath)
	require.NoError(t, err)
	assert.Equal(t, 48000, out.rate)
	assert.Len(t, out.data, 4800*2*2)
}

func TestConvertFile_RawFloat32Output(t *testing.T) {
	conv, err := converter.NewConverter(&converter.Config{TargetRate: 16000})
	require.NoError(t, err)

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.pcm")
	samples := testutil.SineInt16(4800, 440, 48000, 9000)
	require.NoError(t, os.WriteFile(inPath, testutil.Int16Bytes(samples), 0o644))
	outPath := filepath.Join(dir, "out.f32")

	stats, err := convertFile(conv, inPath, outPath, rawInput{rate: 48000, channels: 1})
	require.NoError(t, err)
	assert.Equal(t, converter.FormatInt16, stats.format, "detected from content")
	assert.Equal(t, 1600, stats.outputFrames)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, data, 1600*4)
	testutil.AssertAllInRange(t, testutil.BytesFloat32(data), -1, 1)
}

func TestLoadConfig_Default(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
