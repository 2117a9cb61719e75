// Command spline-resample-wav resamples WAV audio files to a target sample
// rate using B-spline interpolation.
//
// Usage:
//
//	spline-resample-wav -rate 48000 input.wav output.wav
//	spline-resample-wav -rate 16000 -order 5 input.wav output.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	splines "github.com/tphakala/go-spline-kernels"
	"github.com/tphakala/go-spline-kernels/resample"
)

const (
	// CLI defaults
	defaultRate  = 48000
	defaultOrder = 3

	minRequiredArgs = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Target sample rate in Hz (e.g. 16000, 44100, 48000)")
	order := flag.Int("order", defaultOrder, "B-spline order (0, 1, 2, 3 or 5 use fast closed forms)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	kernel, err := splines.NewBSpline(*order)
	if err != nil {
		return fmt.Errorf("invalid spline order %d: %w", *order, err)
	}

	samples, format, bitDepth, err := readWAV(inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d frames",
			format.SampleRate, format.NumChannels, bitDepth, len(samples[0]))
	}

	ratio := float64(*rate) / float64(format.SampleRate)
	resampled := make([][]float64, len(samples))
	for ch, channel := range samples {
		resampled[ch], err = resample.Resample(channel, ratio, kernel)
		if err != nil {
			return fmt.Errorf("resampling channel %d: %w", ch, err)
		}
	}
	if *verbose {
		log.Printf("Output: %d Hz, %d frames (ratio %.6f, order %d)",
			*rate, len(resampled[0]), ratio, *order)
	}

	return writeWAV(outputPath, resampled, *rate, bitDepth)
}

// readWAV decodes a WAV file into per-channel float slices normalized to
// [-1, 1].
func readWAV(path string) ([][]float64, *audio.Format, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	scale := sampleScale(bitDepth)

	channels := format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
		for i := range frames {
			samples[ch][i] = float64(buf.Data[i*channels+ch]) / scale
		}
	}
	return samples, format, bitDepth, nil
}

// writeWAV encodes per-channel float slices back to an interleaved PCM
// WAV file.
func writeWAV(path string, channels [][]float64, rate, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() { _ = out.Close() }()

	numChannels := len(channels)
	frames := len(channels[0])
	scale := sampleScale(bitDepth)

	data := make([]int, frames*numChannels)
	for ch, channel := range channels {
		for i, v := range channel {
			data[i*numChannels+ch] = clampSample(v*scale, scale)
		}
	}

	encoder := wav.NewEncoder(out, rate, bitDepth, numChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return encoder.Close()
}

// sampleScale returns the full-scale PCM amplitude for a bit depth.
func sampleScale(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// clampSample rounds and clips a scaled sample to the PCM range.
func clampSample(v, scale float64) int {
	v = math.Round(v)
	if v > scale {
		v = scale
	} else if v < -scale-1 {
		v = -scale - 1
	}
	return int(v)
}
