package audio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// IsWavFile checks if a filename represents a WAV audio file.
func IsWavFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".wav")
}

// IsOggFile checks if a filename represents an OGG audio file.
func IsOggFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".ogg")
}

// DecodeSample decodes the raw contents of a WAV or OGG file into a
// device-ready sample. The decoders emit 16-bit two-channel little-endian
// PCM at the file's own sample rate; the demo's assets are all 44100 Hz so
// no resampling is needed.
func DecodeSample(path string, data []byte) (*Sample, error) {
	var stream io.Reader

	switch {
	case IsWavFile(path):
		s, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV file %s: %w", path, err)
		}
		stream = s
	case IsOggFile(path):
		s, err := vorbis.DecodeWithoutResampling(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG file %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (only WAV and OGG files are supported)", filepath.Ext(path))
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM stream for %s: %w", path, err)
	}

	return &Sample{
		Name: filepath.Base(path),
		Path: path,
		PCM:  pcm,
	}, nil
}
