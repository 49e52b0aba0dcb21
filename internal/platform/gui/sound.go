package gui

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sound plays the jump effect. A nil context makes every call a no-op.
type Sound struct {
	ctx    *audio.Context
	log    *log.Logger
	name   string // Last sound handed to Sync, loaded or not
	player *audio.Player
}

// NewSound creates a sound player on the given context.
func NewSound(ctx *audio.Context, logger *log.Logger) *Sound {
	return &Sound{ctx: ctx, log: logger}
}

// Sync loads the named sound once its bytes are available.
// The same name is never decoded twice, even after a failure.
func (s *Sound) Sync(name string, data []byte) {
	if s.ctx == nil || name == "" || data == nil || name == s.name {
		return
	}
	s.name = name

	stream, err := decodeSound(name, data, s.ctx.SampleRate())
	if err != nil {
		s.log.Warn("jump sound unavailable", "name", name, "err", err)
		return
	}
	player, err := s.ctx.NewPlayer(stream)
	if err != nil {
		s.log.Warn("jump sound unavailable", "name", name, "err", err)
		return
	}
	if s.player != nil {
		s.player.Close()
	}
	s.player = player
	s.log.Debug("jump sound ready", "name", name)
}

// Play restarts the sound from its beginning.
func (s *Sound) Play() {
	if s.player == nil {
		return
	}
	if err := s.player.Rewind(); err != nil {
		s.log.Warn("jump sound rewind failed", "err", err)
		return
	}
	s.player.Play()
}

// decodeSound picks a decoder by file extension and resamples to sampleRate.
func decodeSound(name string, data []byte, sampleRate int) (io.ReadSeeker, error) {
	r := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV %s: %w", name, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 %s: %w", name, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG %s: %w", name, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}
