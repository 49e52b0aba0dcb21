package gui

import (
	"image"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
	"github.com/vovakirdan/portfolio-runner/internal/games/runner"
)

func TestSurfaceRect(t *testing.T) {
	tests := []struct {
		name       string
		winW, winH int
		view       runner.Viewport
		want       image.Rectangle
	}{
		{"desktop centered", 1000, 600, runner.Viewport{Width: 900, Height: 506}, image.Rect(50, 47, 950, 553)},
		{"exact fit", 320, 230, runner.Viewport{Width: 320, Height: 230}, image.Rect(0, 0, 320, 230)},
		{"surface taller than window", 300, 200, runner.Viewport{Width: 320, Height: 230}, image.Rect(0, 0, 320, 230)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := surfaceRect(tt.winW, tt.winH, tt.view); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeSound(t *testing.T) {
	data, err := fs.ReadFile(assets.Embedded(), "jump.wav")
	if err != nil {
		t.Fatalf("embedded jump.wav: %v", err)
	}

	stream, err := decodeSound("jump.wav", data, SampleRate)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(pcm) == 0 {
		t.Error("decoded stream is empty")
	}
}

func TestDecodeSoundErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    []byte
		wantErr string
	}{
		{"unsupported extension", "jump.flac", []byte("fLaC"), "unsupported audio format"},
		{"corrupt wav", "jump.wav", []byte("not a riff file"), "failed to decode WAV"},
		{"extension is case-insensitive", "JUMP.WAV", []byte("nope"), "failed to decode WAV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSound(tt.file, tt.data, SampleRate)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMutedSoundIsNoop(t *testing.T) {
	s := NewSound(nil, log.New(io.Discard))
	s.Sync("jump.wav", []byte("anything"))
	s.Play()
	if s.player != nil || s.name != "" {
		t.Error("muted sound should not load anything")
	}
}

func TestRevealLines(t *testing.T) {
	lines := []string{"hello there", "general", "kenobi"}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{5, []string{"hello"}},
		{11, []string{"hello there"}},
		{12, []string{"hello there"}},
		{14, []string{"hello there", "ge"}},
		{100, []string{"hello there", "general", "kenobi"}},
	}

	for _, tt := range tests {
		got := revealLines(lines, tt.n)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("revealLines(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	f, err := newFonts()
	if err != nil {
		t.Fatal(err)
	}
	body, _ := f.faces(900)

	msg := "Expert in Google Cloud, Terraform, Jenkins, Kubernetes, Docker, Ansible, ArgoCD, Helm, and more."
	lines := wrapText(msg, body, 200)
	if len(lines) < 2 {
		t.Fatalf("expected the message to wrap, got %q", lines)
	}
	if strings.Join(lines, " ") != msg {
		t.Errorf("wrapping lost words: %q", lines)
	}

	if got := wrapText("a\n\nb", body, 200); len(got) != 3 || got[1] != "" {
		t.Errorf("paragraph breaks not kept: %q", got)
	}

	long := strings.Repeat("x", 200)
	if got := wrapText(long, body, 50); len(got) != 1 || got[0] != long {
		t.Errorf("overlong word should keep its own line: %q", got)
	}
}

func TestFontFacesScale(t *testing.T) {
	f, err := newFonts()
	if err != nil {
		t.Fatal(err)
	}
	body, title := f.faces(900)
	if body.Size != bodyFontSize || title.Size != titleFontSize {
		t.Errorf("sizes at 900px: %v/%v", body.Size, title.Size)
	}
	small, _ := f.faces(320)
	if small.Size != minFontSize {
		t.Errorf("size at 320px: got %v, want floor %v", small.Size, minFontSize)
	}
}
