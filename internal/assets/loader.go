package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/webp" // Register WebP decoder
	"golang.org/x/sync/errgroup"
)

// Loader decodes a Manifest in the background.
//
// Every Begin starts a new generation. Only the latest generation may
// publish results; anything an older one finishes with is dropped. A set
// becomes ready once all of its images decoded. A failed image keeps the
// set not ready until the next Begin. A failed sound is only logged.
type Loader struct {
	src fs.FS
	log *log.Logger

	mu        sync.Mutex
	gen       uint64
	ready     bool
	err       error
	images    [keyCount]image.Image
	soundName string
	sound     []byte
	settled   chan struct{} // closed when the current generation finishes

	inflight sync.WaitGroup
}

// NewLoader creates a loader reading from src.
// A nil logger discards output.
func NewLoader(src fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{src: src, log: logger}
}

// Begin discards the current set and starts loading m.
func (l *Loader) Begin(m Manifest) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.ready = false
	l.err = nil
	l.images = [keyCount]image.Image{}
	l.soundName, l.sound = "", nil
	done := make(chan struct{})
	l.settled = done
	l.mu.Unlock()

	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		defer close(done)
		l.load(gen, m)
	}()
}

func (l *Loader) load(gen uint64, m Manifest) {
	var (
		images   [keyCount]image.Image
		sound    []byte
		soundErr error
		eg       errgroup.Group
	)
	soundDone := make(chan struct{})

	for k := Key(0); k < keyCount; k++ {
		name := m.image(k)
		eg.Go(func() error {
			img, err := decodeImage(l.src, name)
			if err != nil {
				return fmt.Errorf("assets: %s %s: %w", k, name, err)
			}
			images[k] = img
			return nil
		})
	}

	go func() {
		defer close(soundDone)
		if m.JumpSound == "" {
			return
		}
		sound, soundErr = fs.ReadFile(l.src, m.JumpSound)
	}()

	err := eg.Wait()
	<-soundDone

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.log.Debug("discarding stale asset load", "generation", gen, "current", l.gen)
		return
	}

	if soundErr != nil {
		l.log.Warn("jump sound unavailable", "path", m.JumpSound, "err", soundErr)
	} else if sound != nil {
		l.soundName, l.sound = path.Base(m.JumpSound), sound
	}

	if err != nil {
		l.err = err
		l.log.Error("asset load failed", "err", err)
		return
	}
	l.images = images
	l.ready = true
	l.log.Debug("assets ready", "generation", gen, "background", m.Background)
}

func decodeImage(src fs.FS, name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("no file configured")
	}
	f, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Ready reports whether every image of the current set has decoded.
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}

// Generation returns the number of Begin calls so far.
func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Image returns a decoded image of the current set, or nil while not ready.
func (l *Loader) Image(k Key) image.Image {
	if k < 0 || k >= keyCount {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.images[k]
}

// Sound returns the jump sound's file name and raw bytes, if it loaded.
func (l *Loader) Sound() (string, []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.soundName, l.sound
}

// Err returns the failure of the current generation, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close waits for every decode still running, superseded generations
// included, or for ctx to end.
func (l *Loader) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.inflight.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Wait blocks until the latest generation settles and returns its error.
// If Begin is called again while waiting, Wait follows the newer generation.
func (l *Loader) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		gen, done := l.gen, l.settled
		l.mu.Unlock()
		if done == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
		}

		l.mu.Lock()
		current, err := l.gen, l.err
		l.mu.Unlock()
		if current == gen {
			return err
		}
	}
}
