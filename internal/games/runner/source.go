package runner

import (
	"image"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
)

// AssetSource is what the game needs from an asset loader.
// *assets.Loader implements it.
type AssetSource interface {
	Begin(m assets.Manifest)
	Ready() bool
	Image(k assets.Key) image.Image
	Sound() (name string, data []byte)
	Generation() uint64
}

var _ AssetSource = (*assets.Loader)(nil)
