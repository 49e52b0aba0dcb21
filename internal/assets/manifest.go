// Package assets loads the runner's raster images and jump sound from an
// fs.FS in the background and reports when a set is ready to draw.
package assets

// Key names one image slot of a manifest.
type Key int

const (
	KeyBackground Key = iota
	KeyPlayer
	KeyMarker
	keyCount
)

// String returns the slot name used in log output.
func (k Key) String() string {
	switch k {
	case KeyBackground:
		return "background"
	case KeyPlayer:
		return "player"
	case KeyMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Manifest lists the files that make up one loadable set.
// Paths are slash-separated and relative to the loader's source FS.
type Manifest struct {
	Background string
	Player     string
	Marker     string
	JumpSound  string // Optional
}

func (m Manifest) image(k Key) string {
	switch k {
	case KeyBackground:
		return m.Background
	case KeyPlayer:
		return m.Player
	case KeyMarker:
		return m.Marker
	}
	return ""
}
