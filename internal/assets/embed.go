package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed default
var defaultFiles embed.FS

// Embedded returns the built-in asset set.
func Embedded() fs.FS {
	sub, err := fs.Sub(defaultFiles, "default")
	if err != nil {
		// "default" is a compile-time constant directory
		panic(err)
	}
	return sub
}

// Open returns the asset source for dir, or the embedded set when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
