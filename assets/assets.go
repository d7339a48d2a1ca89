package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:demo
var demoFS embed.FS

// Demo returns the bundled demo game, laid out like any game directory.
func Demo() fs.FS {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		panic(err)
	}
	return sub
}
