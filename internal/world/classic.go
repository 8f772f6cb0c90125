package world

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/tui-adventure/internal/registry"
)

// ClassicID is the id of the world that ships with the binary.
const ClassicID = "classic"

//go:embed classic/*.screen classic/riddles.txt
var classicFiles embed.FS

func init() {
	registry.Register(ClassicID, "Classic", func() fs.FS {
		sub, err := fs.Sub(classicFiles, "classic")
		if err != nil {
			panic(err)
		}
		return sub
	})
}
