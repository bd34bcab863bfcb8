package pong

import (
	"embed"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

//go:embed assets/*.png
var assetFS embed.FS

func newStore(logger *log.Logger) *sprite.Store {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sprite.NewStore(sub, logger)
}
