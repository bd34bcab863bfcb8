package asteroids

import (
	"embed"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

//go:embed assets/*.png
var assetFS embed.FS

// shipHitbox is the triangle inside the 60x20 ship frames, nose east.
var shipHitbox = geom.NewPolygon(28, 0, -28, -9, -28, 9)

type images struct {
	shipOff   *sprite.Sprite
	shipOn    *sprite.Sprite
	explosion *sprite.Sprite
	stars     *sprite.Sprite
}

func loadImages(logger *log.Logger) *images {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	store := sprite.NewStore(sub, logger)
	ship := store.Sheet("ship", 1, 2)
	im := &images{
		shipOff:   ship.Frame(0),
		shipOn:    ship.Frame(1),
		explosion: store.Sheet("explosion", 1, 6),
		stars:     store.Sprite("stars"),
	}
	// Both frames share one hitbox so thrusting never changes collisions.
	im.shipOff.SetHitbox(shipHitbox)
	im.shipOn.SetHitbox(shipHitbox)
	return im
}
