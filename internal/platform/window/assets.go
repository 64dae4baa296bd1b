package window

import (
	_ "image/png"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImages loads <dir>/<handle>.png for every handle. Images that are
// missing or unreadable are left out and logged; games draw shapes in
// their place.
func LoadImages(dir string, handles []string, logger *log.Logger) map[string]*ebiten.Image {
	images := make(map[string]*ebiten.Image, len(handles))
	if dir == "" {
		return images
	}
	for _, h := range handles {
		path := filepath.Join(dir, h+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("image not loaded, drawing shapes instead", "handle", h, "path", path, "err", err)
			continue
		}
		images[h] = img
		logger.Debug("image loaded", "handle", h, "path", path)
	}
	return images
}
