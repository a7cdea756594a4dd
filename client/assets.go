package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type sprite struct {
	size  int
	color color.RGBA
}

var sprites = map[string]sprite{
	"player": {32, color.RGBA{218, 212, 94, 255}},
	"bullet": {8, color.RGBA{208, 70, 72, 255}},
	"cell":   {4, color.RGBA{90, 70, 140, 255}},
}

type Assets struct {
	images map[string]*ebiten.Image
}

func (a *Assets) Image(name string) (*ebiten.Image, error) {
	image := a.images[name]
	if image == nil {
		return nil, fmt.Errorf("invalid image name: %s", name)
	}
	return image, nil
}

// LoadAssets builds the flat colored sprites the game draws with.
func LoadAssets() (*Assets, error) {
	a := &Assets{
		images: make(map[string]*ebiten.Image, len(sprites)),
	}
	for name, s := range sprites {
		if s.size <= 0 {
			return nil, fmt.Errorf("sprite %s has no size", name)
		}
		image := ebiten.NewImage(s.size, s.size)
		image.Fill(s.color)
		a.images[name] = image
	}
	return a, nil
}
