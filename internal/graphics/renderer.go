package graphics

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/tiff" // TIFF decoder
)

// Sprite destination size. Every sprite is drawn into a fixed 100x100
// rectangle regardless of its source resolution.
const (
	SpriteWidth  = 100
	SpriteHeight = 100
)

// Renderer handles 2D rendering for the demo and caches decoded sprites.
type Renderer struct {
	screenWidth  int
	screenHeight int

	sprites map[string]*ebiten.Image
	mutex   sync.RWMutex
}

// NewRenderer creates a new renderer for the given screen size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		screenWidth:  width,
		screenHeight: height,
		sprites:      make(map[string]*ebiten.Image),
	}
}

// Init initializes the renderer.
func (r *Renderer) Init() error {
	log.Printf("Renderer initialized (%dx%d)", r.screenWidth, r.screenHeight)
	return nil
}

// LoadSprite decodes image data (PNG, JPEG or TIFF) and caches the result
// under the given name.
func (r *Renderer) LoadSprite(name string, data []byte) (*ebiten.Image, error) {
	r.mutex.RLock()
	if cached, exists := r.sprites[name]; exists {
		r.mutex.RUnlock()
		return cached, nil
	}
	r.mutex.RUnlock()

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	sprite := ebiten.NewImageFromImage(img)

	r.mutex.Lock()
	r.sprites[name] = sprite
	r.mutex.Unlock()

	log.Printf("Loaded sprite %s (%s, %dx%d)", name, format, img.Bounds().Dx(), img.Bounds().Dy())
	return sprite, nil
}

// Sprite returns a cached sprite, or nil if it was never loaded.
func (r *Renderer) Sprite(name string) *ebiten.Image {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sprites[name]
}

// Clear fills the screen with the background color.
func (r *Renderer) Clear(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
}

// DrawSprite draws a sprite scaled into its fixed destination rectangle
// with the top-left corner at (x, y).
func (r *Renderer) DrawSprite(screen, sprite *ebiten.Image, x, y int) {
	bounds := sprite.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		SpriteWidth/float64(bounds.Dx()),
		SpriteHeight/float64(bounds.Dy()),
	)
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(sprite, opts)
}

// GetScreenSize returns the screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// ClearCache disposes of all cached sprites.
func (r *Renderer) ClearCache() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for name, sprite := range r.sprites {
		if sprite != nil {
			sprite.Dispose()
		}
		delete(r.sprites, name)
	}

	log.Println("Sprite cache cleared")
}
