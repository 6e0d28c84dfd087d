package engine

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"mcdemo/internal/anim"
	"mcdemo/internal/assets"
	"mcdemo/internal/audio"
	"mcdemo/internal/graphics"
	"mcdemo/internal/input"
	"mcdemo/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// State tracks the frame loop's lifecycle.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateTerminating
)

// cycle is the length of one full animation loop.
const cycle = 2 * time.Second

// spriteFiles lists the demo's images in draw order; sprite i is offset
// i/3 of a cycle along the orbit.
var spriteFiles = [...]string{"blue.png", "red.tif", "green.jpg"}

// soundFiles maps each sound effect ID to its asset file.
var soundFiles = map[int]string{
	audio.SndStartup: "startup.wav",
	audio.SndShoot:   "shoot.wav",
	audio.SndExplode: "explode.wav",
}

// Game is the demo's frame loop: it polls input, advances the animation
// phase from elapsed wall-clock time and renders the three sprites.
type Game struct {
	graphics *graphics.Renderer
	audio    *audio.Manager
	input    *input.Dispatcher
	assets   *assets.Manager
	settings *settings.Manager

	screenWidth  int
	screenHeight int
	orbit        anim.Orbit
	sprites      [len(spriteFiles)]*ebiten.Image

	state State
	start time.Time
	debug bool
}

// NewGame creates a new demo instance.
func NewGame() *Game {
	return &Game{
		screenWidth:  960,
		screenHeight: 540,
	}
}

// Init initializes all subsystems, loads the assets and triggers the
// startup sound. Any failure here is unrecoverable.
func (g *Game) Init() error {
	g.settings = settings.NewManager("./config/settings.json")
	if err := g.settings.Load(); err != nil {
		log.Printf("Warning: failed to load settings: %v", err)
	}

	config := g.settings.GetConfig()
	g.screenWidth = config.ScreenWidth
	g.screenHeight = config.ScreenHeight
	g.debug = config.DebugMode

	g.assets = assets.NewManager(config.AssetsPath)
	if err := g.assets.Init(); err != nil {
		return fmt.Errorf("failed to initialize assets: %w", err)
	}

	g.graphics = graphics.NewRenderer(g.screenWidth, g.screenHeight)
	if err := g.graphics.Init(); err != nil {
		return fmt.Errorf("failed to initialize graphics: %w", err)
	}

	g.audio = audio.NewManager()
	if err := g.audio.Init(); err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}
	g.audio.SetVolume(config.SFXVolume)
	g.audio.SetMuted(config.Muted)

	g.input = input.NewDispatcher()

	if err := g.loadResources(); err != nil {
		return err
	}

	g.orbit = anim.Orbit{
		ScreenWidth:  g.screenWidth,
		ScreenHeight: g.screenHeight,
		SpriteWidth:  graphics.SpriteWidth,
		SpriteHeight: graphics.SpriteHeight,
	}

	// Fire the startup sound and unpause the device.
	g.audio.Play(audio.SndStartup)
	g.audio.Start()

	g.start = time.Now()
	g.state = StateRunning
	log.Println("Demo initialized successfully")
	return nil
}

// loadResources decodes the three images and three sound effects.
func (g *Game) loadResources() error {
	for i, name := range spriteFiles {
		data, err := g.assets.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to load image %s: %w", name, err)
		}
		sprite, err := g.graphics.LoadSprite(name, data)
		if err != nil {
			return fmt.Errorf("failed to load image %s: %w", name, err)
		}
		g.sprites[i] = sprite
	}

	for id, name := range soundFiles {
		data, err := g.assets.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to load sound %s: %w", name, err)
		}
		sample, err := audio.DecodeSample(name, data)
		if err != nil {
			return fmt.Errorf("failed to load sound %s: %w", name, err)
		}
		if err := g.audio.LoadSample(id, sample); err != nil {
			return err
		}
	}

	return nil
}

// Update runs one frame-loop iteration: poll input, apply the resulting
// actions in arrival order.
func (g *Game) Update() error {
	if g.state != StateRunning {
		return nil
	}

	for _, action := range g.input.Poll() {
		if err := g.apply(action); err != nil {
			return err
		}
	}

	return nil
}

// apply executes a single input action. A quit action moves the loop to
// Terminating immediately; no further actions run and no frame is drawn
// for this iteration.
func (g *Game) apply(action input.Action) error {
	switch action {
	case input.ActionQuit:
		g.state = StateTerminating
		return ebiten.Termination
	case input.ActionShoot:
		g.audio.Play(audio.SndShoot)
	case input.ActionExplode:
		g.audio.Play(audio.SndExplode)
	}
	return nil
}

// phase returns the current position within the animation cycle in [0, 1),
// derived from elapsed wall-clock time.
func (g *Game) phase() float64 {
	return float64(time.Since(g.start)%cycle) / float64(cycle)
}

// Draw renders the demo.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state != StateRunning {
		screen.Fill(color.RGBA{0, 0, 0, 255})
		return
	}

	g.graphics.Clear(screen)

	ratio := g.phase()
	for i, sprite := range g.sprites {
		x, y := g.orbit.Position(ratio, float64(i)/3)
		g.graphics.DrawSprite(screen, sprite, x, y)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
	}
}

// Layout returns the demo's screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

// Run initializes the demo and drives the frame loop until a quit action
// or the window is closed.
func (g *Game) Run() error {
	if err := g.Init(); err != nil {
		return err
	}
	defer g.audio.Cleanup()

	config := g.settings.GetConfig()
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	ebiten.SetWindowTitle("mcdemo")
	ebiten.SetVsyncEnabled(config.VSync)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	return nil
}
