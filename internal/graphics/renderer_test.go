package graphics

import "testing"

func TestLoadSpriteCorruptData(t *testing.T) {
	r := NewRenderer(960, 540)
	if err := r.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.LoadSprite("broken.png", []byte("not an image")); err == nil {
		t.Fatal("expected error for corrupt image data")
	}
}

func TestSpriteMissFromCache(t *testing.T) {
	r := NewRenderer(960, 540)
	if sprite := r.Sprite("never-loaded.png"); sprite != nil {
		t.Error("expected nil for sprite that was never loaded")
	}
}

func TestGetScreenSize(t *testing.T) {
	r := NewRenderer(960, 540)
	w, h := r.GetScreenSize()
	if w != 960 || h != 540 {
		t.Errorf("expected 960x540, got %dx%d", w, h)
	}
}
