package audio

import (
	"bytes"
	"testing"
)

func TestSamplerIdleProducesSilence(t *testing.T) {
	s := NewSampler()

	out := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	n, err := s.Read(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(out) {
		t.Fatalf("expected %d bytes, got %d", len(out), n)
	}
	for i, b := range out {
		if b != 0 {
			t.Errorf("byte %d: expected silence, got 0x%02X", i, b)
		}
	}
}

func TestSamplerZeroFillsPastEnd(t *testing.T) {
	s := NewSampler()
	s.Assign([]byte{0xAA, 0xAA, 0xAA, 0xAA})

	out := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	n, err := s.Read(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Fatalf("expected 6 bytes, got %d", n)
	}

	want := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0x00, 0x00}
	if !bytes.Equal(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
	if s.Remaining() != 0 {
		t.Errorf("expected 0 bytes remaining, got %d", s.Remaining())
	}
}

func TestSamplerAssignResetsCursor(t *testing.T) {
	s := NewSampler()

	a := make([]byte, 10)
	for i := range a {
		a[i] = 0x11
	}
	s.Assign(a)

	// Play part of A, then replace it with B before it finishes.
	if _, err := s.Read(make([]byte, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := []byte{1, 2, 3, 4, 5}
	s.Assign(b)
	if s.Remaining() != 5 {
		t.Fatalf("expected 5 bytes remaining after assign, got %d", s.Remaining())
	}
	if s.Len() != 5 {
		t.Fatalf("expected active length 5, got %d", s.Len())
	}

	// B plays from its start; A's remaining bytes are never delivered.
	out := make([]byte, 8)
	if _, err := s.Read(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 0, 0, 0}
	if !bytes.Equal(out, want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestSamplerDrainInChunks(t *testing.T) {
	sample := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	s := NewSampler()
	s.Assign(sample)

	var delivered []byte
	for i := 0; i < 4; i++ {
		chunk := make([]byte, 3)
		n, err := s.Read(chunk)
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if n != 3 {
			t.Fatalf("read %d: expected 3 bytes, got %d", i, n)
		}
		delivered = append(delivered, chunk...)
	}

	if s.Remaining() != 0 {
		t.Fatalf("expected buffer drained, %d bytes remaining", s.Remaining())
	}

	want := append(append([]byte{}, sample...), 0, 0)
	if !bytes.Equal(delivered, want) {
		t.Errorf("expected %v, got %v", want, delivered)
	}
}
