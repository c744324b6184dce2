package mmap

import (
	"testing"
)

func TestAnonymous(t *testing.T) {
	m, err := Anonymous(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if m.Size() != 4096 {
		t.Errorf("size mismatch: got %d, want %d", m.Size(), 4096)
	}
	if len(m.Data()) != 4096 {
		t.Errorf("data length mismatch: got %d, want %d", len(m.Data()), 4096)
	}

	// Mapping must be writable and zero-filled.
	for i, b := range m.Data() {
		if b != 0 {
			t.Fatalf("byte %d not zero-filled: %x", i, b)
		}
	}
	m.Data()[0] = 0xAB
	m.Data()[4095] = 0xCD
	if m.Data()[0] != 0xAB || m.Data()[4095] != 0xCD {
		t.Error("mapping is not writable")
	}
}

func TestAnonymousInvalidSize(t *testing.T) {
	if _, err := Anonymous(0); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize for size 0, got %v", err)
	}
	if _, err := Anonymous(-1); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize for size -1, got %v", err)
	}
}

func TestClose(t *testing.T) {
	m, err := Anonymous(4096)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if m.Data() != nil {
		t.Error("data should be nil after close")
	}

	// Double close should be safe.
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}
