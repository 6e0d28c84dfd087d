package assets

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Manager resolves and reads the demo's asset files from a base directory.
type Manager struct {
	rootDir string
}

// NewManager creates a new asset manager rooted at the given directory.
func NewManager(rootDir string) *Manager {
	return &Manager{
		rootDir: rootDir,
	}
}

// Init verifies the asset directory exists.
func (m *Manager) Init() error {
	if _, err := os.Stat(m.rootDir); os.IsNotExist(err) {
		return fmt.Errorf("asset directory does not exist: %s", m.rootDir)
	}

	log.Printf("Asset manager initialized with root: %s", m.rootDir)
	return nil
}

// Open opens an asset file for reading.
func (m *Manager) Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(m.fullPath(filename))
	if err != nil {
		return nil, fmt.Errorf("asset not found: %s", filename)
	}
	return file, nil
}

// Exists checks if an asset file exists.
func (m *Manager) Exists(filename string) bool {
	_, err := os.Stat(m.fullPath(filename))
	return err == nil
}

// ReadFile reads an entire asset file into memory.
func (m *Manager) ReadFile(filename string) ([]byte, error) {
	file, err := m.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", filename, err)
	}
	return data, nil
}

// fullPath constructs the full filesystem path for an asset, normalizing
// forward-slash names to the platform separator.
func (m *Manager) fullPath(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	return filepath.Join(m.rootDir, filepath.FromSlash(name))
}
