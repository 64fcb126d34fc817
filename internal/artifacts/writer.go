package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/oneliner/internal/util/naming"
)

// File names and modes of the written artifacts.
const (
	InventoryFile = "inventory"

	PrivateKeyMode os.FileMode = 0o600
	InventoryMode  os.FileMode = 0o644
)

// Writer writes artifacts into a local directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer for dir. The directory is created on first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WritePrivateKey writes key to <dir>/<keyName>.pem, readable by the owner only.
func (w *Writer) WritePrivateKey(keyName string, key []byte) (string, error) {
	return w.write(naming.KeyFile(keyName), key, PrivateKeyMode)
}

// WriteInventory writes content to <dir>/inventory.
func (w *Writer) WriteInventory(content string) (string, error) {
	return w.write(InventoryFile, []byte(content), InventoryMode)
}

// write replaces name in the output directory. The mode is applied even when
// the file already exists, so a key left by an earlier run never keeps
// looser permissions.
func (w *Writer) write(name string, data []byte, mode os.FileMode) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
