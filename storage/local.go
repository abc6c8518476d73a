package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore Writes uploaded image blobs under a single content root. The
// stored name is chosen by the caller (identifier plus original extension);
// the same name is what the static /uploads route serves back.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("cannot create upload directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Root The content root directory
func (s *LocalStore) Root() string {
	return s.root
}

// Save Write the blob under name. A partial write removes the file again so
// the store never keeps truncated uploads.
func (s *LocalStore) Save(name string, r io.Reader) error {
	path, err := s.safeJoin(name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("cannot write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("cannot close upload file: %w", err)
	}
	return nil
}

// Remove Delete a stored blob. Used to undo earlier writes when an upload
// batch fails partway through.
func (s *LocalStore) Remove(name string) error {
	path, err := s.safeJoin(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("cannot remove upload file: %w", err)
	}
	return nil
}

// safeJoin resolves name under the root and rejects directory traversal.
func (s *LocalStore) safeJoin(name string) (string, error) {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("invalid upload root: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("invalid upload name: %w", err)
	}
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("upload name %q escapes the content root", name)
	}
	return absPath, nil
}
