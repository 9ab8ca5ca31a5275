// Package storage persists file artifacts (invoices, product images, payment
// proofs) and hands back public URLs. Handlers depend on the Store interface
// so tests can point it at a temp directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Store interface {
	// Save writes the object at the given relative path and returns its
	// public URL. Parent directories are created as needed.
	Save(path string, r io.Reader) (string, error)
	Remove(path string) error
}

// LocalStore keeps objects on disk under Root and serves them at BaseURL
// (mounted with gin's Static in main).
type LocalStore struct {
	Root    string
	BaseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create uploads root: %w", err)
	}
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(path string, r io.Reader) (string, error) {
	cleaned, err := s.clean(path)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.Root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	out, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", err
	}
	if err := out.Sync(); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + cleaned, nil
}

func (s *LocalStore) Remove(path string) error {
	cleaned, err := s.clean(path)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.Root, filepath.FromSlash(cleaned)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) clean(path string) (string, error) {
	cleaned := filepath.ToSlash(filepath.Clean("/" + path))[1:]
	if cleaned == "" || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return cleaned, nil
}
