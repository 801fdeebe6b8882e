package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"gopkg.in/ini.v1"
)

const fileSection = "session"

// File is key-value storage for client state kept in local ini file.
// It is the command line counterpart of browser's local storage.
type File struct {
	path string

	mu  sync.Mutex
	cfg *ini.File
}

// NewFile returns new File storage. Missing file is created on first write.
func NewFile(path string) (*File, error) {
	// values are JSON documents, inline comments would cut them
	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true, IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("can't load %q: %w", path, err)
	}

	return &File{
		path: path,
		cfg:  cfg,
	}, nil
}

// DefaultFilePath returns session file path inside user's home directory.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".syntara", "session.ini")
	}
	return filepath.Join(home, ".syntara", "session.ini")
}

// Get returns value stored under key.
// It returns platform.ErrKeyNotFound if key is not stored.
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	section := f.cfg.Section(fileSection)
	if !section.HasKey(key) {
		return "", platform.ErrKeyNotFound
	}

	return section.Key(key).String(), nil
}

// Set stores value under key and saves file.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cfg.Section(fileSection).Key(key).SetValue(value)

	return f.save()
}

// Delete removes provided keys and saves file. Missing keys are ignored.
func (f *File) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	section := f.cfg.Section(fileSection)
	for _, key := range keys {
		section.DeleteKey(key)
	}

	return f.save()
}

func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("can't create session directory: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("can't open %q: %w", f.path, err)
	}

	if _, err := f.cfg.WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("can't write %q: %w", f.path, err)
	}

	return file.Close()
}
