// Package media administra el directorio plano de imágenes subidas.
// Los nombres son strings opacos; el Store nunca acepta separadores de path.
package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

// ErrInvalidName indica un nombre vacío o con separadores / "..".
var ErrInvalidName = errors.New("invalid image filename")

type Store struct {
	dir         string
	defaultName string
}

// NewStore crea (si hace falta) el directorio de imágenes.
// defaultName es el placeholder para registros sin imagen propia;
// se resuelve una sola vez acá y queda inmutable.
func NewStore(dir, defaultName string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{dir: dir, defaultName: defaultName}, nil
}

func (s *Store) Dir() string         { return s.dir }
func (s *Store) DefaultName() string { return s.defaultName }

// Exists reporta si name está presente en el directorio.
// Nombres inválidos cuentan como inexistentes.
func (s *Store) Exists(name string) bool {
	p, err := s.path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Remove borra name si existe; un archivo ausente no es error.
func (s *Store) Remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Save deposita el contenido de r bajo un nombre generado
// <unix-ms>-<rand> conservando la extensión original, y lo devuelve.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), filepath.Ext(originalName))

	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(p)
		return "", fmt.Errorf("write image: %w", err)
	}
	return name, nil
}

// path une name al directorio base rechazando path traversal:
// solo se aceptan nombres "pelados" (sin separadores ni "..").
func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}
