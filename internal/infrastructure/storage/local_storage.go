// Package storage guarda archivos subidos en disco local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

var _ usecase.FileStorage = (*LocalStorage)(nil)

// LocalStorage escribe bajo un directorio raíz; las rutas devueltas son relativas a esa raíz.
type LocalStorage struct {
	root string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// Root directorio raíz (para servir los archivos como estáticos).
func (s *LocalStorage) Root() string { return s.root }

// Save escribe r en root/dir/name. Escribe primero a un temporal y renombra, para no dejar archivos a medias.
func (s *LocalStorage) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	rel := filepath.ToSlash(filepath.Join(dir, filepath.Base(name)))
	full, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, readerWithContext(ctx, r)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return "", fmt.Errorf("storage: mover: %w", err)
	}
	return rel, nil
}

// Delete borra el archivo; no falla si ya no existe.
func (s *LocalStorage) Delete(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: borrar: %w", err)
	}
	return nil
}

// resolve impide salir de la raíz con rutas como "../x".
func (s *LocalStorage) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: ruta inválida %q", rel)
	}
	return filepath.Join(s.root, clean), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
