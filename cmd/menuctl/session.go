package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/menu-api/internal/application/dto"
)

// session estado de sesión admin persistido entre invocaciones. No es una barrera de
// seguridad: la API valida el token en cada petición.
type session struct {
	Token      string           `json:"token"`
	User       dto.UserResponse `json:"user"`
	LoggedInAt time.Time        `json:"logged_in_at"`
}

// loadSession lee el archivo de sesión. Sin archivo o sin ruta devuelve nil, nil.
func loadSession(path string) (*session, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var s session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("sesión corrupta en %s: %w", path, err)
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

// saveSession escribe la sesión con permisos 0600, creando el directorio si hace falta.
func saveSession(path string, s *session) error {
	if path == "" {
		return errors.New("sin --session-file no se puede guardar la sesión")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// clearSession borra el archivo de sesión; no existir no es error.
func clearSession(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
