// Package config carga la configuración del servicio desde un archivo TOML
// opcional más overrides por variables de entorno.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// Addr es la dirección de escucha del servidor HTTP (":4000").
	Addr string `toml:"addr"`

	// DBDSN es el DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string `toml:"db_dsn"`

	// ImageDir es el directorio plano donde viven las imágenes subidas.
	ImageDir string `toml:"image_dir"`

	// DefaultImage es el placeholder que se usa cuando un registro
	// no tiene imagen propia. Debe existir en ImageDir.
	DefaultImage string `toml:"default_image"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func Default() Config {
	return Config{
		Addr:         ":4000",
		ImageDir:     "images",
		DefaultImage: "1718906085691-433161642.jpeg",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load arma la config final: defaults <- archivo TOML (si existe) <- env.
// Con path vacío intenta "config.toml" pero no exige que exista.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = "config.toml"
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// sin archivo: defaults + env
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if strings.TrimSpace(cfg.Addr) == "" {
		return Config{}, errors.New("addr must not be empty")
	}
	if strings.TrimSpace(cfg.ImageDir) == "" {
		return Config{}, errors.New("image_dir must not be empty")
	}
	if strings.TrimSpace(cfg.DefaultImage) == "" {
		return Config{}, errors.New("default_image must not be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	cfg.DBDSN = envOr("DB_DSN", cfg.DBDSN)
	cfg.ImageDir = envOr("IMAGE_DIR", cfg.ImageDir)
	cfg.DefaultImage = envOr("DEFAULT_IMAGE", cfg.DefaultImage)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("LOG_FORMAT", cfg.LogFormat)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
