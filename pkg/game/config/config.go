// Package config loads runtime settings from defaults, an optional .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Collision models
const (
	CollisionPoint = "point"
	CollisionBox   = "box"
)

// Ragged row policies
const (
	RaggedPad    = "pad"
	RaggedReject = "reject"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds the game's runtime settings.
type Config struct {
	Renderer       string // Backend to run: ebiten or tui
	WindowWidth    int    // Initial window width in pixels
	WindowHeight   int    // Initial window height in pixels
	LogLevel       string // logrus level name
	LogFile        string // Log destination; empty means stderr
	Locale         string // Catalogue for user-facing text
	StarCount      int    // Number of background stars
	StarSeed       int64  // Seed for star placement
	CollisionModel string // point or box
	RaggedRows     string // pad or reject
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Renderer:       RendererEbiten,
		WindowWidth:    1024,
		WindowHeight:   768,
		LogLevel:       "info",
		Locale:         "es",
		StarCount:      500,
		StarSeed:       1,
		CollisionModel: CollisionPoint,
		RaggedRows:     RaggedPad,
	}
}

// Load reads the given .env files (".env" when none are named), then the
// environment, on top of the defaults. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a config from a lookup function such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	getString(lookup, "RENDERER", &cfg.Renderer)
	getString(lookup, "LOG_LEVEL", &cfg.LogLevel)
	getString(lookup, "LOG_FILE", &cfg.LogFile)
	getString(lookup, "LOCALE", &cfg.Locale)
	getString(lookup, "COLLISION_MODEL", &cfg.CollisionModel)
	getString(lookup, "RAGGED_ROWS", &cfg.RaggedRows)

	if err = getInt(lookup, "WINDOW_WIDTH", &cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if err = getInt(lookup, "WINDOW_HEIGHT", &cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	if err = getInt(lookup, "STAR_COUNT", &cfg.StarCount); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("STAR_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: STAR_SEED must be an integer: %v", ErrInvalid, err)
		}
		cfg.StarSeed = seed
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated values and sizes
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Renderer)
	}
	switch c.CollisionModel {
	case CollisionPoint, CollisionBox:
	default:
		return fmt.Errorf("%w: unknown collision model %q", ErrInvalid, c.CollisionModel)
	}
	switch c.RaggedRows {
	case RaggedPad, RaggedReject:
	default:
		return fmt.Errorf("%w: unknown ragged row policy %q", ErrInvalid, c.RaggedRows)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	if c.StarCount < 0 {
		return fmt.Errorf("%w: negative star count", ErrInvalid)
	}
	return nil
}

func getString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = strings.TrimSpace(v)
	}
}

func getInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	*dst = n
	return nil
}
