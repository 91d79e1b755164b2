package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/config"
	"oxygenmaze/pkg/game/devtools"
	"oxygenmaze/pkg/game/gameplay"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/maps"
	"oxygenmaze/pkg/game/renderer"
	ebitenrenderer "oxygenmaze/pkg/game/renderer/ebiten"
	"oxygenmaze/pkg/game/renderer/tui"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with settings")
	rendererName := flag.String("renderer", "", "renderer backend: ebiten or tui")
	locale := flag.String("locale", "", "language for messages: es or en")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "write logs to this file")
	width := flag.Int("width", 0, "window width in pixels")
	height := flag.Int("height", 0, "window height in pixels")
	stars := flag.Int("stars", -1, "number of background stars")
	seed := flag.Int64("seed", 0, "star placement seed")
	collision := flag.String("collision", "", "collision model: point or box")
	ragged := flag.String("ragged", "", "short map rows: pad or reject")
	dumpMap := flag.Bool("dump-map", false, "print the loaded map and exit")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logrus.WithError(err).Error("loading configuration")
		os.Exit(1)
	}

	// Flags override the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Renderer = *rendererName
		case "locale":
			cfg.Locale = *locale
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "width":
			cfg.WindowWidth = *width
		case "height":
			cfg.WindowHeight = *height
		case "stars":
			cfg.StarCount = *stars
		case "seed":
			cfg.StarSeed = *seed
		case "collision":
			cfg.CollisionModel = *collision
		case "ragged":
			cfg.RaggedRows = *ragged
		}
	})

	if err := run(cfg, *dumpMap); err != nil {
		logrus.WithError(err).Error("oxygen maze failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, dumpMap bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := i18n.SetLocale(cfg.Locale); err != nil {
		return err
	}

	setup := gameplay.DefaultSetup()
	setup.Scene.StarCount = cfg.StarCount
	setup.Scene.StarSeed = cfg.StarSeed
	if cfg.RaggedRows == config.RaggedReject {
		setup.Map.Ragged = maps.RaggedReject
	}
	if cfg.CollisionModel == config.CollisionBox {
		setup.Session.Collider = world.NewBoxCircle()
	}
	setup.Session.Logger = logrus.WithField("app", "oxygenmaze")

	sess, err := gameplay.BuildSession(setup)
	if err != nil {
		return err
	}

	if dumpMap {
		return devtools.DumpMap(os.Stdout, sess.Game)
	}

	var r renderer.Renderer
	switch cfg.Renderer {
	case config.RendererTUI:
		r = tui.New(sess, tui.Options{})
	default:
		r = ebitenrenderer.New(sess, cfg.WindowWidth, cfg.WindowHeight)
	}

	sess.Logger().WithFields(logrus.Fields{
		"renderer":  r.Name(),
		"locale":    cfg.Locale,
		"collision": cfg.CollisionModel,
	}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return r.Run(ctx)
}

// setupLogging applies the level and destination. The TUI owns the
// terminal, so without a log file its logs are discarded.
func setupLogging(cfg config.Config) (func(), error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logrus.SetOutput(f)
		return func() { f.Close() }, nil
	case cfg.Renderer == config.RendererTUI:
		logrus.SetOutput(io.Discard)
	default:
		logrus.SetOutput(os.Stderr)
	}
	return func() {}, nil
}
