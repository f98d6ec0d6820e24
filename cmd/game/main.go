package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"github.com/younwookim/retromenu/internal/application/game"
	"github.com/younwookim/retromenu/internal/application/input"
	"github.com/younwookim/retromenu/internal/application/layer"
	"github.com/younwookim/retromenu/internal/application/layer/particle"
	"github.com/younwookim/retromenu/internal/application/layer/universal"
	"github.com/younwookim/retromenu/internal/application/mode"
	"github.com/younwookim/retromenu/internal/application/replay"
	"github.com/younwookim/retromenu/internal/application/scene"
	"github.com/younwookim/retromenu/internal/application/scene/menu"
	"github.com/younwookim/retromenu/internal/application/scene/modeselect"
	"github.com/younwookim/retromenu/internal/application/scene/play"
	"github.com/younwookim/retromenu/internal/application/scene/settings"
	"github.com/younwookim/retromenu/internal/application/scene/testscene"
	"github.com/younwookim/retromenu/internal/application/transition"
	"github.com/younwookim/retromenu/internal/infrastructure/config"
	"github.com/younwookim/retromenu/internal/infrastructure/font"
)

// options are the command line flags
type options struct {
	configDir  string
	theme      string
	scene      string
	recordFile string
	replayFile string
	debug      bool
}

// app is everything main wires together
type app struct {
	cfg      *config.GameConfig
	scenes   *scene.Manager
	game     *game.Game
	recorder *replay.Recorder
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("retromenu", flag.ContinueOnError)
	fset.StringVar(&opts.configDir, "config", "", "Load display.json and themes.toml from this directory instead of the embedded defaults")
	fset.StringVar(&opts.theme, "theme", "", "Override the theme from display.json")
	fset.StringVar(&opts.scene, "scene", scene.MenuKey, "Scene to start in (menu, modes, play, settings, test)")
	fset.StringVar(&opts.recordFile, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replayFile, "replay", "", "Play back a recorded session")
	fset.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if opts.recordFile != "" && opts.replayFile != "" {
		return options{}, errors.New("-record and -replay are mutually exclusive")
	}
	return opts, nil
}

func loadConfig(opts options) (*config.GameConfig, error) {
	if opts.configDir != "" {
		return config.NewLoader(opts.configDir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// newApp loads the configuration and builds the scenes, the input pipeline
// and the game loop
func newApp(opts options) (*app, error) {
	gc, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	cfg := gc.Config
	if opts.theme != "" {
		if err := gc.Themes.Apply(cfg, opts.theme); err != nil {
			return nil, fmt.Errorf("-theme: %w", err)
		}
	}

	seed := time.Now().UnixNano()
	startScene := opts.scene
	var replayer *replay.Replayer
	if opts.replayFile != "" {
		data, err := replay.LoadReplay(opts.replayFile)
		if err != nil {
			return nil, err
		}
		replayer = replay.NewReplayer(*data)
		seed = replayer.Seed()
		if replayer.Scene() != "" {
			startScene = replayer.Scene()
		}
		log.WithFields(log.Fields{"file": opts.replayFile, "frames": replayer.TotalFrames(), "seed": seed}).Info("Replaying")
	}

	effects := layer.NewRegistry()
	universal.RegisterEffects(effects, seed)
	particle.Register(effects, seed+1)
	u := universal.NewFactory(effects)
	f := font.NewFace(cfg.FontSize())
	layers := layer.NewManager()
	modes := mode.NewRegistry()
	mode.RegisterBuiltins(modes)

	scenes := scene.NewManager(cfg, transition.NewRegistry())
	scenes.Add(scene.MenuKey, menu.New(f, cfg, layers, u, effects, scenes))
	scenes.Add(modeselect.Key, modeselect.New(f, cfg, layers, u, modes, effects, scenes))
	scenes.Add(modeselect.PlayKey, play.New(f, cfg, layers, u, modes))
	scenes.Add("settings", settings.New(f, cfg, layers, u, gc.Themes, scenes))
	scenes.Add("test", testscene.New(f, cfg, layers, u))
	if err := scenes.Set(startScene); err != nil {
		return nil, err
	}

	im := input.NewManager(cfg)
	im.Register(scenes)

	var source input.Source = input.NewPoller()
	if replayer != nil {
		source = replayer
	}
	g := game.New(cfg, scenes, im, source)

	a := &app{cfg: gc, scenes: scenes, game: g}
	if opts.recordFile != "" {
		a.recorder = replay.NewRecorder(seed, startScene)
		g.SetRecorder(a.recorder)
		log.WithFields(log.Fields{"file": opts.recordFile, "seed": seed}).Info("Recording enabled")
	}
	return a, nil
}

func (a *app) saveRecording(filename string) {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.Save(filename); err != nil {
		log.WithError(err).Error("Failed to save recording")
		return
	}
	log.WithFields(log.Fields{"file": filename, "frames": a.recorder.FrameCount()}).Info("Recording saved")
}

func setupLogging(debug bool) {
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(os.Stdout)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	setupLogging(opts.debug)

	a, err := newApp(opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	cfg := a.cfg.Config
	ebiten.SetWindowSize(cfg.ScreenWidth*cfg.WindowScale, cfg.ScreenHeight*cfg.WindowScale)
	ebiten.SetWindowTitle("Retro Menu")
	ebiten.SetTPS(cfg.FPS)

	err = ebiten.RunGame(a.game)
	a.saveRecording(opts.recordFile)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
