package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/audio"
	"github.com/lixenwraith/aelyra/config"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var (
	configPath    = flag.String("config", "", "Path to a YAML config file")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/aelyra.log")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 uses the config or the clock")
	assetsFlag    = flag.String("assets", "", "Image directory, overrides the config")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aelyra: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	colorMode, err := render.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assetsDir := cfg.Assets
	if *assetsFlag != "" {
		assetsDir = *assetsFlag
	}
	assets := asset.NewLibrary(assetsDir)
	loaded := assets.Preload(preloadNames()...)
	log.Printf("assets: %d images from %q", loaded, assetsDir)

	// Audio failure is not fatal; the game runs silent
	var sound engine.SoundPlayer = engine.NopSound{}
	sm := audio.NewSoundManager(cfg.AudioConfig())
	if err := sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		sound = sm
		defer sm.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mAELYRA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	w, h := screen.Size()
	ctx := engine.NewGameContext(sound, keys, rand.New(rand.NewSource(seed)), w, h)
	if *muteFlag {
		ctx.ToggleMute()
	}
	log.Printf("starting: seed=%d size=%dx%d color=%d", seed, w, h, colorMode)

	g := newGame(ctx, screen, colorMode, assets)
	events := make(chan tcell.Event, 256)

	grp, gctx := errgroup.WithContext(context.Background())
	grp.Go(func() (err error) {
		defer recoverTo(&err, "event poller")
		return pollEvents(gctx, screen, events)
	})
	grp.Go(func() (err error) {
		defer recoverTo(&err, "game loop")
		// Fini unblocks the poller once the loop exits
		defer screen.Fini()
		return g.run(gctx, events)
	})
	return grp.Wait()
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// recoverTo converts a goroutine panic into an error carrying the stack
func recoverTo(err *error, where string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s crashed: %v\n%s", where, r, debug.Stack())
	}
}

// preloadNames lists every image the renderers may ask for
func preloadNames() []string {
	names := []string{asset.PlayerIdle, asset.Monster}
	for i := range 3 {
		names = append(names, asset.PlayerWalk(i))
	}
	for _, k := range engine.DefaultKingdoms() {
		names = append(names, k.ImageKey, k.AnimKey)
	}
	return names
}
