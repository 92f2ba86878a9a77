package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mazeadventure/pkg/engine/audio"
	"mazeadventure/pkg/engine/audio/speaker"
	"mazeadventure/pkg/engine/speech"
	"mazeadventure/pkg/game/config"
	"mazeadventure/pkg/game/devtools"
	"mazeadventure/pkg/game/gameplay"
	"mazeadventure/pkg/game/generator"
	"mazeadventure/pkg/game/messages"
	"mazeadventure/pkg/game/renderer"
	ebitenrenderer "mazeadventure/pkg/game/renderer/ebiten"
	"mazeadventure/pkg/game/renderer/tui"
	"mazeadventure/pkg/game/server"
	"mazeadventure/pkg/game/settings"
	"mazeadventure/pkg/game/state"
)

const logFilename = "mazeadventure.log"

func main() {
	cfg := config.Load()
	cfg.ApplyBindings()

	startLevel := flag.Int("level", cfg.StartLevel, "starting level (for developer testing)")
	seed := flag.Int64("seed", cfg.Seed, "maze seed, 0 for a random one")
	rendererName := flag.String("renderer", cfg.Renderer, "renderer to use: tui or ebiten")
	generatorName := flag.String("generator", cfg.Generator, "maze generator: backtracker or fixed")
	locale := flag.String("locale", cfg.Locale, "announcement language")
	serveAddr := flag.String("serve", cfg.ServeAddr, "run the HTTP API on this address instead of a game")
	accessible := flag.Bool("accessible", false, "switch on every accessibility option")
	dump := flag.Bool("dump", false, "print the starting maze and exit")
	dumpFile := flag.Bool("dump-file", false, "write the starting maze to map.txt and exit")
	flag.Parse()

	if *serveAddr != "" {
		serve(*serveAddr, *generatorName)
		return
	}

	gen, err := generator.ByName(*generatorName, *seed)
	if err != nil {
		log.Fatalf("[APP] [ERROR] %v", err)
	}

	g := state.NewGame()
	g.Settings = cfg.Accessibility
	if *accessible {
		g.Settings = settings.All()
	}

	text := messages.Load(*locale)

	if *dump || *dumpFile {
		c := gameplay.NewController(g, gen, audio.Silent{}, speech.Silent{}, text)
		c.Start(*startLevel)
		if err := dumpMap(g, *dumpFile); err != nil {
			log.Fatalf("[APP] [ERROR] dump map: %v", err)
		}
		return
	}

	tones := newTonePlayer()
	defer closeTonePlayer(tones)
	voice := newSpeaker()
	defer closeSpeaker(voice)

	c := gameplay.NewController(g, gen, tones, voice, text)

	switch *rendererName {
	case "ebiten":
		r := ebitenrenderer.New(text)
		renderer.SetRenderer(r)
		renderer.Init()
		c.Start(*startLevel)
		if err := r.Run(func() { mainLoop(c) }); err != nil {
			log.Printf("[APP] [ERROR] ebiten: %v", err)
		}
	case "tui", "":
		redirectLogs()
		renderer.SetRenderer(tui.New(text))
		renderer.Init()
		c.Start(*startLevel)
		mainLoop(c)
	default:
		log.Fatalf("[APP] [ERROR] unknown renderer %q", *rendererName)
	}
}

// mainLoop renders, waits for an intent and applies it until the player quits
func mainLoop(c *gameplay.Controller) {
	for {
		renderer.Clear()
		renderer.RenderFrame(c.Game)

		if c.ProcessIntent(renderer.GetInput()) {
			log.Printf("[APP] [INFO] quit on level %d after %d moves", c.Game.Level, c.Game.Moves)
			return
		}
	}
}

// dumpMap prints the maze with its solution, or writes it to map.txt
func dumpMap(g *state.Game, toFile bool) error {
	if !toFile {
		return devtools.WriteDump(os.Stdout, g)
	}
	path, err := devtools.DumpMapToFile(g)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// redirectLogs keeps log lines off the terminal the maze is drawn on
func redirectLogs() {
	path := filepath.Join(os.TempDir(), logFilename)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("[APP] [WARN] logging to stderr: %v", err)
		return
	}
	log.SetOutput(f)
}

func serve(addr, generatorName string) {
	router := server.NewRouter(server.Config{
		Addr:        addr,
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewMazeController(generatorName)},
	})

	log.Printf("[APP] [INFO] serving maze API on %s", addr)
	if err := router.Run(); err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		os.Exit(1)
	}
}

// newTonePlayer opens the sound device, or stays silent when there is none
func newTonePlayer() audio.TonePlayer {
	p, err := speaker.New()
	if err != nil {
		log.Printf("[AUDIO] [WARN] audio cues unavailable: %v", err)
		return audio.Silent{}
	}
	return p
}

func closeTonePlayer(p audio.TonePlayer) {
	if sp, ok := p.(*speaker.Player); ok {
		sp.Close()
	}
}

// newSpeaker finds a speech synthesizer, or stays silent when there is none
func newSpeaker() speech.Speaker {
	s, err := speech.NewCommandSpeaker()
	if err != nil {
		log.Printf("[SPEECH] [WARN] screen reader output unavailable: %v", err)
		return speech.Silent{}
	}
	return s
}

func closeSpeaker(s speech.Speaker) {
	if cs, ok := s.(*speech.CommandSpeaker); ok {
		cs.Close()
	}
}
