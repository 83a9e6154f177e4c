package main

import (
	"flag"
	"log"
	"time"

	"chosenoffset.com/rollabout/internal/game"
	ebitenrender "chosenoffset.com/rollabout/internal/render/ebiten"
	"chosenoffset.com/rollabout/internal/sim"
)

func main() {
	configPath := flag.String("config", "data/sim.json", "path to the simulation tuning file")
	seed := flag.Int64("seed", 0, "world seed (0 = time-based)")
	flag.Parse()

	screenWidth := 800
	screenHeight := 600

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load simulation config: %v", err)
	}

	worldSeed := *seed
	if worldSeed == 0 {
		worldSeed = time.Now().UnixNano()
	}

	log.Printf("Building world %gx%g with %d NPCs (seed %d)",
		cfg.World.Width, cfg.World.Height, cfg.World.NPCCount, worldSeed)
	world := sim.NewWorld(cfg, float64(screenWidth), float64(screenHeight), worldSeed)

	g := game.New(world, renderer, inputMgr, screenWidth, screenHeight)

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Rollabout")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
