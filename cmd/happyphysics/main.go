package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/akmonengine/feather2d/audio"
	"github.com/akmonengine/feather2d/config"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "YAML configuration file, defaults are used when empty")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "Spawn seed, overrides the configuration when not 0")
	soundFlag  = flag.Bool("sound", false, "Play a click on every collision")
)

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Spawn.Seed = *seedFlag
	}
	if *soundFlag {
		cfg.Sound = true
	}
	log.Printf("configuration: %+v", cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	var player *audio.Player
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the simulation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	simulation := NewSimulation(cfg, screen, player)
	runErr := simulation.Run()

	if player != nil {
		player.Close()
	}
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Simulation stopped: %v\n", runErr)
		os.Exit(1)
	}
}
