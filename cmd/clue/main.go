package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"clue-mansion/internal/cli"
	"clue-mansion/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	logLevel := flag.String("loglevel", "warn", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "", "Path to a JSON mansion definition (default: built-in)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	cpuPolicy := flag.String("cpu", "first", "CPU movement: first or random free room")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load game configuration
	var gameConfig *config.GameConfig
	if *configPath != "" {
		gameConfig, err = config.Load(*configPath)
	} else {
		gameConfig, err = config.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debugf("random seed %d", *seed)
	randSource := rand.New(rand.NewSource(*seed))
	if err := ui.Run(flag.Args(), gameConfig, randSource, *cpuPolicy); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
