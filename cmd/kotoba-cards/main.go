package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katorin/kotoba-cards/config"
	"github.com/katorin/kotoba-cards/internal/deck"
	"github.com/katorin/kotoba-cards/internal/deckfile"
	"github.com/katorin/kotoba-cards/internal/reading"
	"github.com/katorin/kotoba-cards/internal/ui"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", config.DefaultPath(), "Path to the config file")
		deckPath   = flag.String("deck", "", "Path to a TOML deck file (overrides the config)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("kotoba-cards - terminal Japanese vocabulary flashcards\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start with the built-in deck\n", os.Args[0])
		fmt.Printf("  %s --deck n5.toml           # Start with a custom deck file\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("kotoba-cards v1.0.0\n")
		return
	}

	// The TUI owns the terminal, so log lines go to a file instead.
	logFile, err := os.OpenFile("kotoba-cards.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.Default()
	}
	if *deckPath != "" {
		cfg.DeckPath = *deckPath
	}

	seed := deck.Seed()
	if cfg.DeckPath != "" {
		seed, err = deckfile.Load(cfg.DeckPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load deck file: %v\n", err)
			os.Exit(1)
		}
	}

	var analyzer *reading.Analyzer
	if !cfg.UI.NoReadingHints {
		analyzer, err = reading.NewAnalyzer()
		if err != nil {
			// Suggestions are optional; carry on without them.
			log.Printf("Reading analyzer unavailable: %v", err)
		}
	}

	d := deck.New(seed)
	log.Printf("Loaded %d entries", len(d.ListEntries()))

	p := tea.NewProgram(ui.New(d, analyzer, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("UI error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
