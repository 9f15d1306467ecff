package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devon4899/FRPG/internal/engine"
	"github.com/devon4899/FRPG/internal/store"
	"github.com/devon4899/FRPG/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	snap, err := s.LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading profile: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(snap, rngSeed(s))

	app := tui.NewApp(eng, s)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rngSeed reads the persisted reward-roll seed, minting and storing a fresh
// one on first run so reward sequences differ between installs.
func rngSeed(s *store.Store) int64 {
	if v := s.GetSettingDefault("rng_seed", ""); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return seed
		}
	}
	seed := rand.Int63()
	s.SetSetting("rng_seed", strconv.FormatInt(seed, 10))
	return seed
}
