package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinpet/internal/chase"
	"tinpet/internal/config"
	"tinpet/internal/sim"
	"tinpet/internal/store"
	"tinpet/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file next to the save.
	logPath := filepath.Join(filepath.Dir(cfg.SavePath), "tinpet.log")
	if f, err := tea.LogToFile(logPath, "tinpet"); err == nil {
		defer f.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	st, err := store.Open(cfg.SavePath, cfg.StoreBackend)
	if err != nil {
		fmt.Printf("Error opening save store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	mgr := sim.NewManager(st)

	// Periodic autosave, so a hard kill loses at most one interval.
	if cfg.AutosaveSeconds > 0 {
		ticker := time.NewTicker(time.Duration(cfg.AutosaveSeconds) * time.Second)
		defer ticker.Stop()
		go func() {
			for range ticker.C {
				mgr.Save()
			}
		}()
	}

	// "tinpet chase" plays one full-screen chase session and exits.
	if len(os.Args) > 1 && os.Args[1] == "chase" {
		chase.Run(mgr)
		mgr.Save()
		return
	}

	p := tea.NewProgram(ui.NewModel(mgr, cfg.PetName))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	mgr.Save()
}
