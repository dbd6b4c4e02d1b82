package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunarok/pokedex-cli/internal/api"
	"github.com/lunarok/pokedex-cli/internal/catalog"
	"github.com/lunarok/pokedex-cli/internal/cmd"
	"github.com/lunarok/pokedex-cli/internal/config"
	"github.com/lunarok/pokedex-cli/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Pokédex - terminal catalog browser",
		Long:  "Pokédex CLI: browse the creature catalog, filter by name, number, or type, and open entry details.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.SearchCmd())
	root.AddCommand(cmd.VersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so the load-failure sink goes to a
	// file under DEBUG and is silenced otherwise.
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("pokedex-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := api.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	loader := catalog.NewLoader(client, cfg.Limit)
	app := ui.NewApp(loader, cfg.PartialLoad)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
