package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/deckfile"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage presets and deck definition files",
	Long:  `Commands for listing, inspecting and managing decks in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List presets and decks in your deck library",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		fmt.Println("Presets:")
		for _, p := range deck.Presets() {
			printDeckEntry(p.Name, p.Description, p.Name == cfg.DefaultDeck)
		}

		libraryPath := config.GetDeckLibraryPath()
		entries, err := os.ReadDir(libraryPath)
		if os.IsNotExist(err) {
			fmt.Printf("\nDeck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'deckhand deck init' to create it.")
			return
		}
		if err != nil {
			fmt.Printf("Error reading deck library: %v\n", err)
			return
		}

		fmt.Println("\nLibrary:")
		found := false
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			def, err := deckfile.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				logger.Sugar().Warnf("skipping %s: %v", entry.Name(), err)
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			printDeckEntry(name, def.Config.Deck.Name, name == cfg.DefaultDeck)
			found = true
		}

		if !found {
			fmt.Println("  No decks found. You can add deck files to:", libraryPath)
		}
	},
}

func printDeckEntry(name, description string, isDefault bool) {
	if isDefault {
		fmt.Printf("* %s (%s) [DEFAULT]\n", name, description)
	} else {
		fmt.Printf("  %s (%s)\n", name, description)
	}
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Show every card of a preset or deck file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		t, err := openTable(name, os.Stdout)
		if err != nil {
			return err
		}
		defer t.Close()

		long, _ := cmd.Flags().GetBool("long")

		fmt.Printf("%s: %d cards\n", t.title, t.deck.TotalLength())
		if long {
			for _, c := range t.deck.Cards(deck.Draw) {
				fmt.Printf("  %s\t%s %s\n", t.render.Card(c), c.Unicode(), c.LongText())
			}
			return nil
		}

		for _, line := range t.render.Cards(t.deck.Cards(deck.Draw)) {
			fmt.Println(" ", line)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deckName := args[0]

		if _, err := deck.LookupPreset(deckName); err != nil {
			// Not a preset, make sure the deck file builds
			deckPath, err := config.GetDeckPath(deckName)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}

			def, err := deckfile.Load(deckPath)
			if err == nil {
				_, err = def.Cards()
			}
			if err != nil {
				fmt.Printf("Error: Not a valid deck - %v\n", err)
				return
			}
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			fmt.Printf("Error setting default deck: %v\n", err)
			return
		}

		fmt.Printf("Default deck set to: %s\n", deckName)
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library and config file",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating deck library: %v\n", err)
			return
		}

		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now add deck files (<name>.toml) to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckShowCmd.Flags().BoolP("long", "l", false, "Show one card per line with its full name")
}
