package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/registry"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List and validate the rooms of a world",
	Long: `Load every room of a world the way a game does and list them with
their object counts. Load warnings are printed after the list.

Validation errors, such as a door leading to a missing room, make the
command fail.

Examples:
  adventure rooms
  adventure rooms --world ./my-world`,
	Args: cobra.NoArgs,
	RunE: runRooms,
}

func init() {
	roomsCmd.Flags().StringVar(&flagWorld, "world", "", "World id or directory (default from config)")
}

func runRooms(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	w, err := openWorld(flagWorld, cfg, stderrLogger())
	if err != nil {
		return err
	}

	fmt.Printf("World %s: %d rooms, %d riddles\n", w.ID, w.NumRooms(), len(w.Riddles()))
	fmt.Println()
	fmt.Printf("  %-2s  %-22s  %5s %4s %5s %5s %6s %5s %5s %6s %5s %4s\n",
		"ID", "File", "Doors", "Keys", "Bombs", "Sw", "Spring", "Obst", "Torch", "Riddle", "Tele", "Dark")
	for id := 1; id <= w.NumRooms(); id++ {
		r, err := w.LoadRoom(id)
		if err != nil {
			return err
		}
		st := r.Stats()
		fmt.Printf("  %-2d  %-22s  %5d %4d %5d %5d %6d %5d %5d %6d %5d %4d\n",
			id, r.Source, st.Doors, st.Keys, st.Bombs, st.Switches, st.Springs,
			st.Obstacles, st.Torches, st.Riddles, st.Teleports, st.DarkAreas)
	}

	if warnings := w.Warnings(); len(warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, msg := range warnings {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println()
	fmt.Println("Built-in worlds:")
	for _, info := range registry.List() {
		fmt.Printf("  %-10s  %s\n", info.ID, info.Title)
	}
	return nil
}
