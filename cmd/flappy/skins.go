package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emoji-flappy/internal/skin"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List available skins",
	Long:  `Shows the skins the terminal host can draw with.`,
	Args:  cobra.NoArgs,
	Run:   runSkins,
}

func runSkins(cmd *cobra.Command, args []string) {
	skins := skin.List()
	out := cmd.OutOrStdout()

	if len(skins) == 0 {
		fmt.Fprintln(out, "No skins available.")
		return
	}

	fmt.Fprintln(out, "Available skins:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range skins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range skins {
		marker := ""
		if s.ID == skin.DefaultID {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --skin <id>' to use one.")
}
