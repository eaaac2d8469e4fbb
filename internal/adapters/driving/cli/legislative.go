package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var legislativeCmd = &cobra.Command{
	Use:   "legislative",
	Short: "Browse legislative activity",
}

var propositionsCmd = &cobra.Command{
	Use:   "propositions",
	Short: "List recent legislative propositions",
	RunE:  runPropositions,
}

var propositionsLimit int

func init() {
	propositionsCmd.Flags().IntVarP(&propositionsLimit, "limit", "n", 0, "maximum number of propositions")
	legislativeCmd.AddCommand(propositionsCmd)
	rootCmd.AddCommand(legislativeCmd)
}

func runPropositions(cmd *cobra.Command, _ []string) error {
	if legislativeService == nil {
		return errors.New("legislative service not configured")
	}

	items, err := legislativeService.Propositions(context.Background(), propositionsLimit)
	if err != nil {
		return fmt.Errorf("listing propositions: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No propositions found.")
		return nil
	}

	for _, item := range items {
		label := item.Sigla
		if label == "" {
			label = string(item.ID)
		}
		cmd.Printf("  %s  %s\n", label, item.Title)
		if item.Summary != "" {
			cmd.Printf("      %s\n", item.Summary)
		}
	}
	return nil
}
