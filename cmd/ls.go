package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/aash/internal/profile"
	"github.com/vietdv277/aash/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured AWS profiles",
	Long: `List all profiles from ~/.aws/config with their kind and region.

Examples:
  aash ls`,
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	store, err := profile.DefaultStore()
	if err != nil {
		return err
	}

	profiles, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No AWS profiles found")
		fmt.Println("Run 'aash' to create one")
		return nil
	}

	ui.PrintProfileTable(profiles)
	return nil
}
