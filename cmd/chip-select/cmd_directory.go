package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/ruminaider/chip-select/internal/paths"
	"github.com/spf13/cobra"
)

var (
	dirAddName  string
	dirAddLabel string
)

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Inspect or extend the directory names are picked from",
}

var directoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.DirectoryList(cfgPath)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%d entries)\n", result.Source, len(result.Entries))
		for _, e := range result.Entries {
			fmt.Fprintf(w, "  %3d  %-16s %s\n", e.ID, e.Name, e.Label)
		}
		return nil
	},
}

var directoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to the directory file",
	Long: `Appends an entry to the configured directory file. When no directory is
configured, ` + paths.DirectoryFile() + ` is created from the built-in sample
and the config is pointed at it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(dirAddName) == "" {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("--name is required when not running in a terminal")
			}
			if err := promptEntry(&dirAddName, &dirAddLabel); err != nil {
				return err
			}
		}

		result, err := commands.DirectoryAdd(cfgPath, paths.DirectoryFile(), dirAddName, dirAddLabel)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Added %s (id %d) to %s\n", result.Entry.Name, result.Entry.ID, result.Path)
		if result.ConfigUpdated {
			fmt.Fprintf(w, "Config now uses %s\n", result.Path)
		}
		return nil
	},
}

// promptEntry asks for the fields of a new entry.
func promptEntry(name, label *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Label").
				Description("Shown next to the name in suggestions, e.g. an email address").
				Value(label),
		),
	).Run()
}

func init() {
	directoryAddCmd.Flags().StringVar(&dirAddName, "name", "", "entry name")
	directoryAddCmd.Flags().StringVar(&dirAddLabel, "label", "", "entry label")

	directoryCmd.AddCommand(directoryListCmd)
	directoryCmd.AddCommand(directoryAddCmd)
}
