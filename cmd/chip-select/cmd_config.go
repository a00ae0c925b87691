package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chip-select configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := commands.ConfigShow(cfgPath)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := commands.ConfigInit(cfgPath, configInitForce)
		if errors.Is(err, commands.ErrConfigExists) && term.IsTerminal(os.Stdin.Fd()) {
			var overwrite bool
			if err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Overwrite %s?", cfgPath)).
						Description("The current settings will be replaced with defaults").
						Value(&overwrite),
				),
			).Run(); err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(cmd.OutOrStdout(), "Left existing config unchanged.")
				return nil
			}
			err = commands.ConfigInit(cfgPath, true)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
