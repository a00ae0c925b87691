package main

import (
	"fmt"

	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/ruminaider/chip-select/internal/config"
	"github.com/spf13/cobra"
)

var (
	replayOutput   string
	replaySteps    bool
	replaySelected []string
)

var replayCmd = &cobra.Command{
	Use:   "replay SCRIPT",
	Short: "Run an event script without a terminal and print the resulting view",
	Long: `Feeds the events in a YAML script through the picker and prints the final
view. With --steps every intermediate view is printed as well.

Example script:

  - event: focus
  - event: text
    text: jo
  - event: suggestion
    name: John`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		result, err := commands.Replay(args[0], commands.ReplayOptions{
			Config:   cfg,
			Selected: replaySelected,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if replaySteps {
			for i, v := range result.Steps {
				out, err := commands.FormatView(v, replayOutput)
				if err != nil {
					return err
				}
				if replayOutput == commands.OutputText {
					fmt.Fprintf(w, "step %d\n", i+1)
				}
				fmt.Fprint(w, out)
			}
			return nil
		}

		out, err := commands.FormatView(result.Final, replayOutput)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", commands.OutputText, "output format: text, json or yaml")
	replayCmd.Flags().BoolVar(&replaySteps, "steps", false, "print the view after every event")
	replayCmd.Flags().StringSliceVar(&replaySelected, "select", nil, "names selected before the first event")
}
