package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/chip-select/cmd/chip-select/tui"
	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/commands"
	"github.com/ruminaider/chip-select/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	pickOutput   string
	pickTrace    string
	pickSelected []string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose names interactively and print the selection",
	Long: `Opens the chip picker on the configured directory. Ctrl+S confirms and
prints the selection; Esc or Ctrl+C cancels without output.`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickOutput, "output", "o", commands.OutputText, "output format: text, json or yaml")
	pickCmd.Flags().StringVar(&pickTrace, "trace", "", "append every rendered view to `FILE` as JSON lines")
	pickCmd.Flags().StringSliceVar(&pickSelected, "select", nil, "names selected on start")

	// The root command runs pick, so it accepts pick's flags too.
	rootCmd.Flags().AddFlagSet(pickCmd.Flags())
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("pick needs an interactive terminal; use 'chip-select replay' for scripted runs")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	dir, err := commands.LoadDirectory(cfg)
	if err != nil {
		return err
	}
	flavor, err := config.Flavor(cfg.Theme)
	if err != nil {
		return err
	}

	opts := []chips.Option{
		chips.WithLogger(logger),
		chips.WithDeletionKeys(cfg.DeletionKeys...),
		chips.WithSelected(pickSelected...),
	}

	var trace *commands.TraceSink
	if pickTrace != "" {
		f, err := os.OpenFile(pickTrace, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening trace file: %w", err)
		}
		defer f.Close()
		trace = commands.NewTraceSink(f)
		opts = append(opts, chips.WithSink(trace))
	}

	styles := tui.NewStyles(flavor)
	model := tui.NewModel(chips.New(dir, opts...), tui.Options{
		Placeholder:    cfg.Placeholder,
		MaxSuggestions: cfg.MaxSuggestions,
		Styles:         &styles,
		AutoFocus:      true,
		DeletionKey:    cfg.DeletionKeys[0],
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if trace != nil && trace.Err() != nil {
		logger.Warn("trace incomplete", zap.Error(trace.Err()))
	}

	final := finalModel.(tui.Model)
	if !final.Confirmed {
		// User cancelled.
		return nil
	}

	out, err := commands.FormatSelection(final.Selected(), pickOutput)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
