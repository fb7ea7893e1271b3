package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kotoba/internal/captions"
)

func newCaptionsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "captions",
		Short: "Inspect and align caption files",
	}
	cmd.AddCommand(newCaptionsAlignCommand(ctx))
	cmd.AddCommand(newCaptionsAtCommand(ctx))
	return cmd
}

func newCaptionsAlignCommand(ctx *commandContext) *cobra.Command {
	var output string
	var mode string

	cmd := &cobra.Command{
		Use:   "align <primary> <secondary>",
		Short: "Align a secondary caption file onto a primary one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(mode) == "" {
				mode = cfg.Captions.AlignMode
			}
			alignMode, err := captions.ParseAlignMode(mode)
			if err != nil {
				return err
			}

			primary, err := captions.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read primary captions: %w", err)
			}
			secondary, err := captions.ParseFile(args[1])
			if err != nil {
				return fmt.Errorf("read secondary captions: %w", err)
			}
			set := captions.Load(primary, secondary, captions.LoadOptions{Mode: alignMode, OpenEnded: cfg.OpenEndedDuration()})

			if handled, err := writeStructured(cmd, format, set); handled {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderAlignedTable(set, cfg.OpenEndedDuration()))
			fmt.Fprintf(cmd.OutOrStdout(), "%d primary, %d secondary, aligned: %s\n",
				len(set.Primary), len(set.Secondary), yesNo(set.Aligned))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().StringVar(&mode, "mode", "", "Alignment mode: always or on_mismatch (defaults to config)")
	return cmd
}

func renderAlignedTable(set *captions.Set, openEnded time.Duration) string {
	rows := make([][]string, 0, max(len(set.Primary), len(set.Secondary)))
	for i := range max(len(set.Primary), len(set.Secondary)) {
		row := []string{strconv.Itoa(i + 1), "", "", "", ""}
		if i < len(set.Primary) {
			p := set.Primary[i]
			row[1] = captions.FormatTimestamp(p.StartSeconds)
			row[2] = captions.FormatTimestamp(p.EffectiveEnd(openEnded))
			row[3] = oneLine(p.Text)
		}
		if i < len(set.Secondary) {
			row[4] = oneLine(set.Secondary[i].Text)
			if i >= len(set.Primary) {
				row[1] = captions.FormatTimestamp(set.Secondary[i].StartSeconds)
				row[2] = captions.FormatTimestamp(set.Secondary[i].EffectiveEnd(openEnded))
			}
		}
		rows = append(rows, row)
	}
	return renderTable(
		[]string{"#", "Start", "End", "Primary", "Secondary"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}

func newCaptionsAtCommand(ctx *commandContext) *cobra.Command {
	var at float64
	var output string

	cmd := &cobra.Command{
		Use:   "at <primary> [secondary]",
		Short: "Show the captions active at a time",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := captions.ParseAlignMode(cfg.Captions.AlignMode)
			if err != nil {
				return err
			}
			primary, err := captions.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read primary captions: %w", err)
			}
			var secondary captions.Track
			if len(args) == 2 {
				if secondary, err = captions.ParseFile(args[1]); err != nil {
					return fmt.Errorf("read secondary captions: %w", err)
				}
			}

			set := captions.Load(primary, secondary, captions.LoadOptions{Mode: mode, OpenEnded: cfg.OpenEndedDuration()})
			active := captions.NewTimeline(set, cfg.OpenEndedDuration()).Query(at)

			if handled, err := writeStructured(cmd, format, active); handled {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", captions.FormatTimestamp(at))
			fmt.Fprintf(out, "  primary:   %s\n", displayText(active.Primary))
			fmt.Fprintf(out, "  secondary: %s\n", displayText(active.Secondary))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&at, "time", "t", 0, "Playback time in seconds")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func displayText(c *captions.Caption) string {
	if c == nil {
		return "(none)"
	}
	if c.Text == "" {
		return "(empty)"
	}
	return oneLine(c.Text)
}
