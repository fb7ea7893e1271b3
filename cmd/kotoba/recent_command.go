package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCommand(ctx *commandContext) *cobra.Command {
	var output string
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			store, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clearAll {
				removed, err := store.ClearRecent(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed %d recent videos\n", removed)
				return nil
			}

			items, err := store.ListRecent(cmd.Context())
			if err != nil {
				return err
			}
			if handled, err := writeStructured(cmd, format, items); handled {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "No recent videos")
				return nil
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.OpenedAt.Local().Format("2006-01-02 15:04"),
					item.Title,
					yesNo(item.PrimaryPath != ""),
					yesNo(item.SecondaryPath != ""),
					item.VideoPath,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Opened", "Title", "Primary", "Secondary", "Path"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Forget all recent videos")
	return cmd
}
