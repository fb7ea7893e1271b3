package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kotoba/internal/language"
	"kotoba/internal/wordinfo"
)

func newWordCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "word <text>",
		Short: "Show the dictionary panel record for a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			record := wordinfo.NewService(nil, ctx.log()).Lookup(cmd.Context(), strings.Join(args, " "))
			if handled, err := writeStructured(cmd, format, record); handled {
				return err
			}
			rows := [][]string{
				{"Surface", record.Surface},
				{"Lemma", record.Lemma},
				{"Part of speech", record.POS},
				{"Pronunciation", record.Pronunciation},
				{"Script", string(record.Script)},
				{"Language", fmt.Sprintf("%s (%s)", language.DisplayName(cfg.Captions.PrimaryLanguage), language.ToISO3(cfg.Captions.PrimaryLanguage))},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}
