package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kotoba/internal/library"
	"kotoba/internal/logging"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	var title string
	var url string

	cmd := &cobra.Command{
		Use:   "open <video>",
		Short: "Load the caption sidecars for a video and add it to the recent list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sess, err := ctx.newSession()
			if err != nil {
				return err
			}

			src := library.Discover(args[0], cfg.Captions.PrimaryLanguage, cfg.Captions.SecondaryLanguage)
			set, err := sess.Open(cmd.Context(), src)
			if err != nil {
				return err
			}

			store, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer store.Close()
			if _, err := store.AddRecent(cmd.Context(), library.Recent{
				VideoPath:     src.VideoPath,
				Title:         title,
				URL:           url,
				PrimaryPath:   src.PrimaryPath,
				SecondaryPath: src.SecondaryPath,
			}); err != nil {
				logging.WarnWithContext(ctx.log(), "record recent video failed", "recent_write_failed",
					logging.Error(err),
					logging.String(logging.FieldImpact, "video missing from recent list"),
				)
			}

			rows := [][]string{
				{"Primary", orNone(src.PrimaryPath), strconv.Itoa(len(set.Primary))},
				{"Secondary", orNone(src.SecondaryPath), strconv.Itoa(len(set.Secondary))},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Track", "File", "Captions"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight}))
			fmt.Fprintf(out, "Load %s, aligned: %s\n", set.ID, yesNo(set.Aligned))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title shown in the recent list (defaults to the file name)")
	cmd.Flags().StringVar(&url, "url", "", "Source URL of the video")
	return cmd
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
