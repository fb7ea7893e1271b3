package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "kotoba",
		Short:         "Bilingual caption alignment for Japanese study",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCaptionsCommand(ctx))
	rootCmd.AddCommand(newOpenCommand(ctx))
	rootCmd.AddCommand(newRecentCommand(ctx))
	rootCmd.AddCommand(newWordCommand(ctx))
	rootCmd.AddCommand(newPlayCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
