package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"kotoba/internal/api"
	"kotoba/internal/instance"
	"kotoba/internal/logging"
	"kotoba/internal/wordinfo"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local caption API for the player UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if b := strings.TrimSpace(bind); b != "" {
				cfg.Paths.APIBind = b
			}

			lock, err := instance.Acquire(cfg.LockPath())
			if err != nil {
				return err
			}
			defer func() { _ = lock.Release() }()

			sess, err := ctx.newSession()
			if err != nil {
				return err
			}
			store, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer store.Close()

			logger := ctx.log()
			srv := api.NewServer(cfg, sess, store, wordinfo.NewService(nil, logger), logger)

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logger.Info("serving captions api",
				logging.String("bind", cfg.Paths.APIBind),
				logging.String("library", store.Path()),
				logging.String("lock", lock.Path()),
			)
			return srv.ListenAndServe(runCtx)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (defaults to paths.api_bind)")
	return cmd
}
