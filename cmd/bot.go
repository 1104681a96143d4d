package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"riskmentor/bot"
	"riskmentor/config"
	"riskmentor/knowledge"
	"riskmentor/learning"
	"riskmentor/llm/driver"
	"riskmentor/ops"
	"riskmentor/store"
)

func init() {
	BotCMD.Flags().AddFlagSet(config.FlagSet)
}

// BotCMD runs the telegram bot with its backing store, llm provider and
// optional ops server.
var BotCMD = cobra.Command{
	Use:  "bot",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var cfg *config.Config
		cfg, err = config.LoadAndValidate(cmd.Flags())
		if err != nil {
			slog.Error("configuration", "error", err)
			return err
		}

		if cfg.Debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
			slog.Debug("configuration loaded", "provider", cfg.Provider.Name, "db", cfg.Database.Path)
		} else {
			slog.SetLogLoggerLevel(slog.LevelInfo)
		}

		// observability
		otelShutdown, err := ops.InitObservability(ctx, "riskmentor-bot", cfg.Observe)
		if err != nil {
			slog.Error("failed init observability", "error", err)
			return err
		}
		defer func() {
			err = errors.Join(err, otelShutdown(context.Background()))
		}()

		// storage
		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			slog.Error("failed open store", "error", err)
			return err
		}
		defer db.Close()

		if err := learning.Seed(ctx, db); err != nil {
			slog.Error("failed seed courses", "error", err)
			return err
		}

		// llm backend
		provider, err := driver.New(ctx, cfg.Provider)
		if err != nil {
			slog.Error("failed to create llm provider", "error", err)
			return err
		}

		kb, err := knowledge.Load()
		if err != nil {
			slog.Error("failed load knowledge base", "error", err)
			return err
		}

		// ops server
		if cfg.Ops.Enable {
			srv := ops.NewServer(cfg.Ops, db)
			go func() {
				if err := srv.Start(ctx); err != nil {
					slog.Error("ops server", "error", err)
				}
			}()
		}

		return bot.RunBot(ctx, cfg, bot.Deps{
			Store:     db,
			Provider:  provider,
			Knowledge: kb,
		})
	},
}
