package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Start() {
	cfg := newCfg("env")
	slog.SetLogLoggerLevel(slog.Level(cfg.GetInt("log.level")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serveHttpCmd := &cobra.Command{
		Use:   "serve-http",
		Short: "Run HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			runHttpServerCmd(ctx)
		},
	}

	menuAdminCmd := &cobra.Command{
		Use:   "menu-admin",
		Short: "Apply menu schema, reset derived tables, and reseed from the seed payload",
		Run: func(cmd *cobra.Command, args []string) {
			applySchema, _ := cmd.Flags().GetBool("apply-schema")
			reset, _ := cmd.Flags().GetBool("reset")
			seed, _ := cmd.Flags().GetBool("seed")
			runMenuAdminCmd(ctx, applySchema, reset, seed)
		},
	}
	menuAdminCmd.Flags().Bool("apply-schema", false, "apply sql/schema.sql before seeding")
	menuAdminCmd.Flags().Bool("reset", false, "truncate the derived menu tables first")
	menuAdminCmd.Flags().Bool("seed", true, "seed the menu tables from the seed payload")

	rootCmd := &cobra.Command{}
	rootCmd.AddCommand(serveHttpCmd, menuAdminCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
