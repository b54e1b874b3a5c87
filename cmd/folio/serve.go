package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

var (
	addrFlag   string
	staticFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := folio.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if addrFlag != "" {
			cfg.Addr = addrFlag
		}

		app, err := folio.New(cfg, folio.WithStaticDir(staticFlag))
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Start(context.Background())
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides ADDR)")
	serveCmd.Flags().StringVar(&staticFlag, "static", "public", "directory served under /public")
	rootCmd.AddCommand(serveCmd)
}
