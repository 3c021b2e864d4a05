package main

import (
	"github.com/pensionview/retirement-projection/internal/api"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/spf13/cobra"
)

const serveCacheSize = 1024

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := flagAddr
		if addr == "" {
			addr = settings.Server.Addr
		}
		engine := calculation.NewMemoizedProjectionEngine(serveCacheSize)
		engine.SetLogger(logger)
		return api.NewServer(addr, engine, logger).ListenAndServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}
