package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youpesh/schedsim/api"
	"github.com/youpesh/schedsim/config"
)

var (
	serveConfigPath string // Optional path to server config file
	servePort       int    // Port override; 0 keeps the configured value
)

// serveCmd starts the HTTP API exposing schedule and compare endpoints.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			logrus.Fatalf("unable to load server config: %v", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		logrus.Infof("serving schedsim API on port %d", cfg.Port)
		if err := api.Listen(cfg); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to server config file (default: ./config.yaml if present)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
