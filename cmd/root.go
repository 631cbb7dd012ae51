package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/internal/config"
	"github.com/axellelanca/linkbundles/internal/logger"
)

// Cfg holds the configuration loaded before any sub-command runs.
var Cfg *config.Config

// RootCmd is the base command for the CLI application.
// Sub-commands register themselves from their own init() functions.
var RootCmd = &cobra.Command{
	Use:   "linkbundles",
	Short: "Publish bundles of links under short vanity URLs",
	Long: `linkbundles serves an HTTP API to create, read, update and delete
link bundles, and offers a few maintenance commands for the same store.`,
}

// Execute is the main entry point for the Cobra application.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the configuration and sets up logging.
func initConfig() {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	logger.Setup(Cfg.Log.Level, Cfg.Log.Format, os.Stderr)
}
