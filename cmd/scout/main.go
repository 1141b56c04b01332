package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scoutclear/scout/internal/logging"
)

var logger *logging.Logger

func initLogger() {
	logConfig := logging.DefaultConfig("~/.scout/cli.log")
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logConfig.Level = level
	}

	if err := logConfig.Validate(); err != nil {
		fmt.Printf("Invalid logging configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Configure(logConfig)
	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "SCOUT CLI - contact form and site tooling",
	Long: `SCOUT CLI drives the website contact form against a running API and prints
the links and brand details the static site is built from.`,
	SilenceUsage: true,
}

func init() {
	initLogger()

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(mailtoCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("brand-file", "", "TOML file overriding the built-in brand configuration")

	initSubmitFlags(submitCmd)
	initSubmitFlags(mailtoCmd)
	submitCmd.Flags().String("endpoint", "http://localhost:8080/api/contact", "Contact endpoint URL")
	versionCmd.Flags().String("server", "", "API base URL to compare versions with")

	logger.Debug("CLI commands and flags initialized")
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
