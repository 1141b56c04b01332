package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/version"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Show the brand configuration",
	Long:  `Display the brand configuration the site and the API use, in JSON format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBrand(cmd)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal brand: %w", err)
		}

		fmt.Println(string(data))
		fmt.Printf("Phone link: %s\n", brand.TelHref(b.Phone))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("SCOUT CLI %s\n", version.Info())

		serverURL, _ := cmd.Flags().GetString("server")
		if serverURL == "" {
			return nil
		}

		info, err := version.CheckServer(cmd.Context(), serverURL)
		if err != nil {
			return err
		}

		fmt.Printf("Server:   %s\n", info.Version)
		if version.IsUpdateAvailable(version.Version, info.Version) {
			fmt.Println("A newer release is deployed on the server.")
		}
		return nil
	},
}
