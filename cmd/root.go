package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "seoulgreet",
	Short: "MCP server for Korean greetings and Seoul crowd-density lookups",
	Long:  "seoulgreet is an MCP server exposing greeting tools and a crowd-density guide for well-known places in Seoul.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("seoulgreet v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}
