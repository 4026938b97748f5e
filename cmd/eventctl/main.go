package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventhub/internal/client"
)

var (
	serverAddr string
	jsonOutput bool

	api client.CatalogClient
)

func defaultServer() string {
	if s := os.Getenv("EVENTHUB_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

var rootCmd = &cobra.Command{
	Use:   "eventctl",
	Short: "CLI client for the event catalog service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.NewHTTPClient(serverAddr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", defaultServer(), "catalog server base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
