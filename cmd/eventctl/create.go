package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventhub/internal/client"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		date, _ := cmd.Flags().GetString("date")
		domainFlag, _ := cmd.Flags().GetString("domain")

		event, err := api.CreateEvent(context.Background(), &client.CreateEventRequest{
			Name:        name,
			Description: description,
			Date:        date,
			Domain:      domainFlag,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(event)
		}
		fmt.Printf("Created event %s (%s) on %s\n", event.Name, event.ID, event.Date.Format("2006-01-02"))
		return nil
	},
}

func init() {
	createCmd.Flags().String("name", "", "event name (required)")
	createCmd.Flags().String("description", "", "event description (required)")
	createCmd.Flags().String("date", "", "event date, ISO-8601 or YYYY-MM-DD (required)")
	createCmd.Flags().String("domain", "", "event domain: Tech, Non-Tech, Cultural, Sports (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("date")
	_ = createCmd.MarkFlagRequired("domain")
}
