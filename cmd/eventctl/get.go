package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventhub/internal/client"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := api.GetEvent(context.Background(), args[0])
		if err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("event %s not found", args[0])
			}
			return err
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(event)
		}
		fmt.Printf("ID:          %s\n", event.ID)
		fmt.Printf("Name:        %s\n", event.Name)
		fmt.Printf("Date:        %s\n", event.Date.Format("2006-01-02 15:04"))
		fmt.Printf("Domain:      %s\n", event.Domain)
		fmt.Printf("Description: %s\n", event.Description)
		return nil
	},
}
