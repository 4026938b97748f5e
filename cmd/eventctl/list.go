package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eventhub/internal/browse"
	"eventhub/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, optionally refined by domain and search term",
	RunE: func(cmd *cobra.Command, args []string) error {
		domainFlag, _ := cmd.Flags().GetString("domain")
		search, _ := cmd.Flags().GetString("search")

		if domainFlag != "" && domainFlag != browse.DomainAll {
			if _, err := domain.ParseDomain(domainFlag); err != nil {
				return fmt.Errorf("invalid domain %q (valid: %v)", domainFlag, domain.Domains())
			}
		}

		events, err := api.ListEvents(context.Background(), nil)
		if err != nil {
			return err
		}

		b := browse.NewBrowser()
		b.SetEvents(events)
		b.SetDomain(domainFlag)
		b.SetSearch(search)

		visible := b.Visible()
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(visible)
		}
		printEventTable(visible)
		if b.Count() == 0 {
			fmt.Println("No events found")
		}
		return nil
	},
}

func printEventTable(events []*domain.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDATE\tDOMAIN")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Date.Format("2006-01-02 15:04"), e.Domain)
	}
	w.Flush()
}

func init() {
	listCmd.Flags().StringP("domain", "d", browse.DomainAll, "filter by domain (Tech, Non-Tech, Cultural, Sports, All)")
	listCmd.Flags().StringP("search", "s", "", "case-insensitive search over name and description")
}
