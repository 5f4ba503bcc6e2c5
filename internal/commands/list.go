package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/grafana"
)

// runList prints one line per dashboard, datasource and alert notification
// channel found on the server.
func runList(cmd *cobra.Command, settings *config.Settings) error {
	client := grafana.NewClient(settings)
	out := cmd.OutOrStdout()

	dashboards, err := client.ListDashboards()
	if err != nil {
		return err
	}
	for _, d := range dashboards {
		fmt.Fprintf(out, "dashboard: %s - %s\n", d.Type, d.Title)
	}

	datasources, err := client.ListDatasources()
	if err != nil {
		return err
	}
	for _, ds := range datasources {
		fmt.Fprintf(out, "datasource: %s - %s\n", ds.Type, ds.Name)
	}

	alerts, err := client.ListAlertNotifications()
	if err != nil {
		return err
	}
	for _, a := range alerts {
		fmt.Fprintf(out, "alert: %s - %s\n", a.Type, a.Name)
	}

	return nil
}
