package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/export"
	"github.com/rfrancotechnologies/egrafana/internal/grafana"
)

// runExport writes every dashboard and datasource under the data directory.
func runExport(cmd *cobra.Command, settings *config.Settings) error {
	client := grafana.NewClient(settings)

	result, err := export.New(client, settings).Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d dashboards and %d datasources to %s\n",
		result.Dashboards, result.Datasources, settings.DataDir)
	return nil
}
