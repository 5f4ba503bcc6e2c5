package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/grafana"
	"github.com/rfrancotechnologies/egrafana/internal/importer"
)

// runImport submits every JSON file under the data directory to the server.
func runImport(cmd *cobra.Command, settings *config.Settings, override bool) error {
	client := grafana.NewClient(settings)

	result, err := importer.New(client, settings, override).Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d objects (%d skipped) from %s\n",
		result.Imported, result.Skipped, settings.DataDir)
	return nil
}
