package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/logging"
)

// NewRootCmd builds the egrafana command:
//
//	egrafana <server-url> [list|export|import] [flags]
//
// The action defaults to list when omitted.
func NewRootCmd() *cobra.Command {
	var (
		bearer    string
		path      string
		override  bool
		verbosity int
	)

	cmd := &cobra.Command{
		Use:           "egrafana <server-url> [list|export|import]",
		Short:         "Importer/Exporter for Grafana data",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogger(verbosity)

			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("missing server URL")
			}

			settings, err := config.NewSettings(args[0], bearer, path)
			if err != nil {
				return err
			}

			action := "list"
			if len(args) == 2 {
				action = args[1]
			}
			logging.Logger.Debug("running action", "action", action, "server", settings.ServerURL)

			switch action {
			case "list":
				return runList(cmd, settings)
			case "export":
				return runExport(cmd, settings)
			case "import":
				return runImport(cmd, settings, override)
			default:
				_ = cmd.Usage()
				return fmt.Errorf("unknown action %q (expected list, export or import)", action)
			}
		},
	}

	cmd.Flags().StringVarP(&bearer, "bearer", "b", "", "Bearer token for the Authorization header")
	cmd.Flags().StringVarP(&path, "path", "p", "data", "Path to import/export")
	cmd.Flags().BoolVar(&override, "override", false, "Override if already exists (only for import)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}
