// Package export copies every dashboard and datasource from a Grafana
// server into the local data directory, one pretty-printed JSON file per
// object. File names derive solely from server-assigned identifiers.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/grafana"
	"github.com/rfrancotechnologies/egrafana/internal/logging"
	"github.com/rfrancotechnologies/egrafana/internal/storage"
)

// Exporter fetches objects through the API client and persists them.
type Exporter struct {
	client   *grafana.Client
	settings *config.Settings
}

// Result contains counts of what a run wrote.
type Result struct {
	Dashboards  int
	Datasources int
}

// New returns an Exporter writing under settings.DataDir.
func New(client *grafana.Client, settings *config.Settings) *Exporter {
	return &Exporter{client: client, settings: settings}
}

// Run exports dashboards first, then datasources. The first error aborts
// the run; files already written are left in place.
func (e *Exporter) Run() (*Result, error) {
	res := &Result{}
	if err := e.exportDashboards(res); err != nil {
		return nil, err
	}
	if err := e.exportDatasources(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Exporter) exportDashboards(res *Result) error {
	refs, err := e.client.ListDashboards()
	if err != nil {
		return fmt.Errorf("failed to list dashboards: %w", err)
	}

	seen := make(map[string]string, len(refs))
	for _, ref := range refs {
		doc, err := e.client.GetDashboard(ref.URI)
		if err != nil {
			return fmt.Errorf("failed to fetch dashboard %s: %w", ref.URI, err)
		}

		// The search URI contains a path separator (e.g. "db/my-dash");
		// flatten it so every dashboard lands in the same directory.
		name := strings.ReplaceAll(ref.URI, "/", "_")
		path := filepath.Join(e.settings.DashboardsDir(), name+".json")
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("dashboards %q and %q both map to %s", prev, ref.URI, path)
		}
		seen[path] = ref.URI

		if err := storage.WriteJSONFile(path, doc); err != nil {
			return err
		}
		logging.Logger.Info("exported dashboard", "uri", ref.URI, "path", path)
		res.Dashboards++
	}
	return nil
}

func (e *Exporter) exportDatasources(res *Result) error {
	refs, err := e.client.ListDatasources()
	if err != nil {
		return fmt.Errorf("failed to list datasources: %w", err)
	}

	seen := make(map[string]string, len(refs))
	for _, ref := range refs {
		doc, err := e.client.GetDatasource(ref.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch datasource %q: %w", ref.Name, err)
		}

		name := storage.SanitizeFilename(ref.Name)
		if name == "" {
			name = fmt.Sprintf("%d", ref.ID)
		}
		path := filepath.Join(e.settings.DatasourcesDir(), name+".json")
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("datasources %q and %q both map to %s", prev, ref.Name, path)
		}
		seen[path] = ref.Name

		// Wrap the body so the importer can tell the file kinds apart.
		wrapped := grafana.Document{
			"meta":       map[string]any{"type": "datasource"},
			"datasource": doc,
		}
		if err := storage.WriteJSONFile(path, wrapped); err != nil {
			return err
		}
		logging.Logger.Info("exported datasource", "name", ref.Name, "path", path)
		res.Datasources++
	}
	return nil
}
