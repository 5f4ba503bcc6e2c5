// Package importer recreates objects on a Grafana server from the JSON
// files a previous export wrote. Files are classified by their meta.type
// field; the referenced datasources must already exist on the target server
// under the same identifiers, nothing is rewritten.
package importer

import (
	"errors"
	"fmt"

	"github.com/rfrancotechnologies/egrafana/internal/config"
	"github.com/rfrancotechnologies/egrafana/internal/grafana"
	"github.com/rfrancotechnologies/egrafana/internal/logging"
	"github.com/rfrancotechnologies/egrafana/internal/storage"
)

// Importer submits local JSON files through the API client.
type Importer struct {
	client   *grafana.Client
	settings *config.Settings
	override bool
}

// Result contains counts of what a run submitted.
type Result struct {
	Imported int
	Skipped  int
}

// New returns an Importer reading from settings.DataDir. With override set,
// objects that already exist on the server are skipped with a warning
// instead of aborting the run; actual overwriting is not implemented.
func New(client *grafana.Client, settings *config.Settings, override bool) *Importer {
	return &Importer{client: client, settings: settings, override: override}
}

// Run walks the data directory and imports every JSON file found. The
// first error aborts the run.
func (i *Importer) Run() (*Result, error) {
	files, err := storage.ListJSONFiles(i.settings.DataDir)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, path := range files {
		if err := i.importFile(path); err != nil {
			var conflict *grafana.ConflictError
			if i.override && errors.As(err, &conflict) {
				logging.Logger.Warn("object already exists, overriding is not implemented yet", "path", path)
				res.Skipped++
				continue
			}
			return nil, fmt.Errorf("file %s could not be imported: %w", path, err)
		}
		res.Imported++
	}
	return res, nil
}

func (i *Importer) importFile(path string) error {
	logging.Logger.Info("processing file", "path", path)

	data, err := storage.ReadJSONFile(path)
	if err != nil {
		return err
	}

	meta, _ := data["meta"].(map[string]any)
	kind, _ := meta["type"].(string)
	logging.Logger.Debug("classified file", "path", path, "type", kind)

	switch kind {
	case "datasource":
		ds, ok := data["datasource"].(map[string]any)
		if !ok {
			return fmt.Errorf("datasource file has no datasource document")
		}
		return i.client.CreateDatasource(ds)
	case "db":
		dashboard, ok := data["dashboard"].(map[string]any)
		if !ok {
			return fmt.Errorf("dashboard file has no dashboard document")
		}
		// The target server assigns fresh identifiers on create.
		dashboard["id"] = nil
		dashboard["uid"] = nil
		delete(data, "meta")
		return i.client.CreateDashboard(data)
	default:
		return fmt.Errorf("unsupported type: %q", kind)
	}
}
