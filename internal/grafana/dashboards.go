package grafana

import (
	"fmt"
	"net/url"
	"strings"
)

// DashboardRef is one entry from the dashboard search endpoint. URI is the
// server-assigned identifier used to fetch the full body (e.g. "db/my-dash").
type DashboardRef struct {
	ID    int64  `json:"id"`
	UID   string `json:"uid"`
	URI   string `json:"uri"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// ListDashboards enumerates all dashboards via the search endpoint.
func (c *Client) ListDashboards() ([]DashboardRef, error) {
	var refs []DashboardRef
	if err := c.get("/api/search?query=&", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// GetDashboard fetches a full dashboard body by its search URI. The server
// wraps the dashboard in a {"meta": ..., "dashboard": ...} envelope.
func (c *Client) GetDashboard(uri string) (Document, error) {
	if uri == "" {
		return nil, fmt.Errorf("dashboard identifier must not be empty")
	}
	var doc Document
	if err := c.get("/api/dashboards/"+escapePath(uri), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateDashboard posts a dashboard envelope ({"dashboard": ...}) to the
// server, which assigns fresh identifiers.
func (c *Client) CreateDashboard(doc Document) error {
	return c.post("/api/dashboards/db", doc)
}

// escapePath escapes each segment of a slash-separated identifier.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
