package grafana

import "fmt"

// DatasourceRef is one entry from the datasource list endpoint.
type DatasourceRef struct {
	ID   int64  `json:"id"`
	UID  string `json:"uid"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListDatasources enumerates all datasources.
func (c *Client) ListDatasources() ([]DatasourceRef, error) {
	var refs []DatasourceRef
	if err := c.get("/api/datasources", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// GetDatasource fetches a full datasource body by numeric id. The server
// omits secret fields (passwords, tokens), so exported datasources do not
// round-trip their credentials.
func (c *Client) GetDatasource(id int64) (Document, error) {
	var doc Document
	if err := c.get(fmt.Sprintf("/api/datasources/%d", id), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateDatasource posts a datasource body to the server.
func (c *Client) CreateDatasource(doc Document) error {
	return c.post("/api/datasources", doc)
}
