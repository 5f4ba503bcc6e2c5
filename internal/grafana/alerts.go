package grafana

// AlertNotificationRef is one entry from the alert notification channel
// list endpoint.
type AlertNotificationRef struct {
	ID   int64  `json:"id"`
	UID  string `json:"uid"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListAlertNotifications enumerates notification channels. They appear in
// list output only; export/import does not cover them.
func (c *Client) ListAlertNotifications() ([]AlertNotificationRef, error) {
	var refs []AlertNotificationRef
	if err := c.get("/api/alert-notifications", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
