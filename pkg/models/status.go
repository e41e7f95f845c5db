package models

// Status is the response of the status endpoint.
type Status struct {
	Status StatusInfo   `json:"status"`
	Stats  *StatusStats `json:"stats,omitempty"`
}

// StatusInfo describes the API server and its SpigotMC crawler.
type StatusInfo struct {
	Server *ServerStatus `json:"server,omitempty"`
	Fetch  *FetchStatus  `json:"fetch,omitempty"`
}

// ServerStatus identifies the answering API server.
type ServerStatus struct {
	Name     string `json:"name,omitempty"`
	Mode     string `json:"mode,omitempty"`
	LastPing int64  `json:"lastPing,omitempty"`
}

// FetchStatus reports the progress of the crawler that feeds the catalog.
type FetchStatus struct {
	Start  int64          `json:"start,omitempty"`
	End    int64          `json:"end,omitempty"`
	Active bool           `json:"active,omitempty"`
	Page   *FetchProgress `json:"page,omitempty"`
}

// FetchProgress is the crawler's position in the resource list.
type FetchProgress struct {
	Amount int `json:"amount,omitempty"`
	Index  int `json:"index,omitempty"`
}

// StatusStats holds catalog counters.
type StatusStats struct {
	Resources        int `json:"resources,omitempty"`
	Authors          int `json:"authors,omitempty"`
	Categories       int `json:"categories,omitempty"`
	ResourceUpdates  int `json:"resourceUpdates,omitempty"`
	ResourceVersions int `json:"resourceVersions,omitempty"`
}

// WebhookStatus is the delivery status of a registered webhook.
type WebhookStatus struct {
	Status            int `json:"status"`
	FailedConnections int `json:"failedConnections"`
}

// ForVersionResult is the response of resources/for/{versions}.
type ForVersionResult struct {
	Check  []string   `json:"check,omitempty"`  // Versions that were checked
	Method string     `json:"method,omitempty"` // any or all
	Match  []Resource `json:"match,omitempty"`
}
