package models

// Enum is the {id, name} pair the Changes API uses for statuses and results
type Enum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BuildSummary is one entry of GET /api/0/projects/{slug}/builds/
type BuildSummary struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	Target string `json:"target,omitempty"`
	Status *Enum  `json:"status,omitempty"`
	Result *Enum  `json:"result,omitempty"`
	// Duration is in milliseconds
	Duration    int64      `json:"duration"`
	DateCreated *Timestamp `json:"dateCreated,omitempty"`
}
