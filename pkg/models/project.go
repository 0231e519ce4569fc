package models

import (
	"net/url"
)

// ProjectSummary is one entry of GET /api/0/projects/
type ProjectSummary struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"   validate:"required"`
	Name        string     `json:"name"   validate:"required"`
	Status      *Enum      `json:"status,omitempty"`
	DateCreated *Timestamp `json:"dateCreated,omitempty"`
}

// FindProject returns the project with the given slug, or nil
func FindProject(projects []ProjectSummary, slug string) *ProjectSummary {
	if slug == "" {
		return nil
	}
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i]
		}
	}
	return nil
}

const (
	SearchQueryParam  = "query"
	SearchSourceParam = "source"
)

// ProjectSearchQuery is the build search form state. A nil field is null and
// is left out of the query string.
type ProjectSearchQuery struct {
	Query  *string `json:"query"`
	Source *string `json:"source"`
}

// SearchQueryFromValues reads the search query from a URL query string
func SearchQueryFromValues(values url.Values) ProjectSearchQuery {
	var q ProjectSearchQuery
	if values.Has(SearchQueryParam) {
		v := values.Get(SearchQueryParam)
		q.Query = &v
	}
	if values.Has(SearchSourceParam) {
		v := values.Get(SearchSourceParam)
		q.Source = &v
	}
	return q
}

// Values encodes the non-null fields as URL query parameters
func (q ProjectSearchQuery) Values() url.Values {
	values := url.Values{}
	if q.Query != nil {
		values.Set(SearchQueryParam, *q.Query)
	}
	if q.Source != nil {
		values.Set(SearchSourceParam, *q.Source)
	}
	return values
}

// QueryText returns the query text, or "" when null
func (q ProjectSearchQuery) QueryText() string {
	if q.Query == nil {
		return ""
	}
	return *q.Query
}

// SourceText returns the source filter, or "" when null
func (q ProjectSearchQuery) SourceText() string {
	if q.Source == nil {
		return ""
	}
	return *q.Source
}
