package models

import (
	"context"
)

// ChangesAPI is the subset of the Changes REST API the dashboard reads from
type ChangesAPI interface {
	GetSession(ctx context.Context) (*Session, error)
	ListProjects(ctx context.Context) ([]ProjectSummary, error)
	GetAdminMessage(ctx context.Context) (*AdminMessage, error)
	ListBuilds(ctx context.Context, projectSlug string, query ProjectSearchQuery) ([]BuildSummary, error)
}
