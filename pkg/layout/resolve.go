package layout

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/changesci/changes-web/pkg/models"
)

var tracer = otel.Tracer("github.com/changesci/changes-web/pkg/layout")

// Resolved is the data the layout needs before any page renders
type Resolved struct {
	Session      *models.Session
	Projects     []models.ProjectSummary
	AdminMessage *models.AdminMessage
}

// Resolve fetches the session, the project list and the admin message
// concurrently. The first failure cancels the outstanding requests and is
// returned; no partial result is ever returned.
func Resolve(ctx context.Context, api models.ChangesAPI) (*Resolved, error) {
	ctx, span := tracer.Start(ctx, "layout.Resolve")
	defer span.End()

	var resolved Resolved
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		session, err := api.GetSession(gCtx)
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}
		resolved.Session = session
		return nil
	})
	g.Go(func() error {
		projects, err := api.ListProjects(gCtx)
		if err != nil {
			return fmt.Errorf("failed to resolve project list: %w", err)
		}
		resolved.Projects = projects
		return nil
	})
	g.Go(func() error {
		message, err := api.GetAdminMessage(gCtx)
		if err != nil {
			return fmt.Errorf("failed to resolve admin message: %w", err)
		}
		resolved.AdminMessage = message
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if resolved.Session == nil {
		resolved.Session = &models.Session{}
	}

	return &resolved, nil
}
