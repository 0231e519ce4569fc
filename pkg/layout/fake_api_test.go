package layout

import (
	"context"

	"github.com/changesci/changes-web/pkg/models"
)

type fakeAPI struct {
	session    *models.Session
	projects   []models.ProjectSummary
	message    *models.AdminMessage
	builds     []models.BuildSummary
	sessionErr error
	projectErr error
	messageErr error
	// block, when set, makes GetAdminMessage wait for cancellation
	block bool
}

var _ models.ChangesAPI = &fakeAPI{}

func (f *fakeAPI) GetSession(_ context.Context) (*models.Session, error) {
	return f.session, f.sessionErr
}

func (f *fakeAPI) ListProjects(_ context.Context) ([]models.ProjectSummary, error) {
	return f.projects, f.projectErr
}

func (f *fakeAPI) GetAdminMessage(ctx context.Context) (*models.AdminMessage, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.message, f.messageErr
}

func (f *fakeAPI) ListBuilds(_ context.Context, _ string, _ models.ProjectSearchQuery) ([]models.BuildSummary, error) {
	return f.builds, nil
}
