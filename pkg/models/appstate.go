package models

import (
	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/pkg/observability"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	API           ChangesAPI
	Observability observability.Service
	Config        *config.Config
}
