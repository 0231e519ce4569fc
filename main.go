package main

import (
	cmd "github.com/changesci/changes-web/cmd/changes"
	"github.com/changesci/changes-web/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting changes-web")
	cmd.Execute()
}
