package main

import (
	log "github.com/sirupsen/logrus"

	"sentiment-model-cli/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.WithError(err).Fatal("Command failed")
	}
}
