package main

import (
	"os"

	"currency-exchange/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currency Exchange API
// @version 1.0
// @description Currency and exchange-rate lookup service with direct, inverse and cross-rate resolution.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application stopped with error")
		os.Exit(1)
	}
}
