package main

import (
	"flag"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/weaveworks/common/logging"

	"github.com/jorzel/booking-dashboards/dashboard"
)

var logLevel = flag.String("log.level", "debug", "the log level")

func TestMain(m *testing.M) {
	if err := logging.Setup(*logLevel); err != nil {
		log.Fatalf("error initializing logging: %v", err)
	}

	if err := dashboard.Init(); err != nil {
		log.Fatalf("error initializing dashboards: %v", err)
	}

	flag.Parse()
	os.Exit(m.Run())
}
