package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// initLogger sets up apex with a stderr handler and a log level from
// the YD_LOG env variable, so diff output on stdout stays clean.
func initLogger() {
	level := strings.ToLower(os.Getenv("YD_LOG"))
	var apexLevel log.Level
	switch level {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "fatal":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}
	log.SetHandler(&stderrHandler{})
	log.SetLevel(apexLevel)
}

type stderrHandler struct{}

func (h *stderrHandler) HandleLog(e *log.Entry) error {
	_, err := fmt.Fprintf(os.Stderr, "%s: %s\n", e.Level, e.Message)
	return err
}
