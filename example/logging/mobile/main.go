package main

import (
	"github.com/joeydtaylor/logkit/pkg/mobile"
)

func main() {
	// Outside React Native or Expo the sink prints an advisory first.
	sink := mobile.NewMobileSink(mobile.MobileSinkWithLevel(mobile.WarnLevel))
	defer sink.Close()

	sink.Debug("not shown")
	sink.Info("not shown either")
	sink.Warn("low battery")
	sink.Error("sync failed")
	sink.ClearLogs()

	quiet := mobile.NewMobileSink(mobile.MobileSinkWithConsoleLogging(false))
	quiet.Error("never printed")
}
