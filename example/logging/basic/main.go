package main

import (
	"fmt"

	"github.com/joeydtaylor/logkit/pkg/builder"
)

func main() {
	fmt.Printf("Running on %s (file logging available: %t)\n", builder.PlatformName(), builder.IsFileLoggingAvailable())

	sink := builder.NewConsoleSink()
	sink.Info("service starting")
	sink.Debug("hidden unless CONSOLE_LEVEL=debug")

	builder.SetThreshold(builder.DebugLevel)
	sink.Debug("visible after SetThreshold")

	if err := builder.SetThresholdName("warn"); err != nil {
		fmt.Printf("Failed to set threshold: %v\n", err)
		return
	}
	sink.Info("suppressed at warn")
	sink.Warn("cache nearly full")
	sink.Error("upstream unavailable")
}
