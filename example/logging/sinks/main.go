package main

import (
	"errors"
	"fmt"

	"github.com/joeydtaylor/logkit/pkg/builder"
)

func main() {
	logger := builder.NewLogger(
		builder.LoggerWithLevel("debug"),
		builder.LoggerWithFields(map[string]interface{}{"service": "orders"}),
	)
	defer logger.Close()

	// Add a file sink
	fileSinkConfig := builder.SinkConfig{
		Type: string(builder.SinkTypeFile),
		Config: map[string]interface{}{
			"dir":           "logs",
			"clear_on_init": true,
		},
	}
	if err := logger.AddSink("fileSink", fileSinkConfig); err != nil {
		if errors.Is(err, builder.ErrEnvironmentMismatch) {
			fmt.Println("File logging is not available on", builder.PlatformName())
		} else {
			fmt.Printf("Failed to add file sink: %v\n", err)
			return
		}
	}

	// Add a console sink
	consoleSinkConfig := builder.SinkConfig{Type: string(builder.SinkTypeConsole)}
	if err := logger.AddSink("consoleSink", consoleSinkConfig); err != nil {
		fmt.Printf("Failed to add console sink: %v\n", err)
		return
	}

	sinks, _ := logger.ListSinks()
	fmt.Println("Sinks:", sinks)

	logger.Info("order received", "id", 1042, "items", 3)
	logger.Debug("pricing rules loaded", "count", 12)
	logger.Warn("payment retry", "attempt", 2)
	logger.Error("payment failed", "err", errors.New("card declined"))

	if err := logger.Flush(); err != nil {
		fmt.Printf("Failed to flush: %v\n", err)
	}
}
