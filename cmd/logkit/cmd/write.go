package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/logkit/pkg/builder"
	"github.com/spf13/cobra"
)

func (c *command) initWriteCmd() {
	cmd := &cobra.Command{
		Use:   "write <message...>",
		Short: "Append one line to the log files",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.config.GetString(optionNameLevel)
			severity, ok := builder.ParseSeverity(name)
			if !ok {
				return fmt.Errorf("level %q: %w", name, builder.ErrUnknownLevel)
			}
			fields, err := parseFields(c.config.GetStringSlice(optionNameField))
			if err != nil {
				return err
			}
			cfg, err := c.fileConfig()
			if err != nil {
				return err
			}

			reporter := &reporter{w: cmd.ErrOrStderr()}
			sink, err := builder.NewFileSink(cfg, builder.FileSinkWithDetector(c.detector), builder.FileSinkWithReporter(reporter))
			if err != nil {
				return err
			}

			logger := builder.NewLogger(
				builder.LoggerWithThreshold(builder.NewThreshold(builder.ThresholdWithLevel(builder.DebugLevel))),
				builder.LoggerWithDetector(c.detector),
			)
			if err := logger.AttachSink("file", sink); err != nil {
				sink.Close()
				return err
			}
			if c.config.GetBool(optionNameEcho) {
				echo := builder.NewConsoleSink(
					builder.ConsoleSinkWithThreshold(logger.Threshold()),
					builder.ConsoleSinkWithOutput(cmd.OutOrStdout()),
					builder.ConsoleSinkWithErrorOutput(cmd.ErrOrStderr()),
				)
				if err := logger.AttachSink("echo", echo); err != nil {
					_ = logger.Close()
					return err
				}
			}

			logger.Log(severity, strings.Join(args, " "), fields...)
			if err := logger.Close(); err != nil {
				return err
			}
			if reporter.failed() {
				return errors.New("file logging failed")
			}
			return nil
		},
	}
	c.setFileFlags(cmd)
	cmd.Flags().String(optionNameLevel, "info", "message level: error, warn, info, debug")
	cmd.Flags().StringSlice(optionNameField, nil, "structured field as key=value, can be repeated")
	cmd.Flags().Bool(optionNameClearOnInit, false, "truncate both files before writing")
	cmd.Flags().Bool(optionNameEcho, false, "also print the line to the console")

	c.root.AddCommand(cmd)
}

func parseFields(raw []string) ([]interface{}, error) {
	fields := make([]interface{}, 0, 2*len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("field %q: expected key=value", kv)
		}
		fields = append(fields, key, value)
	}
	return fields, nil
}
