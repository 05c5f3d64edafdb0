package cmd

import (
	"errors"
	"fmt"

	"github.com/joeydtaylor/logkit/pkg/builder"
	"github.com/spf13/cobra"
)

func (c *command) initClearCmd() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the info and error files",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.fileConfig()
			if err != nil {
				return err
			}
			reporter := &reporter{w: cmd.ErrOrStderr()}
			sink, err := builder.NewFileSink(cfg, builder.FileSinkWithDetector(c.detector), builder.FileSinkWithReporter(reporter))
			if err != nil {
				return err
			}
			sink.ClearLogs()
			sink.Close()
			if reporter.failed() {
				return errors.New("clearing log files failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s and %s\n", sink.InfoPath(), sink.ErrorPath())
			return nil
		},
	}
	c.setFileFlags(cmd)

	c.root.AddCommand(cmd)
}
