package cmd

import (
	"io"

	"github.com/joeydtaylor/logkit/pkg/builder"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (c *command) initCatCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "cat <file>",
		Short: "Print a log file or rotated archive",
		Long:  "Print a log file or rotated archive. Archives ending in .gz, .sz, .zst, .br or .lz4 are decompressed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			r, err := builder.OpenLogFile(args[0])
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, r.Close())
			}()

			_, err = io.Copy(cmd.OutOrStdout(), r)
			return err
		},
	})
}
