package cmd

import "github.com/spf13/cobra"

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

func (c *command) initVersionCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(Version)
		},
	})
}
