package cmd

import (
	"fmt"

	"github.com/joeydtaylor/logkit/pkg/builder"
	"github.com/spf13/cobra"
)

func (c *command) initPlatformCmd() {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Print the detected runtime classification",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := c.detector.Detect()
			fmt.Fprintf(out, "platform: %s\n", c.detector.PlatformName())
			fmt.Fprintf(out, "server: %t\n", info.IsServer)
			fmt.Fprintf(out, "browser: %t\n", info.IsBrowser)
			fmt.Fprintf(out, "mobile-native: %t\n", info.IsMobileNative)
			fmt.Fprintf(out, "managed-mobile: %t\n", info.IsManagedMobile)
			fmt.Fprintf(out, "file-logging: %t\n", c.detector.IsFileLoggingAvailable())

			if !c.config.GetBool(optionNameHost) {
				return nil
			}
			host, err := builder.DescribeHost(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "hostname: %s\n", host.Hostname)
			fmt.Fprintf(out, "os: %s\n", host.OS)
			fmt.Fprintf(out, "distribution: %s %s\n", host.Platform, host.PlatformVersion)
			fmt.Fprintf(out, "kernel: %s %s\n", host.KernelVersion, host.KernelArch)
			fmt.Fprintf(out, "uptime: %ds\n", host.Uptime)
			return nil
		},
	}
	cmd.Flags().Bool(optionNameHost, false, "also describe the host")

	c.root.AddCommand(cmd)
}
