package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeydtaylor/logkit/pkg/builder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameDir         = "dir"
	optionNameLevel       = "level"
	optionNameInfoFile    = "info-file"
	optionNameErrorFile   = "error-file"
	optionNameMaxFileSize = "max-file-size"
	optionNameMaxFiles    = "max-files"
	optionNameRotate      = "rotate"
	optionNameCompression = "compression"
	optionNameClearOnInit = "clear-on-init"
	optionNameField       = "field"
	optionNameEcho        = "echo"
	optionNameHost        = "host"
)

const configName = ".logkit"

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root     *cobra.Command
	config   *viper.Viper
	detector *builder.Detector
	cfgFile  string
	homeDir  string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "logkit",
			Short:         "Inspect and write logkit log files",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}
	if c.detector == nil {
		c.detector = builder.NewDetector()
	}

	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()
	c.initPlatformCmd()
	c.initWriteCmd()
	c.initClearCmd()
	c.initCatCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.logkit.yaml)")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	if c.cfgFile != "" {
		config.SetConfigFile(c.cfgFile)
	} else {
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	config.SetEnvPrefix("logkit")
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func (c *command) setFileFlags(cmd *cobra.Command) {
	cmd.Flags().String(optionNameDir, filepath.Join(".", "logs"), "log directory")
	cmd.Flags().String(optionNameInfoFile, "", "info log file name (default info.log)")
	cmd.Flags().String(optionNameErrorFile, "", "error log file name (default error.log)")
	cmd.Flags().Int64(optionNameMaxFileSize, 0, "size in bytes that triggers rotation (default 10MiB)")
	cmd.Flags().Int(optionNameMaxFiles, 0, "files kept per stream including the active one (default 5)")
	cmd.Flags().Bool(optionNameRotate, false, "roll files that exceed max-file-size")
	cmd.Flags().String(optionNameCompression, "none", "archive compression: none, gzip, snappy, zstd, brotli, lz4")
}

// fileConfig resolves the file flags through viper so LOGKIT_* variables and
// the config file apply when a flag is not set.
func (c *command) fileConfig() (builder.FileSinkConfig, error) {
	compression, err := builder.ParseCompression(c.config.GetString(optionNameCompression))
	if err != nil {
		return builder.FileSinkConfig{}, err
	}
	return builder.FileSinkConfig{
		LogDir:       c.config.GetString(optionNameDir),
		InfoLogFile:  c.config.GetString(optionNameInfoFile),
		ErrorLogFile: c.config.GetString(optionNameErrorFile),
		MaxFileSize:  c.config.GetInt64(optionNameMaxFileSize),
		MaxFiles:     c.config.GetInt(optionNameMaxFiles),
		Rotate:       c.config.GetBool(optionNameRotate),
		ClearOnInit:  c.config.GetBool(optionNameClearOnInit),
		Compression:  compression,
	}, nil
}
