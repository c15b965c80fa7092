package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/drblury/swaggerversioning/config"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&g.configPath, "config", "c", "", "path to a YAML configuration file")
	fs.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&g.logFormat, "log-format", "", "log format: text or json")
}

// load reads the configuration; explicitly set flags win over file and
// environment values.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}
	return cfg, cfg.Validate()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "weatherapi",
		Short:         "Versioned weather forecast API",
		Long:          "Serves the weather forecast API and one OpenAPI document per API version.",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newServeCmd(flags), newDocsCmd(flags))
	return rootCmd
}
