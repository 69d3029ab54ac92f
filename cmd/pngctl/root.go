package main

import (
	"github.com/danmuck/pngctl/internal/logging"
	"github.com/danmuck/pngctl/internal/stash"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds global flags and the resolved config for one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfgPath string
	cfg     stash.ServiceConfig
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: stash.DefaultServiceConfig()}

	root := &cobra.Command{
		Use:   "pngctl",
		Short: "Hide and retrieve messages inside PNG files",
		Long: `pngctl works on PNG files at the chunk level. It can hide a message in a
custom chunk, print it back, remove chunks and list the chunks of a file.
Pixel data is never decoded.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/pngctl/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newRemoveCmd(a),
		newPrintCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.ConfigureRuntime()
	logging.SetVerbose(a.verbose)

	path, err := resolveConfigPath(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfgPath = path
	if path == "" {
		log.Debug().Msg("no config file, using defaults")
		return nil
	}

	cfg, err := loadServiceConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Str("path", path).Msg("config loaded")
	return nil
}

// service builds a stash service from the resolved config after
// applying per-command overrides.
func (a *app) service(override func(*stash.ServiceConfig)) (*stash.Service, error) {
	cfg := a.cfg
	if override != nil {
		override(&cfg)
	}
	return stash.NewServiceWithConfig(cfg)
}
