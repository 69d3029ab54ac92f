package main

import (
	"fmt"

	"github.com/danmuck/pngctl/internal/config"
	"github.com/danmuck/pngctl/internal/logging"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pngctl config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented config template",
		Args:  cobra.MaximumNArgs(1),
		// the target file may not exist yet, so skip loading it
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logging.ConfigureRuntime()
			logging.SetVerbose(a.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			var err error
			if path == "" {
				path, err = config.DefaultPath()
			} else {
				path, err = config.ExpandPath(path)
			}
			if err != nil {
				return err
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote config template to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Render(config.FromService(a.cfg))
			if err != nil {
				return err
			}
			if a.cfgPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", a.cfgPath)
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
