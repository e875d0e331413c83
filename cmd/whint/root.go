package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whint-io/whint/vm"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "whint [file]",
		Short:         "Run programs written in the whitespace language",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			processGlobalFlags(v, cmd.OutOrStdout())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			return runFile(cmd, v, args[0])
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.whint.yaml)")
	pf.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.Bool("no-color", false, "Disable colored output")
	v.BindPFlags(pf)

	f := cmd.Flags()
	f.Int("heap-size", vm.DefaultHeapSize, "Number of heap cells")
	f.Bool("trace", false, "Log every executed instruction")
	v.BindPFlags(f)

	cmd.AddCommand(newDisCmd(v), newOpsCmd(v), newVersionCmd())
	return cmd
}

// initConfig layers the config file and WHINT_* environment variables
// underneath the command line flags.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("whint")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(".whint")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}
