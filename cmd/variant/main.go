// variant - inspect tagged cells, records and dense-ID domains
//
// Usage:
//
//	variant inspect int:42 bool:true str:x    Load literals into an AnyArray and print it
//	variant record long:1 str:a double:2.5    Write literals into a record and read them back
//	variant domain short -- -1 0 null          Encode values through a named domain
//	variant domain --decode byte 7 256         Decode IDs through a named domain
//	variant version                            Print version info
//
// Literals are kind:value pairs. Kinds: bool, byte, char, short, int, long,
// float, double, str, dur, null and empty.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Neumenon/variant/internal/config"
	"github.com/Neumenon/variant/internal/logging"
)

const version = "0.1.0"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:               "variant",
		Short:             "Inspect tagged cells, records and dense-ID domains",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newInspectCmd(a),
		newRecordCmd(a),
		newDomainCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides the config file)")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	logger.Debug("config loaded", zap.String("path", a.configPath), zap.String("level", cfg.LogLevel))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "variant %s\n", version)
		},
	}
}
