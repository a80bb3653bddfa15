package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose     bool
	seedFlag    uint64
	entropyFlag string
	noColor     bool

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Tool for shuffling, dealing and managing decks of playing cards",
	Long: `Deckhand is a command-line tool for working with decks of playing cards.
It builds decks from presets or deck definition files, shuffles and deals them,
and runs scripted sequences of draws, discards and shuffles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed for reproducible shuffles (0 uses the config or a random seed)")
	RootCmd.PersistentFlags().StringVar(&entropyFlag, "entropy", "", "Read shuffle randomness from this file or device")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}
