package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riftline/procchain/config"
	"github.com/riftline/procchain/logging"
)

var (
	cfgFile string
	devLog  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chainctl",
	Short: "Build incident process chains from EDR alerts and logs",
	Long: `chainctl reconstructs an IncidentProcessChain from an EDR's alerts and
logs: electing the representative trace, building the provenance graph,
pruning it to size, and bridging in the network-side story.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.New(devLog)
		if err != nil {
			return err
		}
		logger = l

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&devLog, "dev", false, "use development (console) logging instead of JSON")

	rootCmd.AddCommand(chainCmd)
}
