package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riftline/procchain/engine"
	"github.com/riftline/procchain/query"
)

var fixturePath string

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Build an IncidentProcessChain from a JSON fixture and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFixture(fixturePath)
		if err != nil {
			return err
		}

		client := query.NewStaticClient(f.AlarmsByHost, f.LogsByKey, query.WithLogger(logger))

		chain, diags := engine.Build(cmd.Context(), engine.Input{
			Client:  client,
			Mapping: f.Mapping.toIpMappingRelation(),
			HostIPs: f.HostIPs,
		}, engine.WithLogger(logger), engine.WithMaxNodeCount(cfg.MaxNodeCount))

		for _, d := range diags {
			logger.Warn("engine diagnostic", zap.String("stage", d.Stage), zap.String("message", d.Message))
		}

		out, err := json.MarshalIndent(chain, "", "  ")
		if err != nil {
			return fmt.Errorf("chainctl: marshal chain: %w", err)
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	chainCmd.Flags().StringVar(&fixturePath, "fixture", "", "path to a JSON fixture (required)")
	_ = chainCmd.MarkFlagRequired("fixture")
}
