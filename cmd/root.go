package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/config"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/pipeline"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "salesmap",
	Short: "Sales method dominance choropleth generator",
	Long:  "Cleans product sales records, derives the dominant sales method per US state, and writes an interactive choropleth map.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := pipeline.Run(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
