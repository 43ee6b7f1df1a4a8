// Package cli implements the spanviz command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries what PersistentPreRunE resolved for the subcommand.
type app struct {
	configFile string
	viper      *viper.Viper
	cfg        config.Config
	log        *zap.Logger
}

// NewRootCommand returns a fresh command tree. Tests build one per case.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "spanviz",
		Short: "Run minimum spanning tree algorithms step by step over generated lattice graphs",
		Long: `spanviz generates a random weighted graph on a shaped lattice and runs
one or more minimum spanning tree algorithms over it, paced step by step,
with live pause, resume, stop and speed control.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.Version = Version
	root.SetVersionTemplate("spanviz version {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./spanviz.yaml when present)")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("log-development", false, "human-readable console logs")

	root.AddCommand(newRunCommand(a), newGenerateCommand(a), newCatalogCommand())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads config, binds every flag the command defines to its config
// key, validates, and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	for _, key := range []string{
		config.KeySize, config.KeyShape, config.KeySpeed, config.KeyAlgorithm,
		config.KeySeed, config.KeyConnectionChance, config.KeyLogLevel, config.KeyLogDevelopment,
	} {
		if f := cmd.Flags().Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind %s: %w", key, err)
			}
		}
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	a.viper, a.cfg, a.log = v, cfg, log

	return nil
}

// addGraphFlags registers the generator flags shared by run and generate.
func addGraphFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().Int("size", d.Size, "lattice side length (2..60)")
	cmd.Flags().String("shape", d.Shape, "lattice mask: grid, heart, diamond, triangle, hexagon, star, circle, pentagon")
	cmd.Flags().Int64("seed", d.Seed, "generator seed (0 = time based)")
	cmd.Flags().Float64("connection-chance", d.ConnectionChance, "probability of keeping each lattice edge")
	cmd.Flags().String("weights", d.Weights, "edge weight profile: "+strings.Join(builder.WeightProfiles(), ", "))
}
