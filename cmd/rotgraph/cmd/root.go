// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rotgraph/config"
	"github.com/katalvlaran/rotgraph/dataset"
	"github.com/katalvlaran/rotgraph/recon"
	"github.com/katalvlaran/rotgraph/sequence"
	"github.com/katalvlaran/rotgraph/treecache"
)

// app carries state shared by sub-commands of one invocation.
type app struct {
	configPath string
	dataPath   string
	anchor     uint32
	time       float64
	logLevel   string

	cfg    config.Config
	logger *logrus.Logger
	cache  *treecache.Cache
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rotgraph",
		Short: "Query plate reconstruction trees",
		Long: `rotgraph loads total reconstruction sequences from a YAML dataset,
builds the reconstruction tree for an anchor plate at a reconstruction
time, and prints composed plate rotations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&a.dataPath, "data", "d", "", "path to the YAML rotation dataset (overrides config dataFile)")
	pf.Uint32VarP(&a.anchor, "anchor", "a", 0, "anchor plate id")
	pf.Float64VarP(&a.time, "time", "t", 0, "reconstruction time in Ma")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(
		newTreeCmd(a),
		newRotationCmd(a),
		newRelativeCmd(a),
		newEdgesCmd(a),
	)

	return root
}

// init merges config and flags, loads the dataset and prepares the cache.
func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = a.dataPath
	}
	if flags.Changed("anchor") {
		cfg.AnchorPlateID = a.anchor
	}
	if flags.Changed("time") {
		cfg.ReconstructionTime = a.time
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DataFile == "" {
		return fmt.Errorf("rotgraph: no dataset given (use --data or dataFile in config)")
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	seqs, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":      cfg.DataFile,
		"sequences": len(seqs),
	}).Debug("rotgraph: dataset loaded")

	cache, err := treecache.New(cfg.CacheSize,
		treecache.FromSequences(seqs, sequence.WithLogger(logger)),
		treecache.WithLogger(logger))
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.cache = cfg, logger, cache

	return nil
}

// tree returns the tree for the configured time and anchor.
func (a *app) tree() (*recon.Tree, error) {
	return a.cache.Get(a.cfg.ReconstructionTime, recon.PlateID(a.cfg.AnchorPlateID))
}

// parsePlate parses a plate id argument.
func parsePlate(s string) (recon.PlateID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("rotgraph: bad plate id %q: %w", s, err)
	}

	return recon.PlateID(v), nil
}
