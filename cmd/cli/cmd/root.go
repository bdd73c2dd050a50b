package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	chainparser "github.com/refchain-analysis/internal/parser/chain"
	"github.com/refchain-analysis/internal/reporter"
	"github.com/refchain-analysis/pkg/errors"
	"github.com/refchain-analysis/pkg/utils"
	"github.com/refchain-analysis/pkg/writer"
)

var (
	// Global flags
	verbose bool
	logger  utils.Logger
)

const exampleChain = `IVShopItemTemplate:000000029E8DD9C0[true]._nameComp.IVTextQualityComponent:000000029E8D6300[false].__cppinst = WBP_MyWidget_C`

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "refchain <reference_chain> [<chain2> ...]",
	Short: "Parse and analyze memory-leak reference chains",
	Long: `refchain parses textual reference chain notation captured by the Lua/C++
memory-leak detector, identifies nodes that were never released, and prints a
JSON report with a tree visualization and per-leak priorities.

A single chain argument produces a single-chain report; multiple arguments
produce a consolidated report with distinct leaked classes across all chains.
Logs go to stderr; stdout carries only the JSON report.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewStderrLogger(logLevel)
	},
	RunE: runAnalyze,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = utils.NewStderrLogger(utils.LevelInfo)
		}
		logger.Error("%s", errors.GetErrorMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	binName := BinName()
	rootCmd.Example = `  # Analyze a single reference chain
  ` + binName + ` "` + exampleChain + `"

  # Consolidate several chains into one report
  ` + binName + ` "A:01[true]._f.B:02[false]" "C:03[false]"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Usage and a worked example go to stdout, per the tool contract.
		_ = cmd.Help()
		return errors.New(errors.CodeInvalidInput, "at least one reference chain argument is required")
	}

	ctx := context.Background()
	parser := chainparser.NewParser(nil)

	chains, err := parser.ParseAll(ctx, args)
	if err != nil {
		return errors.Wrap(errors.CodeParseError, "failed to parse chains", err)
	}
	for _, c := range chains {
		logger.Debug("parsed chain: %d nodes, annotation=%q", c.Len(), c.CPPInstance)
		if !chainparser.IsChainFormat(c.Raw) {
			logger.Warn("no node segments recognized in %q", c.Raw)
		}
	}

	rep := reporter.New(logger, Version)

	var report interface{}
	if len(chains) == 1 {
		report = rep.BuildChainReport(chains[0])
	} else {
		report = rep.BuildAggregateReport(chains)
	}

	w := writer.NewPrettyJSONWriter[interface{}]()
	if err := w.Write(report, cmd.OutOrStdout()); err != nil {
		return err
	}

	return nil
}

// GetLogger returns the configured logger
func GetLogger() utils.Logger {
	return logger
}

// BinName returns the base name of the current executable
func BinName() string {
	return filepath.Base(os.Args[0])
}
