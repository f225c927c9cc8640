package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagScenario  scenario
	density       string
	cpuprofile    string
	scenariosPath string
	verbose       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the longest common substring strategies",
	Long: `bench times Matcher.Length on generated text pairs and prints one CSV line per run:

  variant,n,m,p,density,result,ns,peak_alloc,alloc

Variants: table, suffix_array, table_fold, suffix_array_fold.
With --d high a run of length --p is planted in both texts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBench,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagScenario.Variant, "variant", "", "Variant to benchmark")
	flags.IntVar(&flagScenario.N, "n", 0, "Length of the first text")
	flags.IntVar(&flagScenario.M, "m", 0, "Length of the second text")
	flags.IntVar(&flagScenario.P, "p", 0, "Length of the planted common run")
	flags.IntVar(&flagScenario.Runs, "runs", 3, "Number of runs for averaging")
	flags.Int64Var(&flagScenario.Seed, "seed", 0, "Seed of the first run")
	flags.StringVar(&density, "d", string(densityLow), "Density: low or high")
	flags.StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")
	flags.StringVar(&scenariosPath, "scenarios", "", "YAML file with scenarios, replaces the other flags")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every run")
}

func runBench(cmd *cobra.Command, args []string) error {
	scenarios, err := selectScenarios()
	if err != nil {
		return err
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, csvHeader)
	for _, s := range scenarios {
		logger.Info("running scenario",
			zap.String("variant", s.Variant),
			zap.Int("n", s.N),
			zap.Int("m", s.M),
			zap.Int("p", s.P),
			zap.String("density", string(s.Density)),
			zap.Int("runs", s.Runs),
		)
		if err := runScenario(out, logger, s); err != nil {
			logger.Error("scenario failed", zap.String("variant", s.Variant), zap.Error(err))
			return fmt.Errorf("scenario %s: %w", s.Variant, err)
		}
	}
	return nil
}

func selectScenarios() ([]scenario, error) {
	if scenariosPath != "" {
		return loadScenarios(scenariosPath)
	}
	s := flagScenario
	s.Density = densityType(density)
	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return []scenario{s}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
