package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/quadlab/internal/config"
)

var (
	dataDir string
	// observability
	logLevel   string
	metricsOut string
	spans      bool
	// run configuration
	configFile string
	preset     string
	method     string
	steps      int
	samples    int
	seed       int64
	rows       int
	atol       float64
	rtol       float64
	order      int
	maxK       int
	maxN       int
	lower      float64
	upper      float64
	trace      bool
	noSave     bool
	// compare and sweep
	methodList []string
	values     []int
	parallel   int
	// export
	outPath string
)

// main registers commands and flags and executes the root command, exiting
// with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "quadlab",
		Short:             "numerical integration lab",
		SilenceUsage:      true,
		PersistentPreRunE: setupObservability,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return shutdownObservability(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".quadlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "write prometheus metrics to this textfile")
	rootCmd.PersistentFlags().BoolVar(&spans, "spans", false, "print opentelemetry spans to stderr")

	runCmd := &cobra.Command{
		Use:   "run [integrand]",
		Short: "integrate with one method",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIntegration,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "record and plot the method trace")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	compareCmd := &cobra.Command{
		Use:   "compare [integrand]",
		Short: "run several methods on one integrand",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareMethods,
	}
	addRunFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&methodList, "methods", nil, "methods to compare (default all)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [integrand]",
		Short: "measure error against a method parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepParameter,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().IntSliceVar(&values, "values", nil, "parameter values to sweep")
	sweepCmd.Flags().IntVar(&parallel, "parallel", 1, "concurrent trials")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run and plot its trace",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [integrand]",
		Short: "list available presets for an integrand",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	integrandsCmd := &cobra.Command{
		Use:   "integrands",
		Short: "list built-in integrands",
		RunE:  listIntegrands,
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list integration methods",
		RunE:  listMethods,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [integrand]",
		Short: "compare methods interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	addRunFlags(tuiCmd)
	tuiCmd.Flags().StringSliceVar(&methodList, "methods", nil, "methods to compare (default all)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of integrations from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(runCmd, compareCmd, sweepCmd, listCmd, showCmd, exportJSONCmd, presetsCmd, integrandsCmd, methodsCmd, tuiCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	d := config.DefaultParams()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVarP(&method, "method", "m", "simpson", "integration method")
	cmd.Flags().IntVar(&steps, "steps", d.Steps, "subintervals for fixed-step methods")
	cmd.Flags().IntVar(&samples, "samples", d.Samples, "monte carlo samples")
	cmd.Flags().Int64Var(&seed, "seed", d.Seed, "monte carlo seed")
	cmd.Flags().IntVar(&rows, "rows", d.Rows, "romberg rows")
	cmd.Flags().Float64Var(&atol, "atol", 0, "romberg absolute tolerance (0 disables)")
	cmd.Flags().Float64Var(&rtol, "rtol", 0, "romberg relative tolerance (0 disables)")
	cmd.Flags().IntVar(&order, "order", d.Order, "gauss-legendre order")
	cmd.Flags().IntVar(&maxK, "max-k", d.MaxK, "clenshaw-curtis terms")
	cmd.Flags().IntVar(&maxN, "max-n", d.MaxN, "clenshaw-curtis coefficient resolution")
	cmd.Flags().Float64Var(&lower, "a", 0, "lower bound override (with --b)")
	cmd.Flags().Float64Var(&upper, "b", 0, "upper bound override (with --a)")
}
