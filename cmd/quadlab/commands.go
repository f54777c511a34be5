package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/quadlab/internal/analysis"
	"github.com/san-kum/quadlab/internal/automation"
	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/integrands"
	"github.com/san-kum/quadlab/internal/storage"
	"github.com/san-kum/quadlab/internal/sweep"
	"github.com/san-kum/quadlab/internal/viz"
)

// resolveConfig layers defaults, preset, config file and flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Integrand = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Integrand, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Integrand))
		}
		cfg = p.Resolve()
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			cfg.Integrand = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("steps") {
		cfg.Params.Steps = steps
	}
	if flags.Changed("samples") {
		cfg.Params.Samples = samples
	}
	if flags.Changed("seed") {
		cfg.Params.Seed = seed
	}
	if flags.Changed("rows") {
		cfg.Params.Rows = rows
	}
	if flags.Changed("atol") {
		cfg.Params.Atol = atol
	}
	if flags.Changed("rtol") {
		cfg.Params.Rtol = rtol
	}
	if flags.Changed("order") {
		cfg.Params.Order = order
	}
	if flags.Changed("max-k") {
		cfg.Params.MaxK = maxK
	}
	if flags.Changed("max-n") {
		cfg.Params.MaxN = maxN
	}
	if flags.Changed("a") != flags.Changed("b") {
		return nil, fmt.Errorf("--a and --b must be given together")
	}
	if flags.Changed("a") {
		cfg.Interval = &config.IntervalConfig{A: lower, B: upper}
	}
	if flags.Lookup("trace") != nil && flags.Changed("trace") {
		cfg.Trace = trace
	}
	if flags.Lookup("values") != nil && flags.Changed("values") {
		cfg.Sweep.Values = values
	}
	if flags.Lookup("parallel") != nil && flags.Changed("parallel") {
		cfg.Sweep.Parallel = parallel
	}

	logger.Debug().
		Str("integrand", cfg.Integrand).
		Str("method", cfg.Method).
		Interface("params", cfg.Params).
		Msg("resolved config")
	return cfg, nil
}

func runExperiment(ctx context.Context, reg *experiment.Registry, cfg *config.Config) (*experiment.Result, error) {
	exp, err := experiment.New(reg, cfg)
	if err != nil {
		return nil, err
	}
	for _, o := range observers(ctx) {
		exp.Integrator().AddObserver(o)
	}
	res, err := exp.Run(ctx)
	if err != nil {
		return nil, err
	}
	observeError(res)
	return res, nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := runExperiment(cmd.Context(), newRegistry(), cfg)
	if err != nil {
		return err
	}

	fmt.Println(viz.Metric("integrand", fmt.Sprintf("%s on [%g, %g]", res.Integrand, res.A, res.B)))
	fmt.Println(viz.Metric("method", fmt.Sprintf("%s (%s)", res.Method, res.Report.Method)))
	fmt.Println(viz.Metric("output", fmt.Sprintf("%.15g", res.Report.Output)))
	fmt.Println(viz.Metric("evals", fmt.Sprintf("%d", res.Report.Evals)))
	fmt.Println(viz.Metric("elapsed", fmt.Sprintf("%v", res.Report.Elapsed())))
	fmt.Println(viz.Metric("abs error", viz.FormatError(res.AbsErr)))

	if cfg.Trace && len(res.Report.Trace) > 0 {
		fmt.Println()
		fmt.Println(viz.TracePlot(res.Report.Trace, res.Report.Method+" trace"))
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	fmt.Println(viz.Metric("run id", runID))
	return nil
}

func selectedMethods(reg *experiment.Registry) []string {
	if len(methodList) > 0 {
		return methodList
	}
	return reg.Methods()
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	reg := newRegistry()
	table := make([]viz.Row, 0)
	for _, name := range selectedMethods(reg) {
		c := *cfg
		c.Method = name
		res, err := runExperiment(cmd.Context(), reg, &c)
		if err != nil {
			logger.Warn().Err(err).Str("method", name).Msg("method failed")
			continue
		}
		table = append(table, viz.RowFromResult(res))
	}

	fmt.Println(viz.Title.Render("compare: " + cfg.Integrand))
	fmt.Println(viz.RenderTable(table))
	return nil
}

func sweepParameter(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(cfg.Sweep.Values) == 0 {
		return fmt.Errorf("no sweep values: pass --values or use a preset with sweep values")
	}

	reg := newRegistry()
	primary, err := reg.Primary(cfg.Method)
	if err != nil {
		return err
	}

	sw, err := sweep.New(reg, cfg)
	if err != nil {
		return err
	}
	for _, o := range observers(cmd.Context()) {
		sw.AddObserver(o)
	}

	trials, err := sw.Run(cmd.Context(), cfg.Sweep.Values)
	if err != nil {
		return err
	}

	if err := writeSweepTable(os.Stdout, primary, trials); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.SweepPlot(trials, fmt.Sprintf("%s %s", cfg.Method, primary)))

	if best, ok := sweep.Best(trials); ok {
		fmt.Printf("\nbest: %s=%d (abs error %s)\n", primary, best.Param, viz.FormatError(best.AbsError))
	}
	if fit, err := analysis.ObservedOrder(trials); err == nil {
		fmt.Println(viz.Metric("observed order", fmt.Sprintf("%.3f (R2 %.4f over %d trials)", fit.Order, fit.R2, fit.Points)))
	} else {
		logger.Debug().Err(err).Msg("no convergence fit")
	}
	return nil
}

// writeSweepTable prints one row per trial. EFFICIENCY is abs error times
// evaluations.
func writeSweepTable(out io.Writer, primary string, trials []sweep.Trial) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tOUTPUT\tEVALS\tELAPSED\tABS ERROR\tEFFICIENCY\n", strings.ToUpper(primary))
	for _, tr := range trials {
		fmt.Fprintf(w, "%d\t%.15g\t%d\t%v\t%s\t%s\n",
			tr.Param,
			tr.Report.Output,
			tr.Report.Evals,
			tr.Report.Elapsed(),
			viz.FormatError(tr.AbsError),
			viz.FormatError(analysis.Efficiency(tr)),
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println(viz.Subtle.Render("no runs found"))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINTEGRAND\tMETHOD\tTIME\tOUTPUT\tEVALS\tABS ERROR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.10g\t%d\t%s\n",
			run.ID,
			run.Integrand,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			float64(run.Output),
			run.Evals,
			viz.FormatError(float64(run.AbsError)),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Println(viz.Metric("run", meta.ID))
	fmt.Println(viz.Metric("integrand", fmt.Sprintf("%s on [%g, %g]", meta.Integrand, meta.A, meta.B)))
	fmt.Println(viz.Metric("method", fmt.Sprintf("%s (%s)", meta.Method, meta.Strategy)))
	fmt.Println(viz.Metric("output", fmt.Sprintf("%.15g", float64(meta.Output))))
	fmt.Println(viz.Metric("evals", fmt.Sprintf("%d", meta.Evals)))
	fmt.Println(viz.Metric("elapsed", fmt.Sprintf("%v", meta.Elapsed)))
	fmt.Println(viz.Metric("abs error", viz.FormatError(float64(meta.AbsError))))

	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Println()
		fmt.Println(viz.Subtle.Render("no trace recorded (run with --trace)"))
		return nil
	}

	fmt.Println()
	fmt.Println(viz.TracePlot(points, meta.Strategy+" trace"))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.Export(args[0])
	if err != nil {
		return err
	}

	if outPath == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(outPath, data); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Println(viz.Subtle.Render("no presets for integrand: " + args[0]))
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func listIntegrands(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tEXACT")
	for _, name := range integrands.Names() {
		in, err := integrands.Get(name)
		if err != nil {
			return err
		}
		exact := "unknown"
		if in.HasExact() {
			exact = fmt.Sprintf("%.15g", in.Exact)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", in.Name, in.Description, exact)
	}
	return w.Flush()
}

func listMethods(cmd *cobra.Command, args []string) error {
	reg := newRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSWEEP PARAMETER")
	for _, name := range reg.Methods() {
		primary, err := reg.Primary(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, primary)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	reg := newRegistry()
	ctx := cmd.Context()
	run := func(name string) (*experiment.Result, error) {
		c := *cfg
		c.Method = name
		return runExperiment(ctx, reg, &c)
	}

	m := viz.NewCompareModel(cfg.Integrand, selectedMethods(reg), run)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := automation.NewRunner(newRegistry(), st)
	runner.SetLogger(logger)
	for _, o := range observers(cmd.Context()) {
		runner.AddObserver(o)
	}

	results, err := runner.Run(cmd.Context(), sc)
	for _, res := range results {
		observeError(res.Result)
	}

	table := make([]viz.Row, len(results))
	for i, res := range results {
		table[i] = viz.RowFromResult(res.Result)
	}
	fmt.Println(viz.Title.Render("scenario: " + sc.Name))
	fmt.Println(viz.RenderTable(table))
	for _, res := range results {
		if res.RunID != "" {
			fmt.Printf("saved %s/%s as %s\n", res.Integrand, res.Method, res.RunID)
		}
	}
	return err
}
