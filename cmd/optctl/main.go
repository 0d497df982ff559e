package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/optctl/internal/config"
	"github.com/san-kum/optctl/internal/experiment"
	"github.com/san-kum/optctl/internal/store"
	"github.com/san-kum/optctl/internal/viz"
)

var (
	dataDir     string
	configFile  string
	dt          float64
	duration    float64
	integrator  string
	controller  string
	ctrlWeight  float64
	stateWeight float64
	uref        []float64
	saveRun     bool
	frameRate   int
	plotState   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "optctl",
		Short: "residual cost evaluation for controlled trajectories",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".optctl", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")

	evalCmd := &cobra.Command{
		Use:   "eval [system]",
		Short: "roll a system out and evaluate its residual costs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().Float64Var(&dt, "dt", 0, "timestep (overrides config)")
	evalCmd.Flags().Float64Var(&duration, "time", 0, "duration (overrides config)")
	evalCmd.Flags().StringVar(&integrator, "integrator", "", "euler or rk4")
	evalCmd.Flags().StringVar(&controller, "controller", "", "zero, constant or pid")
	evalCmd.Flags().Float64Var(&ctrlWeight, "control-weight", -1, "control deviation weight")
	evalCmd.Flags().Float64Var(&stateWeight, "state-weight", -1, "state deviation weight")
	evalCmd.Flags().Float64SliceVar(&uref, "uref", nil, "control reference")
	evalCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run under the data directory")
	evalCmd.Flags().IntVar(&plotState, "plot-state", -1, "also plot this state component")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "replay an evaluation with a live cost view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	rootCmd.AddCommand(evalCmd, liveCmd, listCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.System = args[0]
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if integrator != "" {
		cfg.Integrator = integrator
	}
	if controller != "" {
		cfg.Controller = controller
	}
	if ctrlWeight >= 0 {
		cfg.Costs.ControlWeight = ctrlWeight
	}
	if stateWeight >= 0 {
		cfg.Costs.StateWeight = stateWeight
	}
	if len(uref) > 0 {
		cfg.Costs.URef = uref
	}
	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	run, err := experiment.Build(cfg)
	if err != nil {
		return err
	}

	result, err := run.Execute(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "system\t%s\n", cfg.System)
	fmt.Fprintf(w, "controller\t%s\n", cfg.Controller)
	fmt.Fprintf(w, "nodes\t%d\n", len(result.Costs))
	fmt.Fprintf(w, "total cost\t%.6f\n", result.TotalCost)
	fmt.Fprintf(w, "terminal cost\t%.6f\n", result.Costs[len(result.Costs)-1])
	for _, m := range run.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", m.Name(), m.Value())
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "errors\t%d\n", len(result.Errors))
	}
	w.Flush()

	if plot := viz.CostPlot(result); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}
	if plotState >= 0 {
		if plot := viz.StatePlot(result, plotState); plot != "" {
			fmt.Println()
			fmt.Println(plot)
		}
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(cfg.System, cfg.Dt, cfg.Duration, cfg.Seed, cfg.Integrator, cfg.Controller, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", id)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	run, err := experiment.Build(cfg)
	if err != nil {
		return err
	}

	result, err := run.Execute(context.Background())
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(cfg.System, result, frameRate))
	_, err = p.Run()
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tsystem\tcontroller\ttotal cost\ttimestamp")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.6f\t%s\n",
			r.ID, r.System, r.Controller, r.TotalCost, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
