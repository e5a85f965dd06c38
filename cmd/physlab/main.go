package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/export"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/sandbox"
	"github.com/san-kum/physlab/internal/scene"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	timeScale  float64
	gravity    float64
	seed       int64
	sceneFile  string
	configFile string
	bodyIndex  int
	svgOut     string
	benchSteps int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "interactive rigid-body physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive sandbox when no command given.
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headless and record the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Float64Var(&timeScale, "timescale", config.DefaultTimeScale, "time scale multiplier")
	runCmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity magnitude")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&sceneFile, "scene-file", "", "load scene from JSON file instead of preset")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's height and per-step collisions",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata, optionally an SVG trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&svgOut, "svg", "", "write trajectory SVG to file")
	exportCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index for SVG trajectory")

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "measure stepping throughput for a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 10000, "steps to run")
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")

	sceneCmd := &cobra.Command{
		Use:   "scene [name]",
		Short: "print a preset scene as JSON, or list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showScene,
	}
	sceneCmd.Flags().StringVar(&outFile, "out", "", "write scene JSON to file")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, benchCmd, sceneCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScene(name string) (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.Load(sceneFile)
	}
	sc := config.GetPreset(name)
	if sc == nil {
		return nil, fmt.Errorf("unknown scene %q (presets: %v)", name, config.ListPresets())
	}
	return sc, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg := sandbox.Config{Dt: dt, Duration: duration, TimeScale: timeScale}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg.Dt = fileCfg.Dt
		cfg.Duration = fileCfg.Duration
		cfg.TimeScale = fileCfg.TimeScale
		gravity = fileCfg.Gravity
	}

	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("gravity") || configFile != "" {
		sc.Gravity = [3]float64{0, -gravity, 0}
	}

	w, err := sc.BuildWorld()
	if err != nil {
		return err
	}

	runner := sandbox.New()
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewCollisionRate())

	result, err := runner.Run(context.Background(), w, cfg)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(sc.Name, cfg.Dt, cfg.Duration, seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d bodies, %d steps, %d collisions\n",
		runID, w.BodyCount(), result.StepsTaken, result.TotalCollisions)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, value := range result.Metrics {
		fmt.Fprintf(tw, "%s\t%.4f\n", name, value)
	}
	return tw.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCENE\tBODIES\tSTEPS\tCOLLISIONS\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID, run.Scene, run.Bodies, run.Steps, run.Collisions,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	_, collisions, positions, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("run %s has no trajectory", args[0])
	}

	col := bodyIndex*3 + 1
	heights := make([]float64, 0, len(positions))
	for _, row := range positions {
		if col >= len(row) {
			return fmt.Errorf("body %d not present in run %s", bodyIndex, args[0])
		}
		heights = append(heights, row[col])
	}

	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("body %d height", bodyIndex))))

	perStep := make([]float64, len(collisions))
	for i, c := range collisions {
		perStep[i] = float64(c)
	}
	fmt.Println(asciigraph.Plot(perStep,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("collisions per step")))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if svgOut != "" {
		_, _, positions, err := store.LoadTrajectory(args[0])
		if err != nil {
			return err
		}
		points := make([]export.Point, 0, len(positions))
		for _, row := range positions {
			xc, yc := bodyIndex*3, bodyIndex*3+1
			if yc >= len(row) {
				return fmt.Errorf("body %d not present in run %s", bodyIndex, args[0])
			}
			points = append(points, export.Point{X: row[xc], Y: row[yc]})
		}
		svg := export.TrajectoryToSVG(points, 800, 600, "#00ff88")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchScene(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}
	w, err := sc.BuildWorld()
	if err != nil {
		return err
	}

	start := time.Now()
	collisions := 0
	for i := 0; i < benchSteps; i++ {
		w.Step(dt)
		collisions += w.CollisionCount()
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d bodies, %d steps in %v (%.0f steps/sec, %d collisions)\n",
		sc.Name, w.BodyCount(), benchSteps, elapsed,
		float64(benchSteps)/elapsed.Seconds(), collisions)
	return nil
}

func showScene(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range config.ListPresets() {
			fmt.Println(name)
		}
		return nil
	}

	sc := config.GetPreset(args[0])
	if sc == nil {
		return fmt.Errorf("unknown scene %q", args[0])
	}

	if outFile != "" {
		if err := scene.Save(outFile, sc); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sc)
}
