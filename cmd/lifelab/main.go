package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
	"github.com/san-kum/lifelab/internal/render"
	"github.com/san-kum/lifelab/internal/storage"
	"github.com/san-kum/lifelab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	rows       int
	cols       int
	rate       int
	maxTicks   int
	density    float64
	seed       int64
	patternRef string
)

// main registers commands and flags. With no subcommand the interactive TUI
// session starts; subcommands cover headless runs and run analysis.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "interactive terminal Game of Life",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&patternRef, "pattern", "", "seed pattern to preload")

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run a headless simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "board rows")
	runCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "board cols")
	runCmd.Flags().IntVar(&rate, "rate", 1000, "ticks per second")
	runCmd.Flags().IntVar(&maxTicks, "ticks", config.DefaultMaxTicks, "tick bound, 0 runs to a fixed point")
	runCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random soup density")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's population history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list builtin seed patterns",
		RunE:  listPatterns,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, patternsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if patternRef != "" {
		cfg.Pattern = patternRef
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

// runRecorder captures per-tick statistics and feeds the progress bar on
// bounded runs.
type runRecorder struct {
	history []storage.TickRecord
	bar     *pb.ProgressBar
}

func (r *runRecorder) OnCell(life.Change) {}

func (r *runRecorder) OnTick(index, changed, alive int) {
	r.history = append(r.history, storage.TickRecord{Tick: index, Changed: changed, Alive: alive})
	if r.bar != nil {
		r.bar.Increment()
	}
}

func (r *runRecorder) OnHalt(int) {}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	// Config file fills in whatever the flags left untouched.
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("rows") {
			rows = loaded.Rows
		}
		if !cmd.Flags().Changed("cols") {
			cols = loaded.Cols
		}
		if !cmd.Flags().Changed("rate") && loaded.TicksPerSecond > 0 {
			rate = loaded.TicksPerSecond
		}
		if !cmd.Flags().Changed("ticks") {
			maxTicks = loaded.MaxTicks
		}
		if !cmd.Flags().Changed("density") {
			density = loaded.Density
		}
		if !cmd.Flags().Changed("seed") && loaded.Seed != 0 {
			seed = loaded.Seed
		}
		cfg.Pattern = loaded.Pattern
	}
	if len(args) > 0 {
		cfg.Pattern = args[0]
	}

	cfg.Rows = rows
	cfg.Cols = cols
	cfg.TicksPerSecond = rate
	cfg.MaxTicks = maxTicks
	cfg.Density = density
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, err := life.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if cfg.Pattern != "" {
		p, err := pattern.Load(cfg.Pattern)
		if err != nil {
			return err
		}
		if err := p.StampCentered(board); err != nil {
			return err
		}
		fmt.Printf("seeding %s on %dx%d board...\n", p.Name, cfg.Rows, cfg.Cols)
	} else {
		pattern.Randomize(board, cfg.Density, rand.New(rand.NewSource(seed)))
		fmt.Printf("seeding random soup (density %.2f, seed %d) on %dx%d board...\n",
			cfg.Density, seed, cfg.Rows, cfg.Cols)
	}

	engine := life.NewEngine()
	driver := life.NewDriver(engine)
	rec := &runRecorder{}
	driver.AddObserver(rec)

	var spinner *wow.Wow
	if cfg.MaxTicks > 0 {
		rec.bar = pb.StartNew(cfg.MaxTicks)
	} else {
		spinner = wow.New(os.Stdout, spin.Get(spin.Dots), " running to a fixed point")
		spinner.Start()
	}

	start := time.Now()
	ticks, err := driver.Run(context.Background(), board, life.Config{
		TicksPerSecond: cfg.TicksPerSecond,
		MaxTicks:       cfg.MaxTicks,
	})
	elapsed := time.Since(start)

	if rec.bar != nil {
		rec.bar.SetCurrent(int64(ticks))
		rec.bar.Finish()
	}
	if spinner != nil {
		spinner.PersistWith(spin.Spinner{Frames: []string{"+"}}, " done")
	}
	if err != nil {
		return err
	}

	fixedPoint := len(rec.history) > 0 && rec.history[len(rec.history)-1].Changed == 0

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		TicksPerSecond: cfg.TicksPerSecond,
		Pattern:        cfg.Pattern,
		Seed:           seed,
		TotalTicks:     ticks,
		FinalAlive:     board.Alive(),
		FixedPoint:     fixedPoint,
	}, rec.history)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", ticks)
	fmt.Printf("final population: %d\n", board.Alive())
	if board.Alive() > 0 {
		fmt.Println()
		fmt.Println(render.Snapshot(board))
		fmt.Println()
	}
	if fixedPoint {
		fmt.Println("board reached a fixed point")
	} else {
		fmt.Println("tick bound reached before a fixed point")
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBOARD\tRATE\tTICKS\tALIVE\tFIXED")

	for _, run := range runs {
		fixed := "no"
		if run.FixedPoint {
			fixed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			run.Cols,
			run.TicksPerSecond,
			run.TotalTicks,
			run.FinalAlive,
			fixed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	history, err := st.LoadHistory(runID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("board: %dx%d\n", meta.Rows, meta.Cols)
	fmt.Printf("ticks: %d\n\n", meta.TotalTicks)

	alive := make([]float64, len(history))
	for i, rec := range history {
		alive[i] = float64(rec.Alive)
	}

	graph := asciigraph.Plot(alive,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live cells per tick"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"tick", "changed", "alive"}); err != nil {
		return err
	}
	for _, rec := range history {
		row := []string{
			strconv.Itoa(rec.Tick),
			strconv.Itoa(rec.Changed),
			strconv.Itoa(rec.Alive),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDESCRIPTION")

	for _, name := range pattern.Names() {
		p, _ := pattern.Get(name)
		rows, cols := p.Size()
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", name, rows, cols, p.Desc)
	}

	return w.Flush()
}
