package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/trace"
	"github.com/sched-sim/sched-sim/workload"
)

var (
	// CLI flags for the simulated machine
	cores    int    // Number of cores the scheduler dispatches onto
	scheme   string // Scheduling scheme (fcfs, sjf, psjf, pri, ppri, rr)
	quantum  int64  // Round-robin time slice (ticks)
	logLevel string // Log verbosity level

	// Workload sources (mutually exclusive; generated workload is the default)
	scenarioPath string // YAML scenario file
	tracePath    string // CSV job trace to replay

	// Generated workload configs
	seed           int64   // Seed for random workload generation
	numJobs        int     // Number of jobs to generate
	rate           float64 // Mean arrivals per tick (Poisson process)
	runTimeMean    int64   // Average job run time
	runTimeStdev   int64   // Stdev of job run time
	runTimeMin     int64   // Min job run time
	runTimeMax     int64   // Max job run time
	priorityLevels int     // Priorities drawn uniformly from [0, levels)

	traceLevel string // Decision trace level (none, decisions)
)

var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-event CPU scheduling simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg, specs, err := buildRun()
		if err != nil {
			logrus.Fatalf("Configuration error: %v", err)
		}

		logrus.Infof("Starting simulation: %d cores, scheme=%s, %d jobs",
			cfg.Cores, cfg.Scheme, len(specs))

		s := sim.NewSimulator(cfg.Cores, cfg.Scheme, cfg.Quantum, specs, trace.Level(traceLevel))
		s.Run()
		s.Report()

		logrus.Info("Simulation complete.")
	},
}

// runConfig is the resolved machine shape for one run.
type runConfig struct {
	Cores   int
	Scheme  sim.Scheme
	Quantum int64
}

// buildRun resolves flags (and the optional scenario file) into a machine
// configuration and a workload.
func buildRun() (runConfig, []sim.JobSpec, error) {
	if scenarioPath != "" {
		spec, err := workload.LoadScenarioSpec(scenarioPath)
		if err != nil {
			return runConfig{}, nil, err
		}
		parsed, err := sim.ParseScheme(spec.Scheme)
		if err != nil {
			return runConfig{}, nil, err
		}
		return runConfig{Cores: spec.Cores, Scheme: parsed, Quantum: spec.Quantum}, workload.Generate(spec), nil
	}

	parsed, err := sim.ParseScheme(scheme)
	if err != nil {
		return runConfig{}, nil, err
	}
	cfg := runConfig{Cores: cores, Scheme: parsed, Quantum: quantum}

	if tracePath != "" {
		specs, err := workload.LoadTrace(tracePath)
		if err != nil {
			return runConfig{}, nil, err
		}
		return cfg, specs, nil
	}

	spec := &workload.ScenarioSpec{
		Seed:    seed,
		Cores:   cores,
		Scheme:  scheme,
		Quantum: quantum,
		NumJobs: numJobs,
		Rate:    rate,
		RunTime: workload.DistSpec{
			Mean:  runTimeMean,
			Stdev: runTimeStdev,
			Min:   runTimeMin,
			Max:   runTimeMax,
		},
		PriorityLevels: priorityLevels,
	}
	if err := spec.Validate(); err != nil {
		return runConfig{}, nil, err
	}
	return cfg, workload.Generate(spec), nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&cores, "cores", 1, "Number of cores")
	runCmd.Flags().StringVar(&scheme, "scheme", "fcfs", "Scheduling scheme (fcfs, sjf, psjf, pri, ppri, rr)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 4, "Round-robin time slice (ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Workload sources
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides machine and workload flags)")
	runCmd.Flags().StringVar(&tracePath, "job-trace", "", "CSV job trace to replay (id,arrival,runtime,priority)")

	// Generated workload configs
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random workload generation")
	runCmd.Flags().IntVar(&numJobs, "jobs", 100, "Number of jobs")
	runCmd.Flags().Float64Var(&rate, "rate", 0.1, "Mean arrivals per tick")
	runCmd.Flags().Int64Var(&runTimeMean, "runtime", 20, "Average job run time")
	runCmd.Flags().Int64Var(&runTimeStdev, "runtime-stdev", 10, "Stddev of job run time")
	runCmd.Flags().Int64Var(&runTimeMin, "runtime-min", 1, "Min job run time")
	runCmd.Flags().Int64Var(&runTimeMax, "runtime-max", 100, "Max job run time")
	runCmd.Flags().IntVar(&priorityLevels, "priority-levels", 10, "Priorities drawn uniformly from [0, levels)")

	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
