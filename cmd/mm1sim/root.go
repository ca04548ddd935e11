package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/mm1sim/mm1"
	"github.com/sarchlab/mm1sim/simulation"
)

var (
	flagCapacity      int
	flagArrivalProb   float64
	flagDepartureProb float64
	flagSteps         uint64
	flagTruncateEvery uint64
	flagTruncateLimit int
	flagSeed          int64
	flagOutput        string
	flagMonitor       bool
	flagMonitorPort   int
	flagOpenBrowser   bool
	flagQuiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "mm1sim",
	Short: "Simulate a single-server queue with bounded capacity",
	Long: `mm1sim runs a discrete-step simulation of a single-server queue. ` +
		`Each step, a biased coin decides whether a customer arrives and ` +
		`another whether a customer departs. On a fixed cadence, the oldest ` +
		`waiting customers are dropped to keep the queue within a limit. ` +
		`Each run records per-step samples into a SQLite database.`,
	Run: run,
}

func init() {
	f := rootCmd.Flags()

	f.IntVar(&flagCapacity, "capacity", 20,
		"number of slots in the queue, one of which stays reserved")
	f.Float64Var(&flagArrivalProb, "arrival-prob", 0.25,
		"per-step arrival probability")
	f.Float64Var(&flagDepartureProb, "departure-prob", 0.30,
		"per-step departure probability")
	f.Uint64Var(&flagSteps, "steps", 10000,
		"number of steps to simulate")
	f.Uint64Var(&flagTruncateEvery, "truncate-every", 10,
		"truncation cadence in steps, 0 disables truncation")
	f.IntVar(&flagTruncateLimit, "truncate-limit", 2,
		"occupancy limit enforced on each truncation")
	f.Int64Var(&flagSeed, "seed", 1234,
		"seed of the arrival/departure random source")
	f.StringVar(&flagOutput, "output", "",
		"output database file name, without the .sqlite3 suffix")
	f.BoolVar(&flagMonitor, "monitor", false,
		"serve the simulation state over HTTP while running")
	f.IntVar(&flagMonitorPort, "monitor-port", 0,
		"port of the monitoring server, 0 picks a random free port")
	f.BoolVar(&flagOpenBrowser, "open", false,
		"open the monitoring dashboard in the default browser")
	f.BoolVar(&flagQuiet, "quiet", false,
		"do not draw the queue occupancy after every step")
}

// applyEnvDefaults overrides flag defaults with MM1SIM_* environment
// variables, loading a .env file first when one is present. Flags given on
// the command line always win.
func applyEnvDefaults(cmd *cobra.Command) {
	_ = godotenv.Load()

	if !cmd.Flags().Changed("seed") {
		if v, ok := os.LookupEnv("MM1SIM_SEED"); ok {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				log.Fatalf("invalid MM1SIM_SEED: %v", err)
			}
			flagSeed = seed
		}
	}

	if !cmd.Flags().Changed("monitor-port") {
		if v, ok := os.LookupEnv("MM1SIM_MONITOR_PORT"); ok {
			port, err := strconv.Atoi(v)
			if err != nil {
				log.Fatalf("invalid MM1SIM_MONITOR_PORT: %v", err)
			}
			flagMonitorPort = port
		}
	}
}

func run(cmd *cobra.Command, _ []string) {
	cmd.SilenceUsage = true

	applyEnvDefaults(cmd)

	simBuilder := simulation.MakeBuilder().
		WithOutputFileName(flagOutput)

	if flagMonitor {
		if flagMonitorPort > 0 {
			simBuilder = simBuilder.WithMonitorPort(flagMonitorPort)
		}
		if flagOpenBrowser {
			simBuilder = simBuilder.WithBrowserLaunch()
		}
	} else {
		simBuilder = simBuilder.WithoutMonitoring()
	}

	s := simBuilder.Build()
	defer s.Terminate()

	compBuilder := mm1.MakeBuilder().
		WithScheduler(s.GetEngine()).
		WithCapacity(flagCapacity).
		WithArrivalProb(flagArrivalProb).
		WithDepartureProb(flagDepartureProb).
		WithNumSteps(flagSteps).
		WithTruncateEvery(flagTruncateEvery).
		WithTruncateLimit(flagTruncateLimit).
		WithSeed(flagSeed).
		WithDataRecorder(s.GetDataRecorder())

	if !flagQuiet {
		compBuilder = compBuilder.WithVisLogger(log.New(os.Stdout, "", 0))
	}

	comp := compBuilder.Build("Server")
	s.RegisterComponent(comp)

	comp.StartAt(1)

	err := s.GetEngine().Run()
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	printSummary(comp.Stats())
}

func printSummary(stats mm1.Stats) {
	fmt.Printf("steps:      %d\n", stats.Steps)
	fmt.Printf("arrivals:   %d\n", stats.Arrivals)
	fmt.Printf("departures: %d\n", stats.Departures)
	fmt.Printf("drops:      %d\n", stats.Drops)
	if stats.Overflowed {
		fmt.Println("the queue overflowed and the run stopped early")
	}
}
