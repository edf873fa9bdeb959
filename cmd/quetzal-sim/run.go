package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/quetzal/coalescence"
	"github.com/katalvlaran/quetzal/dispersal"
	"github.com/katalvlaran/quetzal/forward"
	"github.com/katalvlaran/quetzal/gridgraph"
	"github.com/katalvlaran/quetzal/internal/simlog"
	"github.com/katalvlaran/quetzal/landscape"
	"github.com/katalvlaran/quetzal/simrand"
	"github.com/katalvlaran/quetzal/simulator"
	"github.com/katalvlaran/quetzal/store"
)

// newRootCmd builds the quetzal-sim command tree: a single run, configured
// by flags or by an optional YAML file loaded through viper (--config),
// following the flag-registration-plus-config-overlay convention visible
// across the pack's cobra+viper CLI front-ends.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "quetzal-sim",
		Short: "Run one forward-backward spatially explicit coalescent replicate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplicate(v)
		},
	}

	flags := cmd.Flags()
	flags.Int("rows", 3, "grid landscape rows")
	flags.Int("cols", 3, "grid landscape cols")
	flags.String("seed-deme", "0,0", "deme id seeded with the initial population")
	flags.Int("seed-size", 100, "initial population size at seed-deme, at t=0")
	flags.Float64("growth-rate", 1.5, "Poisson growth rate multiplier applied to N(x,t)")
	flags.Float64("emigrant-rate", 0.2, "fraction of each deme's post-growth size that emigrates to neighbors")
	flags.Int("generations", 5, "number of forward generations to simulate before sampling")
	flags.String("sample-deme", "0,0", "deme id to sample lineages from at the sampling generation")
	flags.Int("sample-size", 10, "number of lineages to sample")
	flags.Int("ancestral-size", 0, "panmictic ancestral population size for the Wright-Fisher tail; 0 disables it")
	flags.Int64("seed", 1, "master RNG seed")
	flags.Bool("verbose", false, "emit per-step debug logging")
	flags.String("config", "", "optional YAML config file overlaying these flags")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

// runReplicate wires one simulator.RunReplicate call from the resolved
// configuration in v, then prints a short summary of the resulting forest.
func runReplicate(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("quetzal-sim: reading config %s: %w", path, err)
		}
	}

	rows, cols := v.GetInt("rows"), v.GetInt("cols")
	grid, err := landscape.NewGrid(rows, cols, gridgraph.Conn4, true)
	if err != nil {
		return fmt.Errorf("quetzal-sim: building landscape: %w", err)
	}

	demes := grid.Demes()
	kernel, err := dispersal.NeighboringMigration(demes, func(x string) []string {
		neighbors, nerr := grid.Neighbors(x)
		if nerr != nil {
			return nil
		}
		return neighbors
	}, func(string) float64 { return 1 }, v.GetFloat64("emigrant-rate"))
	if err != nil {
		return fmt.Errorf("quetzal-sim: building dispersal kernel: %w", err)
	}

	seedDeme := v.GetString("seed-deme")
	h := store.NewHistory(0)
	if err := h.SetSize(seedDeme, 0, v.GetInt("seed-size")); err != nil {
		return fmt.Errorf("quetzal-sim: seeding history: %w", err)
	}

	growthRate := v.GetFloat64("growth-rate")
	growth := forward.PoissonGrowth(func(x string, t int) float64 {
		return growthRate * float64(h.GetSize(x, t))
	})

	generations := v.GetInt("generations")
	samplingTime := generations

	sampleDeme := v.GetString("sample-deme")
	sample := map[string]int{sampleDeme: v.GetInt("sample-size")}
	makeLineage := func(x string, i int) any { return 1 }

	log := simlog.Default(v.GetBool("verbose"))
	rng := simrand.RNGFromSeed(v.GetInt64("seed"))

	opts := simulator.RunOptions{
		Verbose:       v.GetBool("verbose"),
		Logger:        log,
		Merger:        coalescence.BinaryMerger{},
		Branch:        func(parent, child any) any { return parent.(int) + child.(int) },
		MakeTree:      func(x string, t int) any { return 0 },
		AncestralSize: v.GetInt("ancestral-size"),
		MakeParent:    func(depth int) any { return 0 },
	}

	result, err := simulator.RunReplicate(h, samplingTime, growth, kernel, sample, makeLineage, rng, opts)
	if err != nil {
		return fmt.Errorf("quetzal-sim: replicate failed: %w", err)
	}

	printSummary(result, samplingTime)
	return nil
}

func printSummary(result *simulator.Result, samplingTime int) {
	fmt.Printf("sampling generation: %d\n", samplingTime)
	if result.MRCA != nil {
		fmt.Printf("most recent common ancestor found: leaf count %v\n", result.MRCA)
		return
	}
	fmt.Printf("forest did not reach a single MRCA: %d lineages remain across %d deme(s)\n",
		result.Forest.Len(), len(result.Forest.Positions()))
	if result.AncestralGenerationsConsumed > 0 {
		fmt.Printf("ancestral tail consumed %d generations before the budget ran out\n", result.AncestralGenerationsConsumed)
	}
}
