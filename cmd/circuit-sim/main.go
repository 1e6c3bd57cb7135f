// Command circuit-sim builds one of the five canonical demonstration
// circuits and runs a transient simulation over it, logging progress
// with zerolog and optionally writing a CSV debug trace.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manuelmaiorano/circuit-simulator/pkg/transient"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuit-sim",
		Short: "Transient circuit simulator (modified nodal analysis)",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available canonical scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range scenarios() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.name, s.describe)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a canonical scenario's transient simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("scenario", "voltage-divider", "scenario to run (see: circuit-sim list)")
	flags.Float64("duration", 0, "simulation duration in seconds (0 = scenario default)")
	flags.Float64("timestep", 0, "fixed timestep in seconds (0 = scenario default)")
	flags.String("csv", "", "path to write a csv debug trace (time,voltage) (empty = don't write)")
	flags.String("log-level", "info", "zerolog level: debug, info, warn, error")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("CIRCUIT_SIM")
	v.AutomaticEnv()

	return cmd
}

func runScenario(cmd *cobra.Command, v *viper.Viper) error {
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	s, err := findScenario(v.GetString("scenario"))
	if err != nil {
		return err
	}

	duration := v.GetFloat64("duration")
	if duration == 0 {
		duration = s.duration
	}
	timestep := v.GetFloat64("timestep")
	if timestep == 0 {
		timestep = s.timestep
	}

	log.Info().Str("scenario", s.name).Float64("duration", duration).Float64("timestep", timestep).Msg("building circuit")

	ckt, err := s.build()
	if err != nil {
		return fmt.Errorf("build scenario %s: %w", s.name, err)
	}

	out, err := transient.Simulate(ckt, nil, duration, timestep, log)
	if err != nil {
		log.Warn().Err(err).Msg("simulation stopped early")
	}

	probe := out.Voltages[s.probeNode]
	if len(probe) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: final V(node %d) = %g\n", s.name, s.probeNode, probe[len(probe)-1])
	}

	if csvPath := v.GetString("csv"); csvPath != "" {
		if werr := writeCSV(csvPath, timestep, probe); werr != nil {
			return fmt.Errorf("write csv trace: %w", werr)
		}
		log.Info().Str("path", csvPath).Msg("wrote csv trace")
	}

	return err
}
