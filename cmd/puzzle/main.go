package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	verbose    bool
	profileRun bool
	profiler   interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:           "puzzle",
	Short:         "Solve puzzles from the data directory",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if profileRun {
			profiler = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&profileRun, "profile", false, "Write a CPU profile for the run")
}

// listInputs returns the base names (without .txt) of the inputs to solve:
// the single name given as an argument, or every .txt file in dir.
func listInputs(dir string, args []string) ([]string, error) {
	if len(args) == 1 {
		name := args[0]
		if _, err := os.Stat(filepath.Join(dir, name+".txt")); err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	return names, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
