package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/albertsgarde/puzzles/internal/camping"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	campingMapsDir      = "data/camping/maps"
	campingSolutionsDir = "data/camping/solutions"
)

func init() {
	campingCmd := &cobra.Command{
		Use:   "camping [name]",
		Short: "Solve tents-and-trees maps",
		Long: `Solve the named camping map, or every map under ` + campingMapsDir + `.

Solved maps are written to ` + campingSolutionsDir + ` in the input format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCamping,
	}
	rootCmd.AddCommand(campingCmd)
}

func runCamping(cmd *cobra.Command, args []string) error {
	names, err := listInputs(campingMapsDir, args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(campingSolutionsDir, 0o755); err != nil {
		return err
	}
	// A bad map fails the run but does not stop the remaining maps.
	var errs []error
	for _, name := range names {
		if err := solveCampingMap(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func solveCampingMap(name string) error {
	data, err := os.ReadFile(filepath.Join(campingMapsDir, name+".txt"))
	if err != nil {
		return err
	}
	m, err := camping.Parse(string(data))
	if err != nil {
		return fmt.Errorf("map %s: %w", name, err)
	}
	res, err := camping.Solve(m)
	if err != nil {
		log.WithField("map", name).Warnf("no solution: %v", err)
		return nil
	}
	if !res.Map.Complete() {
		return fmt.Errorf("map %s: solver returned an incomplete map", name)
	}
	path := filepath.Join(campingSolutionsDir, name+".txt")
	if err := os.WriteFile(path, []byte(res.Map.String()), 0o644); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"map": name, "guesses": res.Guesses}).
		Info("solved")
	log.Debug("\n" + res.Map.String())
	return nil
}
