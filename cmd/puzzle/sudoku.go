package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/albertsgarde/puzzles/internal/sudoku"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	sudokuGridsDir     = "data/sudoku/grids"
	sudokuSolutionsDir = "output/sudoku/solutions"
	sudokuEmptyChar    = '.'
)

func init() {
	sudokuCmd := &cobra.Command{
		Use:   "sudoku [set]",
		Short: "Solve sudoku grid sets",
		Long: `Solve the named set of sudoku grids, or every set under ` + sudokuGridsDir + `.

A set file holds one 81-character grid per line with '.' for empty cells.
Solutions land in ` + sudokuSolutionsDir + ` as "<grid>,<solved>" lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSudoku,
	}
	rootCmd.AddCommand(sudokuCmd)
}

func runSudoku(cmd *cobra.Command, args []string) error {
	sets, err := listInputs(sudokuGridsDir, args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(sudokuSolutionsDir, 0o755); err != nil {
		return err
	}
	// Sets are independent and write distinct files, so each gets a
	// goroutine. Puzzles within a set stay sequential and ordered.
	var wg sync.WaitGroup
	errs := make([]error, len(sets))
	for i, set := range sets {
		wg.Add(1)
		go func(i int, set string) {
			defer wg.Done()
			errs[i] = solveSudokuSet(set, len(sets) == 1)
		}(i, set)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func solveSudokuSet(set string, showProgress bool) error {
	watch := NewStopwatch()
	start := time.Now()

	watch.Start("load")
	data, err := os.ReadFile(filepath.Join(sudokuGridsDir, set+".txt"))
	if err != nil {
		return err
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	watch.Stop("load")

	var updates chan ProgressUpdate
	var printerWG sync.WaitGroup
	if showProgress && len(lines) > 0 {
		updates = make(chan ProgressUpdate, len(lines))
		printerWG.Add(1)
		go PrintUpdates(updates, &printerWG)
	}

	watch.Start("solve")
	out := make([]string, 0, len(lines))
	solved, steps, guesses := 0, 0, 0
	for i, line := range lines {
		board, err := sudoku.ParseLine(line, sudokuEmptyChar)
		if err != nil {
			return fmt.Errorf("set %s, puzzle %d: %w", set, i+1, err)
		}
		res, err := sudoku.Solve(board)
		switch {
		case err == nil:
			solved++
			steps += res.Steps
			guesses += res.Guesses
			out = append(out, res.Board.Line(sudokuEmptyChar)+",true")
			if showProgress && len(lines) == 1 {
				log.Debug("\n" + res.Board.Pretty(sudokuEmptyChar))
			}
		case errors.Is(err, sudoku.ErrStepLimit):
			steps += res.Steps
			guesses += res.Guesses
			log.WithFields(logrus.Fields{"set": set, "puzzle": i + 1}).
				Warn("step limit reached")
			out = append(out, line+",false")
		default:
			log.WithFields(logrus.Fields{"set": set, "puzzle": i + 1}).
				Warnf("not solved: %v", err)
			out = append(out, line+",false")
		}
		if updates != nil {
			updates <- ProgressUpdate{Done: i + 1, Total: len(lines)}
		}
	}
	watch.Stop("solve")

	if updates != nil {
		close(updates)
		printerWG.Wait()
	}

	watch.Start("write")
	path := filepath.Join(sudokuSolutionsDir, set+".txt")
	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")+"\n"), 0o644); err != nil {
		return err
	}
	watch.Stop("write")

	log.WithFields(logrus.Fields{
		"set":     set,
		"solved":  solved,
		"total":   len(lines),
		"steps":   steps,
		"guesses": guesses,
	}).Infof("solved %d/%d in %.4fs", solved, len(lines), time.Since(start).Seconds())
	log.Debug(watch.Results())
	return nil
}
