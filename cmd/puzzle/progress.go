package main

import (
	"fmt"
	"sync"
)

// ProgressUpdate reports how far through a set the solver is.
type ProgressUpdate struct {
	Done  int
	Total int
}

// PrintUpdates redraws a progress bar in place for every update until the
// channel closes.
func PrintUpdates(updates <-chan ProgressUpdate, wg *sync.WaitGroup) {
	defer wg.Done()
	fmt.Println("Starting...")
	for update := range updates {
		bar := ""
		pct := float64(update.Done) / float64(update.Total)
		for i := 0.05; i <= 1.0; i += 0.05 {
			if pct >= i {
				bar += "="
			} else {
				bar += "."
			}
		}
		fmt.Print("\033[1A\033[K")
		fmt.Printf("[%s] %d/%d\n", bar, update.Done, update.Total)
	}
}
