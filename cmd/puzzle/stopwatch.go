package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stopwatch accumulates wall time into named buckets so the phases of a
// run can be timed independently.
type Stopwatch struct {
	buckets map[string]time.Duration
	starts  map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	s.starts[b] = time.Now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	start, ok := s.starts[b]
	if !ok {
		return
	}
	s.buckets[b] += time.Since(start)
	delete(s.starts, b)
}

func (s *Stopwatch) Results() string {
	keys := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %.4f\n", k, s.buckets[k].Seconds())
	}
	return sb.String()
}
