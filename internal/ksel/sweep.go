//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ksel

import (
	"fmt"
	"sync"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
)

//
// TOPIC-COUNT SWEEP
//

// Candidate - the metric values for one candidate topic count
type Candidate struct {
	K      int
	Values map[string]float64
}

// SweepConfig - bounds and fitting parameters for the sweep. Engine builds the
// inference engine for one fit; leaving it nil gets a stock Gibbs engine. The caller
// passes the same construction it will use for the final fit, so the sweep scores
// the method that will actually run.
type SweepConfig struct {
	Low        int
	High       int
	Iterations int
	BurnIn     int
	Workers    int
	Seed       uint64
	Engine     func(seed uint64) topics.Engine
}

// Run - fit an independent model for every K in [Low, High] and score it with all four
// metrics. The fits run on a small worker pool; every K gets its own engine built from
// the same base seed, so the table is identical no matter how the work is scheduled.
func Run(m *dtm.Matrix, sc SweepConfig) ([]Candidate, error) {
	if sc.Low < 2 {
		sc.Low = 2
	}
	if sc.High > m.Vocab() {
		sc.High = m.Vocab()
	}
	if sc.High < sc.Low {
		return nil, fmt.Errorf("%w: sweep range [%d, %d] is empty", topics.ErrInvalidTopicCount, sc.Low, sc.High)
	}
	if sc.Workers < 1 {
		sc.Workers = 1
	}

	mkengine := sc.Engine
	if mkengine == nil {
		mkengine = func(seed uint64) topics.Engine {
			return topics.NewGibbsEngine(sc.Iterations, sc.BurnIn, seed)
		}
	}

	candidates := make([]Candidate, sc.High-sc.Low+1)
	failures := make([]error, sc.High-sc.Low+1)

	kk := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < sc.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range kk {
				mo, err := mkengine(sc.Seed).Fit(m, k)
				if err != nil {
					failures[k-sc.Low] = err
					continue
				}
				candidates[k-sc.Low] = Candidate{
					K: k,
					Values: map[string]float64{
						GRIFFITHS: Griffiths2004(mo, m),
						CAOJUAN:   CaoJuan2009(mo),
						ARUN:      Arun2010(mo, m),
						DEVEAUD:   Deveaud2014(mo),
					},
				}
			}
		}()
	}

	for k := sc.Low; k <= sc.High; k++ {
		kk <- k
	}
	close(kk)
	wg.Wait()

	for _, e := range failures {
		if e != nil {
			return nil, e
		}
	}

	return candidates, nil
}

// Normalized - min-max scale each metric across the candidates so the four can share
// one axis on the diagnostic plot
func Normalized(candidates []Candidate) map[string][]float64 {
	out := make(map[string][]float64, len(MetricNames))
	for _, name := range MetricNames {
		vals := make([]float64, len(candidates))
		lo, hi := candidates[0].Values[name], candidates[0].Values[name]
		for i, c := range candidates {
			vals[i] = c.Values[name]
			if vals[i] < lo {
				lo = vals[i]
			}
			if vals[i] > hi {
				hi = vals[i]
			}
		}
		span := hi - lo
		for i := range vals {
			if span > 0 {
				vals[i] = (vals[i] - lo) / span
			} else {
				vals[i] = 0
			}
		}
		out[name] = vals
	}
	return out
}
