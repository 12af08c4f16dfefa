//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ksel

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"gonum.org/v1/gonum/mat"
)

func sweepcorpus(t *testing.T) *dtm.Matrix {
	t.Helper()
	docs := []string{
		"pipe leak water pipe leak",
		"leak water pipe water leak",
		"rent fee notice rent fee",
		"fee notice rent notice fee",
		"paint wall door paint wall",
		"wall door paint door wall",
	}
	m, _, err := dtm.Build(docs, 2)
	if err != nil {
		t.Fatalf("dtm.Build() returned an error: %v", err)
	}
	return m
}

func TestSweepTable(t *testing.T) {
	t.Parallel()

	m := sweepcorpus(t)
	sc := SweepConfig{Low: 2, High: 4, Iterations: 60, BurnIn: 10, Workers: 2, Seed: 1234}

	candidates, err := Run(m, sc)
	if err != nil {
		t.Fatalf("Run() returned an error: %v", err)
	}

	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	for i, c := range candidates {
		if c.K != sc.Low+i {
			t.Errorf("candidate %d has K=%d, expected %d", i, c.K, sc.Low+i)
		}
		for _, name := range MetricNames {
			v, ok := c.Values[name]
			if !ok {
				t.Errorf("candidate K=%d is missing metric %s", c.K, name)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("metric %s for K=%d is %v", name, c.K, v)
			}
		}
	}
}

// the table has to come out the same no matter how the workers are scheduled
func TestSweepDeterminism(t *testing.T) {
	t.Parallel()

	m := sweepcorpus(t)

	a, err := Run(m, SweepConfig{Low: 2, High: 4, Iterations: 60, BurnIn: 10, Workers: 1, Seed: 99})
	if err != nil {
		t.Fatalf("first Run() returned an error: %v", err)
	}
	b, err := Run(m, SweepConfig{Low: 2, High: 4, Iterations: 60, BurnIn: 10, Workers: 3, Seed: 99})
	if err != nil {
		t.Fatalf("second Run() returned an error: %v", err)
	}

	for i := range a {
		for _, name := range MetricNames {
			if a[i].Values[name] != b[i].Values[name] {
				t.Errorf("metric %s for K=%d differs across worker counts: %v vs %v",
					name, a[i].K, a[i].Values[name], b[i].Values[name])
			}
		}
	}
}

type countingengine struct {
	mu   sync.Mutex
	fits int
}

func (c *countingengine) Fit(m *dtm.Matrix, k int) (*topics.Model, error) {
	c.mu.Lock()
	c.fits += 1
	c.mu.Unlock()

	d, v := m.Counts.Dims()
	tt := mat.NewDense(k, v, nil)
	for t := 0; t < k; t++ {
		for w := 0; w < v; w++ {
			tt.Set(t, w, 1/float64(v))
		}
	}
	dt := mat.NewDense(d, k, nil)
	for i := 0; i < d; i++ {
		for t := 0; t < k; t++ {
			dt.Set(i, t, 1/float64(k))
		}
	}
	return &topics.Model{K: k, TopicTerm: tt, DocTopic: dt}, nil
}

// the sweep scores whatever engine the caller will use for the final fit
func TestSweepUsesInjectedEngine(t *testing.T) {
	t.Parallel()

	m := sweepcorpus(t)
	eng := &countingengine{}

	candidates, err := Run(m, SweepConfig{
		Low:     2,
		High:    4,
		Workers: 2,
		Seed:    1,
		Engine:  func(seed uint64) topics.Engine { return eng },
	})
	if err != nil {
		t.Fatalf("Run() returned an error: %v", err)
	}

	if eng.fits != 3 {
		t.Errorf("expected the injected engine to run 3 fits, got %d", eng.fits)
	}
	for _, c := range candidates {
		for _, name := range MetricNames {
			if math.IsNaN(c.Values[name]) {
				t.Errorf("metric %s for K=%d is NaN", name, c.K)
			}
		}
	}
}

func TestSweepEmptyRange(t *testing.T) {
	t.Parallel()

	m := sweepcorpus(t)
	_, err := Run(m, SweepConfig{Low: 8, High: 3, Iterations: 10, BurnIn: 0, Workers: 1, Seed: 1})
	if !errors.Is(err, topics.ErrInvalidTopicCount) {
		t.Errorf("expected ErrInvalidTopicCount, got %v", err)
	}
}

func TestNormalized(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		{K: 2, Values: map[string]float64{GRIFFITHS: -100, CAOJUAN: 0.9, ARUN: 3, DEVEAUD: 1}},
		{K: 3, Values: map[string]float64{GRIFFITHS: -80, CAOJUAN: 0.5, ARUN: 2, DEVEAUD: 2}},
		{K: 4, Values: map[string]float64{GRIFFITHS: -90, CAOJUAN: 0.7, ARUN: 4, DEVEAUD: 3}},
	}

	normalized := Normalized(candidates)
	for _, name := range MetricNames {
		vals := normalized[name]
		if len(vals) != 3 {
			t.Fatalf("metric %s has %d normalized values, expected 3", name, len(vals))
		}
		for i, v := range vals {
			if v < 0 || v > 1 {
				t.Errorf("metric %s value %d is %v, expected [0, 1]", name, i, v)
			}
		}
	}

	// the best and worst candidates pin the scale
	if normalized[GRIFFITHS][1] != 1 || normalized[GRIFFITHS][0] != 0 {
		t.Errorf("unexpected normalization for %s: %v", GRIFFITHS, normalized[GRIFFITHS])
	}
}
