//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"math"
	"testing"

	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"gonum.org/v1/gonum/mat"
)

func toymodel() *topics.Model {
	return &topics.Model{
		K: 2,
		TopicTerm: mat.NewDense(2, 4, []float64{
			0.4, 0.3, 0.2, 0.1,
			0.1, 0.1, 0.3, 0.5,
		}),
		DocTopic: mat.NewDense(3, 2, []float64{
			0.8, 0.2,
			0.3, 0.7,
			0.5, 0.5,
		}),
	}
}

var toyterms = []string{"leak", "pipe", "rent", "fee"}

func TestTopTerms(t *testing.T) {
	t.Parallel()

	tops := TopTerms(toymodel(), toyterms, 2)
	if len(tops) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(tops))
	}

	if tops[0][0].Term != "leak" || tops[0][1].Term != "pipe" {
		t.Errorf("unexpected top terms for topic 0: %v", tops[0])
	}
	if tops[1][0].Term != "fee" || tops[1][1].Term != "rent" {
		t.Errorf("unexpected top terms for topic 1: %v", tops[1])
	}
	if tops[0][0].Probability != 0.4 {
		t.Errorf("unexpected probability %v for the top term of topic 0", tops[0][0].Probability)
	}
}

// equal weights resolve toward the lower vocabulary index
func TestTopTermsTieBreak(t *testing.T) {
	t.Parallel()

	mo := &topics.Model{
		K:         1,
		TopicTerm: mat.NewDense(1, 3, []float64{0.25, 0.5, 0.25}),
		DocTopic:  mat.NewDense(1, 1, []float64{1}),
	}

	tops := TopTerms(mo, []string{"alpha", "beta", "gamma"}, 3)
	if tops[0][0].Term != "beta" || tops[0][1].Term != "alpha" || tops[0][2].Term != "gamma" {
		t.Errorf("unexpected tie-broken order: %v", tops[0])
	}
}

func TestTopicNames(t *testing.T) {
	t.Parallel()

	names := TopicNames(toymodel(), toyterms)
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}

	// the vocabulary only has 4 terms, so the 5-term label uses all of them
	if names[0] != "leak pipe rent fee" {
		t.Errorf("unexpected name for topic 0: %q", names[0])
	}
	if names[1] != "fee rent leak pipe" && names[1] != "fee rent pipe leak" {
		t.Errorf("unexpected name for topic 1: %q", names[1])
	}
}

func TestProportions(t *testing.T) {
	t.Parallel()

	props := Proportions(toymodel())
	want := []float64{(0.8 + 0.3 + 0.5) / 3, (0.2 + 0.7 + 0.5) / 3}
	for i := range want {
		if math.Abs(props[i]-want[i]) > 1e-12 {
			t.Errorf("proportion %d: expected %v, got %v", i, want[i], props[i])
		}
	}
}

func TestPrimaryTopics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  []float64
		want int
	}{
		{"clear winner", []float64{0.3, 0.3, 0.4}, 2},
		{"tie goes low", []float64{0.5, 0.5, 0.0}, 0},
		{"three-way tie", []float64{0.34, 0.33, 0.33}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mo := &topics.Model{
				K:         3,
				TopicTerm: mat.NewDense(3, 3, nil),
				DocTopic:  mat.NewDense(1, 3, tt.row),
			}
			got := PrimaryTopics(mo)
			if got[0] != tt.want {
				t.Errorf("expected primary topic %d, got %d", tt.want, got[0])
			}
		})
	}
}

func TestPrimaryCounts(t *testing.T) {
	t.Parallel()

	counts := PrimaryCounts([]int{0, 1, 1, 2, 1}, 3)
	want := []int{1, 3, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("count %d: expected %d, got %d", i, want[i], counts[i])
		}
	}
}
