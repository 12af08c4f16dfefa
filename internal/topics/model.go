//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"errors"
	"fmt"
	"math"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrFit - a degenerate matrix reached the fitter
	ErrFit = errors.New("cannot fit a model to a degenerate document-term matrix")
	// ErrInvalidTopicCount - K makes no sense for this corpus
	ErrInvalidTopicCount = errors.New("invalid topic count")
)

// Model - the fitted parameters of one LDA run; read-only once produced
type Model struct {
	K             int
	TopicTerm     *mat.Dense // K × vocabulary; each row is a topic's distribution over terms and sums to 1
	DocTopic      *mat.Dense // documents × K; each row is a document's distribution over topics and sums to 1
	LogLikelihood []float64  // trace collected while sampling; empty for engines that keep none
}

// Engine - the narrow seam between the pipeline and whatever inference implementation
// sits behind it; implementations must be deterministic for a fixed seed
type Engine interface {
	Fit(m *dtm.Matrix, k int) (*Model, error)
}

// checkfit - shared argument validation for the engines
func checkfit(m *dtm.Matrix, k int) error {
	d, v := m.Counts.Dims()
	if d == 0 || v == 0 {
		return ErrFit
	}
	if k <= 0 {
		return fmt.Errorf("%w: k=%d", ErrInvalidTopicCount, k)
	}
	if k > v {
		return fmt.Errorf("%w: k=%d exceeds vocabulary size %d", ErrInvalidTopicCount, k, v)
	}
	return nil
}

// PointLogLikelihood - log p(corpus | model) evaluated at the fitted parameters;
// the fallback likelihood for engines that keep no sampling trace
func (mo *Model) PointLogLikelihood(m *dtm.Matrix) float64 {
	var ll float64
	m.Counts.DoNonZero(func(i, j int, v float64) {
		var p float64
		for k := 0; k < mo.K; k++ {
			p += mo.DocTopic.At(i, k) * mo.TopicTerm.At(k, j)
		}
		if p > 0 {
			ll += v * math.Log(p)
		}
	})
	return ll
}

// denseclone - copy an arbitrary matrix into a fresh r × c dense matrix
func denseclone(src mat.Matrix, r int, c int) *mat.Dense {
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, src.At(i, j))
		}
	}
	return d
}

// transposed - copy an arbitrary matrix into a fresh c × r dense matrix, flipped
func transposed(src mat.Matrix, r int, c int) *mat.Dense {
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, src.At(j, i))
		}
	}
	return d
}

// normalizerows - scale every row of a dense matrix to sum to 1
func normalizerows(d *mat.Dense) {
	r, _ := d.Dims()
	for i := 0; i < r; i++ {
		row := d.RawRowView(i)
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum > 0 {
			for j := range row {
				row[j] /= sum
			}
		}
	}
}
