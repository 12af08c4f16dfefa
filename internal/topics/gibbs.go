//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"math"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

//
// COLLAPSED GIBBS SAMPLING
//

const (
	DEFAULTALPHAWEIGHT = 50.0 // alpha = DEFAULTALPHAWEIGHT / k
	DEFAULTBETA        = 0.1
	LLINTERVAL         = 10 // record the log-likelihood every N post-burn-in iterations
)

// GibbsEngine - collapsed Gibbs sampling inference; bit-identical output for a
// fixed (seed, matrix, k, iterations) quadruple
type GibbsEngine struct {
	Iterations int
	BurnIn     int
	Alpha      float64 // 0 means "use DEFAULTALPHAWEIGHT / k"
	Beta       float64 // 0 means "use DEFAULTBETA"
	Seed       uint64
}

func NewGibbsEngine(iterations int, burnin int, seed uint64) *GibbsEngine {
	return &GibbsEngine{
		Iterations: iterations,
		BurnIn:     burnin,
		Seed:       seed,
	}
}

// Fit - run the sampler and derive the row-stochastic topic-term and doc-topic matrices
func (g *GibbsEngine) Fit(m *dtm.Matrix, k int) (*Model, error) {
	if e := checkfit(m, k); e != nil {
		return nil, e
	}

	d, v := m.Counts.Dims()

	alpha := g.Alpha
	if alpha == 0 {
		alpha = DEFAULTALPHAWEIGHT / float64(k)
	}
	beta := g.Beta
	if beta == 0 {
		beta = DEFAULTBETA
	}

	// [a] unroll the matrix into per-document token streams; CSR iterates
	// row-major with ascending columns, so the stream order is reproducible
	docs := make([][]int, d)
	m.Counts.DoNonZero(func(i, j int, val float64) {
		for n := 0; n < int(val); n++ {
			docs[i] = append(docs[i], j)
		}
	})

	// [b] counts: topic-term, doc-topic, per-topic and per-doc totals
	nwt := make([][]float64, k)
	for t := range nwt {
		nwt[t] = make([]float64, v)
	}
	ndt := make([][]float64, d)
	for i := range ndt {
		ndt[i] = make([]float64, k)
	}
	nt := make([]float64, k)
	nd := make([]float64, d)

	// [c] random topic per token to start
	rng := rand.New(rand.NewSource(g.Seed))

	z := make([][]int, d)
	for i := range docs {
		z[i] = make([]int, len(docs[i]))
		for n, w := range docs[i] {
			t := rng.Intn(k)
			z[i][n] = t
			nwt[t][w] += 1
			ndt[i][t] += 1
			nt[t] += 1
			nd[i] += 1
		}
	}

	// [d] sample
	vbeta := float64(v) * beta
	probs := make([]float64, k)
	var lls []float64

	for it := 0; it < g.Iterations; it++ {
		for i := range docs {
			for n, w := range docs[i] {
				t := z[i][n]
				nwt[t][w] -= 1
				ndt[i][t] -= 1
				nt[t] -= 1

				var total float64
				for j := 0; j < k; j++ {
					probs[j] = (ndt[i][j] + alpha) * (nwt[j][w] + beta) / (nt[j] + vbeta)
					total += probs[j]
				}

				r := rng.Float64() * total
				var cum float64
				t = k - 1
				for j := 0; j < k; j++ {
					cum += probs[j]
					if r < cum {
						t = j
						break
					}
				}

				z[i][n] = t
				nwt[t][w] += 1
				ndt[i][t] += 1
				nt[t] += 1
			}
		}

		if it >= g.BurnIn && (it-g.BurnIn)%LLINTERVAL == 0 {
			lls = append(lls, loglikelihood(nwt, nt, beta, v, k))
		}
	}

	// [e] smoothed posterior estimates; rows sum to 1 by construction
	phi := mat.NewDense(k, v, nil)
	for t := 0; t < k; t++ {
		for w := 0; w < v; w++ {
			phi.Set(t, w, (nwt[t][w]+beta)/(nt[t]+vbeta))
		}
	}

	kalpha := float64(k) * alpha
	theta := mat.NewDense(d, k, nil)
	for i := 0; i < d; i++ {
		for t := 0; t < k; t++ {
			theta.Set(i, t, (ndt[i][t]+alpha)/(nd[i]+kalpha))
		}
	}

	return &Model{
		K:             k,
		TopicTerm:     phi,
		DocTopic:      theta,
		LogLikelihood: lls,
	}, nil
}

// loglikelihood - log p(w|z) for the current state of the count tables
func loglikelihood(nwt [][]float64, nt []float64, beta float64, v int, k int) float64 {
	lgv, _ := math.Lgamma(float64(v) * beta)
	lgb, _ := math.Lgamma(beta)

	ll := float64(k) * (lgv - float64(v)*lgb)
	for t := 0; t < k; t++ {
		for w := 0; w < v; w++ {
			lg, _ := math.Lgamma(nwt[t][w] + beta)
			ll += lg
		}
		lg, _ := math.Lgamma(nt[t] + float64(v)*beta)
		ll -= lg
	}
	return ll
}
