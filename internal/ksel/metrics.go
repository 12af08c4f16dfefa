//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ksel

import (
	"math"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// MODEL-SELECTION METRICS
//
// the standard quartet for picking K by eye: maximize Griffiths2004 and
// Deveaud2014, minimize CaoJuan2009 and Arun2010
//

const (
	GRIFFITHS = "Griffiths2004"
	CAOJUAN   = "CaoJuan2009"
	ARUN      = "Arun2010"
	DEVEAUD   = "Deveaud2014"

	EPS = 1e-12
)

// MetricNames - display order for tables and the plot
var MetricNames = []string{GRIFFITHS, CAOJUAN, ARUN, DEVEAUD}

// Maximize - true for the metrics where bigger is better
var Maximize = map[string]bool{GRIFFITHS: true, CAOJUAN: false, ARUN: false, DEVEAUD: true}

// Griffiths2004 - log of the harmonic mean of the sampled likelihoods; falls back to
// the point likelihood when the engine kept no trace
func Griffiths2004(mo *topics.Model, m *dtm.Matrix) float64 {
	if len(mo.LogLikelihood) == 0 {
		return mo.PointLogLikelihood(m)
	}

	neg := make([]float64, len(mo.LogLikelihood))
	for i, ll := range mo.LogLikelihood {
		neg[i] = -ll
	}
	return math.Log(float64(len(neg))) - floats.LogSumExp(neg)
}

// CaoJuan2009 - mean pairwise cosine similarity between topic-term rows
func CaoJuan2009(mo *topics.Model) float64 {
	k, _ := mo.TopicTerm.Dims()
	if k < 2 {
		return 0
	}

	var total float64
	var pairs int
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			ra := mo.TopicTerm.RawRowView(a)
			rb := mo.TopicTerm.RawRowView(b)
			na := floats.Norm(ra, 2)
			nb := floats.Norm(rb, 2)
			if na > 0 && nb > 0 {
				total += floats.Dot(ra, rb) / (na * nb)
			}
			pairs += 1
		}
	}
	return total / float64(pairs)
}

// Arun2010 - symmetric KL divergence between the singular-value distribution of the
// topic-term matrix and the length-weighted topic distribution of the corpus
func Arun2010(mo *topics.Model, m *dtm.Matrix) float64 {
	k, _ := mo.TopicTerm.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(mo.TopicTerm, mat.SVDNone); !ok {
		return math.NaN()
	}
	cm1 := svd.Values(nil)

	lens := m.DocLengths()
	cm2 := make([]float64, k)
	d, _ := mo.DocTopic.Dims()
	for i := 0; i < d; i++ {
		for t := 0; t < k; t++ {
			cm2[t] += lens[i] * mo.DocTopic.At(i, t)
		}
	}

	norm(cm1)
	norm(cm2)

	var div float64
	for t := 0; t < k && t < len(cm1); t++ {
		div += cm1[t] * math.Log((cm1[t]+EPS)/(cm2[t]+EPS))
		div += cm2[t] * math.Log((cm2[t]+EPS)/(cm1[t]+EPS))
	}
	return div
}

// Deveaud2014 - mean pairwise Jensen-Shannon style divergence between topics
func Deveaud2014(mo *topics.Model) float64 {
	k, v := mo.TopicTerm.Dims()
	if k < 2 {
		return 0
	}

	var total float64
	var pairs int
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			ra := mo.TopicTerm.RawRowView(a)
			rb := mo.TopicTerm.RawRowView(b)
			var js float64
			for w := 0; w < v; w++ {
				js += 0.5 * ra[w] * math.Log((ra[w]+EPS)/(rb[w]+EPS))
				js += 0.5 * rb[w] * math.Log((rb[w]+EPS)/(ra[w]+EPS))
			}
			total += js
			pairs += 1
		}
	}
	return total / float64(pairs)
}

func norm(v []float64) {
	sum := floats.Sum(v)
	if sum > 0 {
		floats.Scale(1/sum, v)
	}
}
