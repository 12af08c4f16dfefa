//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
)

//
// LIBRARY-BACKED INFERENCE
//

// NlpEngine - the online collapsed variational LDA from james-bowman/nlp behind the
// same Engine seam; a single worker and a seeded generator keep the update sequence
// reproducible, though the numbers differ from the Gibbs engine's
type NlpEngine struct {
	Iterations int
	Seed       uint64
}

func NewNlpEngine(iterations int, seed uint64) *NlpEngine {
	return &NlpEngine{
		Iterations: iterations,
		Seed:       seed,
	}
}

// Fit - model the corpus and reshape the library's output into a Model
func (n *NlpEngine) Fit(m *dtm.Matrix, k int) (*Model, error) {
	if e := checkfit(m, k); e != nil {
		return nil, e
	}

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = n.Iterations
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(n.Seed))

	// the library wants terms as rows and documents as columns
	docsOverTopics, err := lda.FitTransform(m.TermDoc())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFit, err)
	}
	topicsOverWords := lda.Components()

	d, v := m.Counts.Dims()

	model := &Model{
		K:         k,
		TopicTerm: denseclone(topicsOverWords, k, v),
		DocTopic:  transposed(docsOverTopics, d, k),
	}
	normalizerows(model.TopicTerm)
	normalizerows(model.DocTopic)

	return model, nil
}
