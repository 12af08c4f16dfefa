//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/brandonlloydshields/textanalytics/internal/gen"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

//
// DOCUMENT-TERM MATRIX
//

var (
	// ErrEmptyVocabulary - the document frequency threshold pruned every term
	ErrEmptyVocabulary = errors.New("empty vocabulary: every term was pruned")
	// ErrEmptyCorpusAfterPruning - every document lost all of its terms
	ErrEmptyCorpusAfterPruning = errors.New("empty corpus: every document was pruned")
)

// Matrix - a sparse document-term count matrix over a pruned vocabulary
type Matrix struct {
	Terms  []string       // column order; sorted so runs are reproducible
	Index  map[string]int // term -> column
	Counts *sparse.CSR    // docs × terms
}

// Docs - number of retained documents
func (m *Matrix) Docs() int {
	r, _ := m.Counts.Dims()
	return r
}

// Vocab - number of vocabulary terms
func (m *Matrix) Vocab() int {
	_, c := m.Counts.Dims()
	return c
}

// TermDoc - the transposed terms × docs view some third-party modelers want
func (m *Matrix) TermDoc() mat.Matrix {
	return m.Counts.T()
}

// DocLengths - token count per document
func (m *Matrix) DocLengths() []float64 {
	r, c := m.Counts.Dims()
	lens := make([]float64, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			lens[i] += m.Counts.At(i, j)
		}
	}
	return lens
}

// DocFrequencies - number of documents each term appears in
func (m *Matrix) DocFrequencies() []int {
	_, c := m.Counts.Dims()
	df := make([]int, c)
	m.Counts.DoNonZero(func(i, j int, v float64) {
		if v > 0 {
			df[j] += 1
		}
	})
	return df
}

// Build - vocabulary + count matrix from cleaned documents; terms below the document
// frequency threshold are pruned, and documents left with no terms are dropped.
// The second return value maps matrix rows back to positions in the input slice so
// that the retained comments stay aligned with the rows.
func Build(cleaned []string, minDocFreq int) (*Matrix, []int, error) {
	if minDocFreq < 1 {
		minDocFreq = 1
	}

	// [a] per-term document frequency
	df := make(map[string]int)
	for _, doc := range cleaned {
		for w := range gen.ToSet(strings.Fields(doc)) {
			df[w] += 1
		}
	}

	// [b] the surviving vocabulary, in stable order
	var terms []string
	for _, w := range gen.SortedMapKeys(df) {
		if df[w] >= minDocFreq {
			terms = append(terms, w)
		}
	}
	if len(terms) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	index := make(map[string]int, len(terms))
	for i, w := range terms {
		index[w] = i
	}

	// [c] counts, assembled row by row with ascending columns so two builds of the
	// same corpus lay the matrix out identically; rows with nothing left are dropped
	// and the kept row indices remembered
	var kept []int
	ia := []int{0}
	var ja []int
	var data []float64

	for i, doc := range cleaned {
		rowcounts := make(map[int]float64)
		for _, w := range strings.Fields(doc) {
			if j, ok := index[w]; ok {
				rowcounts[j] += 1
			}
		}
		if len(rowcounts) == 0 {
			continue
		}
		kept = append(kept, i)

		cols := gen.MapKeysIntoSlice(rowcounts)
		sort.Ints(cols)
		for _, j := range cols {
			ja = append(ja, j)
			data = append(data, rowcounts[j])
		}
		ia = append(ia, len(ja))
	}
	if len(kept) == 0 {
		return nil, nil, ErrEmptyCorpusAfterPruning
	}

	m := &Matrix{
		Terms:  terms,
		Index:  index,
		Counts: sparse.NewCSR(len(kept), len(terms), ia, ja, data),
	}

	return m, kept, nil
}

// Align - select the retained documents out of the original ordered slice
func Align(docs []string, kept []int) []string {
	out := make([]string, len(kept))
	for i, idx := range kept {
		out[i] = docs[idx]
	}
	return out
}

// TFIDF - the weighted variant of the matrix: term frequency scaled by document
// length, smoothed inverse document frequency, and each row normalized to sum to 1
func (m *Matrix) TFIDF() *mat.Dense {
	r, c := m.Counts.Dims()
	df := m.DocFrequencies()
	lens := m.DocLengths()

	w := mat.NewDense(r, c, nil)
	m.Counts.DoNonZero(func(i, j int, v float64) {
		tf := v / lens[i]
		idf := math.Log2((1 + float64(r)) / (1 + float64(df[j])))
		w.Set(i, j, tf*idf)
	})

	for i := 0; i < r; i++ {
		row := w.RawRowView(i)
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

	return w
}
