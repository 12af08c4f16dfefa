//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/brandonlloydshields/textanalytics/internal/gen"
	"github.com/brandonlloydshields/textanalytics/internal/ksel"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"github.com/brandonlloydshields/textanalytics/internal/vv"
	"github.com/olekukonko/tablewriter"
)

//
// DERIVATIONS OVER THE FITTED MODEL
//

// TermWeight - one vocabulary term and its probability inside a topic
type TermWeight struct {
	Term        string
	Probability float64
}

// TopTerms - the N most probable terms per topic; ties keep vocabulary order
func TopTerms(mo *topics.Model, terms []string, n int) [][]TermWeight {
	k, v := mo.TopicTerm.Dims()
	if n > v {
		n = v
	}

	tops := make([][]TermWeight, k)
	for t := 0; t < k; t++ {
		order := gen.DescendingOrder(mo.TopicTerm.RawRowView(t))
		tw := make([]TermWeight, n)
		for i := 0; i < n; i++ {
			tw[i] = TermWeight{
				Term:        terms[order[i]],
				Probability: mo.TopicTerm.At(t, order[i]),
			}
		}
		tops[t] = tw
	}
	return tops
}

// TopicNames - a display label per topic: its top terms joined with single spaces
func TopicNames(mo *topics.Model, terms []string) []string {
	tops := TopTerms(mo, terms, vv.TOPICNAMETERMS)
	names := make([]string, len(tops))
	for t, tw := range tops {
		ww := make([]string, len(tw))
		for i, w := range tw {
			ww[i] = w.Term
		}
		names[t] = strings.Join(ww, " ")
	}
	return names
}

// Proportions - mean probability mass per topic across all documents
func Proportions(mo *topics.Model) []float64 {
	d, k := mo.DocTopic.Dims()
	props := make([]float64, k)
	for i := 0; i < d; i++ {
		for t := 0; t < k; t++ {
			props[t] += mo.DocTopic.At(i, t)
		}
	}
	for t := range props {
		props[t] /= float64(d)
	}
	return props
}

// PrimaryTopics - the most probable topic per document; the lowest topic index
// wins a tie, so the strict ">" comparison below is load-bearing
func PrimaryTopics(mo *topics.Model) []int {
	d, k := mo.DocTopic.Dims()
	winners := make([]int, d)
	for i := 0; i < d; i++ {
		best := 0
		max := mo.DocTopic.At(i, 0)
		for t := 1; t < k; t++ {
			if mo.DocTopic.At(i, t) > max {
				best = t
				max = mo.DocTopic.At(i, t)
			}
		}
		winners[i] = best
	}
	return winners
}

// PrimaryCounts - how many documents have each topic as their primary topic
func PrimaryCounts(assignments []int, k int) []int {
	counts := make([]int, k)
	for _, t := range assignments {
		counts[t] += 1
	}
	return counts
}

//
// CONSOLE OUTPUT
//

// PrintSweep - the (K, metric, value) table from the topic-count sweep
func PrintSweep(candidates []ksel.Candidate) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{"K"}, ksel.MetricNames...))
	for _, c := range candidates {
		row := []string{fmt.Sprintf("%d", c.K)}
		for _, name := range ksel.MetricNames {
			row = append(row, fmt.Sprintf("%.4f", c.Values[name]))
		}
		table.Append(row)
	}
	table.Render()
}

// PrintTopTerms - the top-N terms for every topic
func PrintTopTerms(tops [][]TermWeight) {
	fmt.Printf("\ntop %d terms per topic\n", len(tops[0]))
	for t, tw := range tops {
		ww := make([]string, len(tw))
		for i, w := range tw {
			ww[i] = w.Term
		}
		fmt.Printf("topic %d:\t%s\n", t+1, strings.Join(ww, ", "))
	}
}

// PrintProportions - mean topic proportions, sorted descending
func PrintProportions(props []float64, names []string) {
	fmt.Printf("\ntopic proportions\n")
	for _, t := range gen.DescendingOrder(props) {
		fmt.Printf("%.3f : %s\n", props[t], names[t])
	}
}

// PrintPrimaryCounts - documents per primary topic, sorted descending
func PrintPrimaryCounts(counts []int, names []string) {
	vals := make([]float64, len(counts))
	for i, c := range counts {
		vals[i] = float64(c)
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	fmt.Printf("\ndocuments per primary topic\n")
	for _, t := range gen.DescendingOrder(vals) {
		fmt.Printf("%d (%.1f%%) : %s\n", counts[t], float64(counts[t])/float64(total)*100, names[t])
	}
}

// PrintAssignments - the final (primary topic, original comment) table
func PrintAssignments(assignments []int, names []string, comments []string) {
	fmt.Printf("\nprimary topic per comment\n")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Topic", "Comment"})
	table.SetColWidth(96)
	for i, t := range assignments {
		table.Append([]string{names[t], comments[i]})
	}
	table.Render()
}

// PrintTFIDF - top terms by mean tf-idf weight under the alternate weighting
func PrintTFIDF(m *dtm.Matrix, n int) {
	w := m.TFIDF()
	r, c := w.Dims()

	means := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			means[j] += w.At(i, j)
		}
	}
	for j := range means {
		means[j] /= float64(r)
	}

	if n > c {
		n = c
	}

	order := gen.DescendingOrder(means)
	fmt.Printf("\ntop %d terms by mean tf-idf weight\n", n)
	for i := 0; i < n; i++ {
		fmt.Printf("%.4f : %s\n", means[order[i]], m.Terms[order[i]])
	}
}
