//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"
	"os"

	"github.com/brandonlloydshields/textanalytics/internal/ksel"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// GRAPHING
//

const (
	CHRTWIDTH  = "1200px"
	CHRTHEIGHT = "800px"
	SAVETYPE   = "png"
	SAVESTR    = "Save to file..."
)

// MetricsPlot - render the topic-count sweep as a line chart, one min-max normalized
// series per metric, so a human can pick K by eye
func MetricsPlot(candidates []ksel.Candidate, path string) error {
	const (
		TITLESTR = "Topic-count selection metrics"
		SUBSTR   = "minimize: CaoJuan2009, Arun2010; maximize: Griffiths2004, Deveaud2014"
	)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBSTR}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithToolboxOpts(savebox(TITLESTR)),
		charts.WithXAxisOpts(opts.XAxis{Name: "topics"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "normalized value"}),
	)

	xx := make([]string, len(candidates))
	for i, c := range candidates {
		xx[i] = fmt.Sprintf("%d", c.K)
	}
	line.SetXAxis(xx)

	normalized := ksel.Normalized(candidates)
	for _, name := range ksel.MetricNames {
		vals := normalized[name]
		data := make([]opts.LineData, len(vals))
		for i, v := range vals {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data)
	}

	return renderpage(line, path)
}

// DocumentScatter - t-SNE the doc-topic matrix down to two dimensions and scatter the
// documents, one series per primary topic
func DocumentScatter(mo *topics.Model, assignments []int, names []string, path string) error {
	const (
		TITLESTR = "Documents by topic (t-SNE)"
		LEARNRT  = 100
		MAXITER  = 300
		VERBOSE  = false
	)

	d, k := mo.DocTopic.Dims()

	// perplexity has to stay well under the number of points
	perplex := float64(30)
	if float64(d-1)/3 < perplex {
		perplex = float64(d-1) / 3
	}
	if perplex < 1 {
		perplex = 1
	}

	dd := make([]float64, 0, d*k)
	for i := 0; i < d; i++ {
		for t := 0; t < k; t++ {
			dd = append(dd, mo.DocTopic.At(i, t))
		}
	}
	wv := mat.NewDense(d, k, dd)

	t := tsne.NewTSNE(2, perplex, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithToolboxOpts(savebox(TITLESTR)),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	series := make([][]opts.ScatterData, k)
	for i := 0; i < d; i++ {
		topic := assignments[i]
		series[topic] = append(series[topic], opts.ScatterData{
			Value: []interface{}{t.Y.At(i, 0), t.Y.At(i, 1)},
		})
	}

	for topic := 0; topic < k; topic++ {
		label := fmt.Sprintf("topic %d", topic+1)
		if topic < len(names) {
			label = names[topic]
		}
		scatter.AddSeries(label, series[topic])
	}

	return renderpage(scatter, path)
}

// savebox - a toolbox with just the save-as-image feature
func savebox(name string) opts.Toolbox {
	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  name,
		Title: SAVESTR, // get chinese if ""
	}
	return opts.Toolbox{
		Show:    true,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}
}

// renderpage - put one chart on a page and write it to an html file
func renderpage(c components.Charter, path string) error {
	p := components.NewPage()
	p.AddCharts(c)
	p.Validate()

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	return p.Render(f)
}
