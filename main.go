//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"github.com/brandonlloydshields/textanalytics/internal/corpus"
	"github.com/brandonlloydshields/textanalytics/internal/dtm"
	"github.com/brandonlloydshields/textanalytics/internal/ksel"
	"github.com/brandonlloydshields/textanalytics/internal/lnch"
	"github.com/brandonlloydshields/textanalytics/internal/prep"
	"github.com/brandonlloydshields/textanalytics/internal/report"
	"github.com/brandonlloydshields/textanalytics/internal/topics"
	"github.com/brandonlloydshields/textanalytics/internal/viz"
)

func main() {
	lnch.ConfigAtLaunch()
	cfg := lnch.Config
	msg := lnch.Msg

	lnch.PrintVersion(*cfg)

	start := time.Now()
	previous := time.Now()

	// [a] load the comments and the stopword list
	comments, e := corpus.LoadComments(cfg.CSVFile, cfg.TextColumn)
	msg.EF(e, "LoadComments()")

	stops, e := corpus.LoadStopwords(cfg.StopSource)
	msg.EF(e, "LoadStopwords()")
	msg.Timer("A1", fmt.Sprintf("%d comments and %d stopwords loaded", len(comments), len(stops)), start, previous)

	// [b] normalize the text
	previous = time.Now()
	cleaned := prep.Clean(comments, stops)
	msg.Timer("B1", "comments cleaned and stemmed", start, previous)

	// [c] vectorize; rows with nothing left are dropped together with their comments
	previous = time.Now()
	m, kept, e := dtm.Build(cleaned, cfg.MinDocFreq)
	msg.EF(e, "dtm.Build()")
	retained := dtm.Align(comments, kept)
	msg.Timer("C1", fmt.Sprintf("%d×%d document-term matrix built (%d empty documents dropped)",
		m.Docs(), m.Vocab(), len(comments)-len(kept)), start, previous)

	// one construction for both the sweep and the final fit
	mkengine := func(seed uint64) topics.Engine {
		switch cfg.Engine {
		case "nlp":
			return topics.NewNlpEngine(cfg.Iterations, seed)
		default:
			return topics.NewGibbsEngine(cfg.Iterations, cfg.BurnIn, seed)
		}
	}

	// [d] sweep the candidate topic counts; K itself stays a human decision
	if !cfg.SkipSweep {
		previous = time.Now()
		candidates, err := ksel.Run(m, ksel.SweepConfig{
			Low:        cfg.SweepLow,
			High:       cfg.SweepHigh,
			Iterations: cfg.Iterations,
			BurnIn:     cfg.BurnIn,
			Workers:    cfg.WorkerCount,
			Seed:       cfg.Seed,
			Engine:     mkengine,
		})
		msg.EF(err, "ksel.Run()")
		report.PrintSweep(candidates)

		err = viz.MetricsPlot(candidates, cfg.PlotFile)
		msg.EF(err, "viz.MetricsPlot()")
		msg.Timer("D1", fmt.Sprintf("topic-count sweep done; metrics plot written to '%s'", cfg.PlotFile), start, previous)
	}

	// [e] the final fit
	previous = time.Now()
	model, e := mkengine(cfg.Seed).Fit(m, cfg.Topics)
	msg.EF(e, "engine.Fit()")
	msg.Timer("E1", fmt.Sprintf("%d-topic model fitted (%s engine, %d iterations)",
		cfg.Topics, cfg.Engine, cfg.Iterations), start, previous)

	// [f] report
	names := report.TopicNames(model, m.Terms)
	assignments := report.PrimaryTopics(model)

	report.PrintTopTerms(report.TopTerms(model, m.Terms, cfg.TopTerms))
	report.PrintProportions(report.Proportions(model), names)
	report.PrintPrimaryCounts(report.PrimaryCounts(assignments, model.K), names)
	report.PrintAssignments(assignments, names, retained)

	if cfg.TFIDF {
		report.PrintTFIDF(m, cfg.TopTerms)
	}

	if cfg.ScatterFile != "" {
		e = viz.DocumentScatter(model, assignments, names, cfg.ScatterFile)
		msg.EF(e, "viz.DocumentScatter()")
		msg.NOTE(fmt.Sprintf("document scatter written to '%s'", cfg.ScatterFile))
	}

	msg.MAND(fmt.Sprintf("run complete in %.3fs", time.Now().Sub(start).Seconds()))
}
