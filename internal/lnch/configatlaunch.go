//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/brandonlloydshields/textanalytics/internal/mm"
	"github.com/brandonlloydshields/textanalytics/internal/vv"
)

var (
	Config *CurrentConfiguration
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

type CurrentConfiguration struct {
	BlackAndWhite bool
	BurnIn        int
	CSVFile       string
	Engine        string // "gibbs" or "nlp"
	Iterations    int
	LogLevel      int
	MinDocFreq    int
	PlotFile      string
	ScatterFile   string
	Seed          uint64
	SkipSweep     bool
	StopSource    string
	SweepHigh     int
	SweepLow      int
	TextColumn    string
	TFIDF         bool
	Topics        int
	TopTerms      int
	WorkerCount   int
}

// BuildDefaultConfig - a configuration with the stock settings
func BuildDefaultConfig() *CurrentConfiguration {
	wc := vv.DEFAULTWORKERS
	if runtime.NumCPU() < wc {
		wc = runtime.NumCPU()
	}

	return &CurrentConfiguration{
		BlackAndWhite: false,
		BurnIn:        vv.DEFAULTBURNIN,
		CSVFile:       vv.DEFAULTCSVFILE,
		Engine:        "gibbs",
		Iterations:    vv.DEFAULTITERATIONS,
		LogLevel:      mm.MSGNOTE,
		MinDocFreq:    vv.DEFAULTMINDOCFREQ,
		PlotFile:      vv.METRICSPLOTFILE,
		ScatterFile:   "",
		Seed:          vv.DEFAULTSEED,
		SkipSweep:     false,
		StopSource:    vv.DEFAULTSTOPSOURCE,
		SweepHigh:     vv.DEFAULTSWEEPHIGH,
		SweepLow:      vv.DEFAULTSWEEPLOW,
		TextColumn:    vv.DEFAULTTEXTCOL,
		TFIDF:         false,
		Topics:        vv.DEFAULTTOPICS,
		TopTerms:      vv.TOPTERMS,
		WorkerCount:   wc,
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "ConfigAtLaunch() was given garbage input for '%s': '%s'"
	)

	Config = BuildDefaultConfig()

	cf := vv.CONFIGNAME

	// a config file is optional; the flags can do everything
	if loadedcfg, e := os.Open(cf); e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		}
	}

	args := os.Args[1:len(os.Args)]

	atoi := func(flag string, s string) int {
		n, e := strconv.Atoi(s)
		if e != nil {
			Msg.MAND(fmt.Sprintf(FAIL2, flag, s))
			Msg.ExitOrHang(1)
		}
		return n
	}

	for i, a := range args {
		switch a {
		case "-h":
			printhelp()
			os.Exit(0)
		case "-v":
			PrintVersion(*Config)
			os.Exit(0)
		case "-bw":
			Config.BlackAndWhite = true
		case "-csv":
			Config.CSVFile = args[i+1]
		case "-col":
			Config.TextColumn = args[i+1]
		case "-sw":
			Config.StopSource = args[i+1]
		case "-k":
			Config.Topics = atoi(a, args[i+1])
		case "-it":
			Config.Iterations = atoi(a, args[i+1])
		case "-bi":
			Config.BurnIn = atoi(a, args[i+1])
		case "-sd":
			Config.Seed = uint64(atoi(a, args[i+1]))
		case "-mf":
			Config.MinDocFreq = atoi(a, args[i+1])
		case "-kl":
			Config.SweepLow = atoi(a, args[i+1])
		case "-kh":
			Config.SweepHigh = atoi(a, args[i+1])
		case "-ns":
			Config.SkipSweep = true
		case "-ti":
			Config.TFIDF = true
		case "-tt":
			Config.TopTerms = atoi(a, args[i+1])
		case "-en":
			Config.Engine = args[i+1]
		case "-wc":
			Config.WorkerCount = atoi(a, args[i+1])
		case "-pf":
			Config.PlotFile = args[i+1]
		case "-sc":
			Config.ScatterFile = args[i+1]
		case "-gl":
			Config.LogLevel = atoi(a, args[i+1])
		}
	}

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite
}

// PrintVersion - send the version info to the terminal
func PrintVersion(c CurrentConfiguration) {
	// sample: "TextAnalytics (v.1.0.0) [gl=2]"
	sn := fmt.Sprintf("C1%sC0 (C5v.%sC0)", vv.MYNAME, vv.VERSION)
	sn += fmt.Sprintf(" [gl=%d]", c.LogLevel)
	Msg.MAND(Msg.Color(sn))
}

func printhelp() {
	const (
		HELP = `command line options:
   -bw      black and white only; no colors on the terminal
   -bi  NUM burn-in iterations before the likelihood trace starts (default: %d)
   -col STR name of the CSV column that holds the comments (default: "%s")
   -csv STR path to the comment file (default: "%s")
   -en  STR topic model engine: "gibbs" or "nlp" (default: gibbs)
   -gl  NUM log level; 0 is quiet and 4 is verbose (default: %d)
   -h       print this help information
   -it  NUM sampling iterations for the final model (default: %d)
   -k   NUM number of topics for the final model (default: %d)
   -kh  NUM top of the topic-count sweep range (default: %d)
   -kl  NUM bottom of the topic-count sweep range (default: %d)
   -mf  NUM minimum number of documents a term must appear in (default: %d)
   -ns      no sweep; skip the topic-count selection pass
   -pf  STR html file for the sweep metrics plot (default: "%s")
   -sc  STR html file for the t-SNE document scatter; empty disables it
   -sd  NUM random seed (default: %d)
   -sw  STR stopword list: local path or url (default: the stopwords-iso list)
   -ti      also report top terms by mean tf-idf weight
   -tt  NUM number of top terms to print per topic (default: %d)
   -v       print version and exit
   -wc  NUM workers for the topic-count sweep (default: NumCPU, capped at %d)
a '%s' file in the working directory can set the same values as JSON`
	)
	d := BuildDefaultConfig()
	fmt.Printf(HELP+"\n", d.BurnIn, d.TextColumn, d.CSVFile, d.LogLevel, d.Iterations, d.Topics,
		d.SweepHigh, d.SweepLow, d.MinDocFreq, d.PlotFile, d.Seed, d.TopTerms, vv.DEFAULTWORKERS, vv.CONFIGNAME)
}
