//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "TextAnalytics"
	SHORTNAME = "TA"
	VERSION   = "1.0.0"

	CONFIGNAME = "ta-conf.json"

	DEFAULTCSVFILE    = "customer_comments.csv"
	DEFAULTTEXTCOL    = "Customer Comment"
	DEFAULTSTOPSOURCE = "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt"

	DEFAULTTOPICS     = 4
	DEFAULTITERATIONS = 500
	DEFAULTBURNIN     = 50
	DEFAULTSEED       = 1234
	DEFAULTMINDOCFREQ = 2
	DEFAULTSWEEPLOW   = 2
	DEFAULTSWEEPHIGH  = 20
	DEFAULTWORKERS    = 4

	TOPTERMS       = 10
	TOPICNAMETERMS = 5

	METRICSPLOTFILE = "topic-count-metrics.html"
	SCATTERPLOTFILE = "document-scatter.html"

	WRITEPERMS = 0644
)
