//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

//
// CLEANING
//

// the order of the stages matters: stopwords are matched against lowercased but otherwise
// untouched tokens, and stemming sees punctuation-free, digit-free text

var (
	notwordchar = regexp.MustCompile(`[^a-z0-9\s-]`)
	digitrun    = regexp.MustCompile(`[0-9]+`)
	manyspaces  = regexp.MustCompile(`\s+`)
)

// Lowercase - case-fold a document
func Lowercase(doc string) string {
	return strings.ToLower(doc)
}

// RemoveStopwords - drop every token that exactly matches a stopword
func RemoveStopwords(doc string, stops map[string]struct{}) string {
	words := strings.Fields(doc)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, isstop := stops[w]; !isstop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// StripPunctuation - delete punctuation but keep dashes that sit inside a token ("move-in")
func StripPunctuation(doc string) string {
	doc = notwordchar.ReplaceAllString(doc, "")
	words := strings.Fields(doc)
	for i := range words {
		words[i] = strings.Trim(words[i], "-")
	}
	return strings.Join(words, " ")
}

// RemoveDigits - delete digit sequences
func RemoveDigits(doc string) string {
	return digitrun.ReplaceAllString(doc, "")
}

// Stem - reduce each token to its english (porter2) stem
func Stem(doc string) string {
	words := strings.Fields(doc)
	for i := range words {
		words[i] = english.Stem(words[i], false)
	}
	return strings.Join(words, " ")
}

// CollapseWhitespace - squeeze runs of whitespace to single spaces and trim the ends
func CollapseWhitespace(doc string) string {
	return strings.TrimSpace(manyspaces.ReplaceAllString(doc, " "))
}

// CleanDocument - apply the full normalization chain to one document
func CleanDocument(doc string, stops map[string]struct{}) string {
	doc = Lowercase(doc)
	doc = RemoveStopwords(doc, stops)
	doc = StripPunctuation(doc)
	doc = RemoveDigits(doc)
	doc = Stem(doc)
	doc = CollapseWhitespace(doc)
	return doc
}

// Clean - normalize every document; the output is index-aligned with the input
func Clean(docs []string, stops map[string]struct{}) []string {
	cleaned := make([]string, len(docs))
	for i := range docs {
		cleaned[i] = CleanDocument(docs[i], stops)
	}
	return cleaned
}
