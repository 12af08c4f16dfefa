//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/brandonlloydshields/textanalytics/internal/gen"
)

//
// LOADING
//

// ErrResourceNotFound - the comment file or the stopword list is unreachable or malformed
var ErrResourceNotFound = errors.New("resource not found")

// LoadComments - read the named text column of a CSV file into an ordered slice of documents
func LoadComments(path string, column string) ([]string, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: cannot open '%s'", ErrResourceNotFound, path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, e := r.Read()
	if e != nil {
		return nil, fmt.Errorf("%w: cannot read a header row from '%s'", ErrResourceNotFound, path)
	}

	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("%w: no '%s' column in '%s'", ErrResourceNotFound, column, path)
	}

	var comments []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed row in '%s': %v", ErrResourceNotFound, path, err)
		}
		if col < len(row) {
			comments = append(comments, row[col])
		} else {
			comments = append(comments, "")
		}
	}

	return comments, nil
}

// LoadStopwords - fetch a newline-delimited stopword list from a url or a local path
func LoadStopwords(src string) (map[string]struct{}, error) {
	var raw []byte

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		res, e := http.Get(src)
		if e != nil {
			return nil, fmt.Errorf("%w: cannot fetch '%s'", ErrResourceNotFound, src)
		}
		defer func() { _ = res.Body.Close() }()
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: '%s' returned status %d", ErrResourceNotFound, src, res.StatusCode)
		}
		raw, e = io.ReadAll(res.Body)
		if e != nil {
			return nil, fmt.Errorf("%w: cannot read '%s'", ErrResourceNotFound, src)
		}
	} else {
		var e error
		raw, e = os.ReadFile(src)
		if e != nil {
			return nil, fmt.Errorf("%w: cannot open '%s'", ErrResourceNotFound, src)
		}
	}

	var words []string
	for _, l := range strings.Split(string(raw), "\n") {
		w := strings.ToLower(strings.TrimSpace(l))
		if len(w) > 0 {
			words = append(words, w)
		}
	}

	return gen.ToSet(words), nil
}
