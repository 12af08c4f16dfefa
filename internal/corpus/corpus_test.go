//    textanalytics
//    Copyright: B L Shields 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadComments(t *testing.T) {
	t.Parallel()

	comments, err := LoadComments(filepath.Join("testdata", "comments.csv"), "Customer Comment")
	if err != nil {
		t.Fatalf("LoadComments() returned an error: %v", err)
	}

	expected := []string{
		"The landlord never fixed the leaking pipes",
		"Move-in day went smoothly and the staff were great",
		"",
		"Rent went up 200 dollars with no notice",
	}

	if len(comments) != len(expected) {
		t.Fatalf("expected %d comments, got %d", len(expected), len(comments))
	}
	for i, want := range expected {
		if comments[i] != want {
			t.Errorf("comment %d: expected %q, got %q", i, want, comments[i])
		}
	}
}

func TestLoadCommentsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		column string
	}{
		{"missing file", filepath.Join("testdata", "no-such-file.csv"), "Customer Comment"},
		{"missing column", filepath.Join("testdata", "comments.csv"), "Complaint Text"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadComments(tt.path, tt.column)
			if !errors.Is(err, ErrResourceNotFound) {
				t.Errorf("expected ErrResourceNotFound, got %v", err)
			}
		})
	}
}

func TestLoadStopwords(t *testing.T) {
	t.Parallel()

	stops, err := LoadStopwords(filepath.Join("testdata", "stopwords.txt"))
	if err != nil {
		t.Fatalf("LoadStopwords() returned an error: %v", err)
	}

	// blank lines skipped; entries lowercased
	if len(stops) != 4 {
		t.Fatalf("expected 4 stopwords, got %d", len(stops))
	}
	for _, w := range []string{"the", "and", "was", "were"} {
		if _, ok := stops[w]; !ok {
			t.Errorf("expected %q in the stopword set", w)
		}
	}

	_, err = LoadStopwords(filepath.Join("testdata", "no-such-list.txt"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound, got %v", err)
	}
}
