package summarizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseHighlights(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "dash bullets",
			raw:  "- first insight\n- second insight\n- third insight",
			want: []string{"first insight", "second insight", "third insight"},
		},
		{
			name: "mixed markers",
			raw:  "• dot bullet\n* star bullet\n- dash bullet",
			want: []string{"dot bullet", "star bullet", "dash bullet"},
		},
		{
			name: "unmarked lines accepted while under the cap",
			raw:  "- first\n- second\nthird\n- fourth\n- fifth\n- sixth",
			want: []string{"first", "second", "third", "fourth", "fifth"},
		},
		{
			name: "caps at five",
			raw:  "- a\n- b\n- c\n- d\n- e\n- f\n- g",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "blank lines ignored",
			raw:  "- first\n\n\n- second\n",
			want: []string{"first", "second"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "  \n \t \n",
			want: nil,
		},
		{
			name: "bare marker dropped",
			raw:  "-\n- real insight",
			want: []string{"real insight"},
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  -   padded insight   \n",
			want: []string{"padded insight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHighlights(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseHighlights() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseHighlights_NeverExceedsCap(t *testing.T) {
	raw := strings.Repeat("an unmarked line\n", 20)
	if got := parseHighlights(raw); len(got) != maxHighlights {
		t.Errorf("parseHighlights() returned %d highlights, want %d", len(got), maxHighlights)
	}
}
