package tokenizer

import (
	"reflect"
	"testing"

	"github.com/crimson-sun/sway/internal/pipeline"
)

var tokenizeTests = []struct {
	name string
	text string
	want []string
}{
	{
		name: "simple",
		text: "Great day today",
		want: []string{"great", "day", "today"},
	},
	{
		name: "empty string",
		text: "",
		want: nil,
	},
	{
		name: "punctuation dropped",
		text: "worst. service. ever!!!",
		want: []string{"worst", "service", "ever"},
	},
	{
		name: "mention kept whole",
		text: "@user thanks a lot",
		want: []string{"@user", "thanks", "a", "lot"},
	},
	{
		name: "hashtag kept whole",
		text: "loving the new phone #blessed",
		want: []string{"loving", "the", "new", "phone", "#blessed"},
	},
	{
		name: "trailing punctuation on hashtag",
		text: "so tired #mondays...",
		want: []string{"so", "tired", "#mondays"},
	},
	{
		name: "accents stripped",
		text: "café naïve",
		want: []string{"cafe", "naive"},
	},
	{
		name: "whitespace collapsed",
		text: "one\t two\n  three",
		want: []string{"one", "two", "three"},
	},
	{
		name: "apostrophes split",
		text: "can't won't",
		want: []string{"can", "t", "won", "t"},
	},
}

func TestTokenize(t *testing.T) {
	tok := New(nil)
	for _, tt := range tokenizeTests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeStopwords(t *testing.T) {
	tok := New([]string{"the", "a", "And"})
	got := tok.Tokenize("The cat and a dog")
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestReplaceMentions(t *testing.T) {
	got := ReplaceMentions("@alice thanks, cc @bob_99")
	want := "@user thanks, cc @user"
	if got != want {
		t.Errorf("ReplaceMentions = %q, want %q", got, want)
	}
}

func TestReplaceURLs(t *testing.T) {
	got := ReplaceURLs("read this https://example.com/a?b=1 now")
	want := "read this urllink now"
	if got != want {
		t.Errorf("ReplaceURLs = %q, want %q", got, want)
	}
}

func TestPreprocessorAppliesRulesInOrder(t *testing.T) {
	p := NewPreprocessor(ReplaceMentions, ReplaceURLs)
	in := pipeline.FromDocs([]string{
		"@alice check https://t.co/xyz",
		"no rewrites here",
	})
	out, err := p.Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	want := []string{"@user check urllink", "no rewrites here"}
	if !reflect.DeepEqual(out.Docs, want) {
		t.Errorf("Transform = %v, want %v", out.Docs, want)
	}
	if out.Rows() != in.Rows() {
		t.Errorf("row count changed: %d -> %d", in.Rows(), out.Rows())
	}
}

func TestPreprocessorNoRules(t *testing.T) {
	p := NewPreprocessor()
	in := pipeline.FromDocs([]string{"@alice unchanged"})
	out, err := p.FitTransform(in, nil)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	if out.Docs[0] != "@alice unchanged" {
		t.Errorf("expected passthrough, got %q", out.Docs[0])
	}
}
