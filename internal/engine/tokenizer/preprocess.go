package tokenizer

import (
	"regexp"

	"github.com/crimson-sun/sway/internal/pipeline"
)

// Placeholder tokens substituted by the stock rewrite rules. Every mention
// collapses to one generic token so the vectorizer learns "a user was
// mentioned" rather than vocabulary entries per username.
const (
	MentionPlaceholder = "@user"
	URLPlaceholder     = "urllink"
)

var (
	mentionPattern = regexp.MustCompile(`@\w+`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
)

// ReplaceMentions rewrites every @username to the mention placeholder.
func ReplaceMentions(text string) string {
	return mentionPattern.ReplaceAllString(text, MentionPlaceholder)
}

// ReplaceURLs rewrites every http(s) URL to the URL placeholder.
func ReplaceURLs(text string) string {
	return urlPattern.ReplaceAllString(text, URLPlaceholder)
}

// Preprocessor is a stateless pipeline step applying pure string rewrites
// uniformly to every document, in rule order.
type Preprocessor struct {
	rules []func(string) string
}

// NewPreprocessor creates a Preprocessor over the given rewrite rules. With
// no rules it passes documents through unchanged.
func NewPreprocessor(rules ...func(string) string) *Preprocessor {
	return &Preprocessor{rules: rules}
}

// FitTransform is identical to Transform: there is no state to learn.
func (p *Preprocessor) FitTransform(b pipeline.Batch, _ []string) (pipeline.Batch, error) {
	return p.Transform(b)
}

// Transform applies every rule to every document, preserving order.
func (p *Preprocessor) Transform(b pipeline.Batch) (pipeline.Batch, error) {
	out := make([]string, len(b.Docs))
	for i, doc := range b.Docs {
		for _, rule := range p.rules {
			doc = rule(doc)
		}
		out[i] = doc
	}
	return pipeline.FromDocs(out), nil
}
