package botok

type options struct {
	dictPath      string
	adjustPath    string
	ignoreChars   []rune
	splitAffixes  bool
	spacesAsPunct bool
}

// Option configures a Tokenizer.
type Option func(*options)

// WithDictionary sets the path to the word list a Tokenizer loads at
// construction. Required: New returns an error when it is not set.
func WithDictionary(path string) Option {
	return func(o *options) { o.dictPath = path }
}

// WithAdjustments sets a path to an adjustment file applied after the
// dictionary loads. Omit to apply no adjustments.
func WithAdjustments(path string) Option {
	return func(o *options) { o.adjustPath = path }
}

// WithIgnoreChars sets codepoints CharClassifier should always treat as
// Transparent, regardless of their Unicode block.
func WithIgnoreChars(chars []rune) Option {
	return func(o *options) { o.ignoreChars = chars }
}

// WithSplitAffixes controls whether Tokenize splits a matched word
// ending in a grammatical particle into a host/affix token pair.
// Default: true.
func WithSplitAffixes(v bool) Option {
	return func(o *options) { o.splitAffixes = v }
}

// WithSpacesAsPunct controls whether whitespace is always folded into
// the surrounding punctuation run rather than only when it already sits
// in a punctuation context. Default: false.
func WithSpacesAsPunct(v bool) Option {
	return func(o *options) { o.spacesAsPunct = v }
}

func defaultOptions() options {
	return options{
		splitAffixes:  true,
		spacesAsPunct: false,
	}
}
