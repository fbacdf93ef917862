package textclass

import (
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jbrukh/bayesian"
)

const cacheSize = 512

// Example is one labeled training phrase.
type Example struct {
	Text  string
	Label string
}

// Classifier is a multinomial naive Bayes model behind a classify-by-label
// interface. It is trained once at process start from a fixed corpus and is
// read-only afterwards, so concurrent Classify calls need no locking.
type Classifier struct {
	model        *bayesian.Classifier
	classes      []bayesian.Class
	defaultLabel string
	cache        *lru.Cache[string, string]
}

// New trains a classifier from the given corpus. The default label is
// returned for text with no usable tokens; it should be the label of the
// corpus's first examples so that ties resolve to it.
func New(defaultLabel string, corpus []Example) (*Classifier, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("empty corpus")
	}

	var classes []bayesian.Class
	seen := map[string]bool{}
	for _, ex := range corpus {
		if !seen[ex.Label] {
			seen[ex.Label] = true
			classes = append(classes, bayesian.Class(ex.Label))
		}
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("corpus needs at least two labels, got %d", len(classes))
	}
	if !seen[defaultLabel] {
		return nil, fmt.Errorf("default label %q not present in corpus", defaultLabel)
	}

	model := bayesian.NewClassifier(classes...)
	for _, ex := range corpus {
		words := Tokenize(ex.Text)
		if len(words) == 0 {
			continue
		}
		model.Learn(words, bayesian.Class(ex.Label))
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		model:        model,
		classes:      classes,
		defaultLabel: defaultLabel,
		cache:        cache,
	}, nil
}

// DefaultLabel returns the label used for unclassifiable text.
func (c *Classifier) DefaultLabel() string {
	return c.defaultLabel
}

// Classify returns the most likely label for text. Results are memoized;
// the underlying model never changes after New.
func (c *Classifier) Classify(text string) string {
	if label, ok := c.cache.Get(text); ok {
		return label
	}

	words := Tokenize(text)
	if len(words) == 0 {
		return c.defaultLabel
	}

	_, idx, _ := c.model.LogScores(words)
	label := string(c.classes[idx])
	c.cache.Add(text, label)
	return label
}

// Tokenize lowercases text and splits it into alphanumeric word tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
