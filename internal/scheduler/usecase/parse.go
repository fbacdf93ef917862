package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/recurrence"
	"smart-task-scheduler/pkg/textclass"
)

// Confidence weights per signal. Additive, clamped to [0,1]; title quality
// dominates. The exact constants are heuristic, only the relative ordering
// and the bound are load-bearing.
const (
	weightTemporal     = 0.3
	weightDuration     = 0.2
	weightPriority     = 0.2
	weightCategory     = 0.2
	weightTitle        = 0.4
	weightTitleQuality = 0.1
	weightRecurrence   = 0.1

	minimalConfidence = 0.1

	maxTitleLen       = 50
	maxDescriptionLen = 1000
	maxTitleTokens    = 7 // first content word plus up to 6 more
)

// Parse turns free text into a fully-defaulted TaskDraft. Malformed text
// never yields an error; on internal failure the draft degrades to a
// minimal one with confidence 0.1.
func (uc *implUseCase) Parse(ctx context.Context, input scheduler.ParseInput) (draft scheduler.TaskDraft, err error) {
	if input.Context.Owner == "" {
		return scheduler.TaskDraft{}, scheduler.ErrOwnerRequired
	}

	defer func() {
		// a collaborator blowing up must degrade, not propagate
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Parse recovered: %v", r)
			draft = uc.minimalDraft(input)
			err = nil
		}
	}()

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return uc.minimalDraft(input), nil
	}

	rec := uc.recognizerFor(ctx, input.Context.Timezone)
	lower := strings.ToLower(text)
	confidence := 0.0

	draft = scheduler.TaskDraft{
		Priority:   model.PriorityMedium,
		Category:   textclass.DefaultCategory,
		SourceText: input.Text,
	}

	// 1. Temporal extraction: first recognized absolute time is the deadline.
	if m, ok := rec.Extract(lower, now()); ok {
		deadline := m.Start
		if !m.HasClock {
			deadline = rec.EndOfDay(deadline)
		}
		draft.Deadline = &deadline
		confidence += weightTemporal
	}

	// 2. Duration extraction, defaulting without the weight on fallback.
	if minutes, ok := extractDuration(lower); ok {
		draft.DurationMinutes = &minutes
		confidence += weightDuration
	} else {
		fallback := input.Context.DefaultDurationMinutes
		if fallback <= 0 {
			fallback = uc.opts.DefaultDurationMinutes
		}
		draft.DurationMinutes = &fallback
	}

	// 3. Priority classification: adopt only a non-default label.
	if label := uc.priorityCls.Classify(lower); label != uc.priorityCls.DefaultLabel() {
		if p := model.Priority(label); p.Valid() {
			draft.Priority = p
			confidence += weightPriority
		}
	}

	// 4. Category classification, same shape.
	if label := uc.categoryCls.Classify(lower); label != uc.categoryCls.DefaultLabel() {
		draft.Category = label
		confidence += weightCategory
	}

	// 5. Title/description segmentation.
	title, description := segmentTitle(text)
	if title != "" && len(title) < maxTitleLen {
		confidence += weightTitle
		if len(title) > 3 && !isStopWord(title) {
			confidence += weightTitleQuality
		}
	}
	if title == "" {
		title = "Untitled Task"
	}
	draft.Title = truncate(title, maxTitleLen)

	if description == "" {
		description = input.Text
	}
	draft.Description = truncate(description, maxDescriptionLen)

	// 6. Recurrence detection.
	if rule, ok := extractRecurrence(lower); ok {
		draft.RecurrenceRule = &rule
		confidence += weightRecurrence
	}

	draft.Confidence = clamp01(confidence)
	return draft, nil
}

// minimalDraft is the degraded parse result: everything defaulted, low
// confidence.
func (uc *implUseCase) minimalDraft(input scheduler.ParseInput) scheduler.TaskDraft {
	duration := input.Context.DefaultDurationMinutes
	if duration <= 0 {
		duration = uc.opts.DefaultDurationMinutes
	}
	return scheduler.TaskDraft{
		Title:           "Untitled Task",
		Description:     input.Text,
		DurationMinutes: &duration,
		Priority:        model.PriorityMedium,
		Category:        textclass.DefaultCategory,
		Confidence:      minimalConfidence,
		SourceText:      input.Text,
	}
}

// recognizerFor returns a recognizer for the request timezone, falling back
// to the configured one.
func (uc *implUseCase) recognizerFor(ctx context.Context, timezone string) *datemath.Recognizer {
	if timezone == "" || timezone == uc.opts.Timezone {
		return uc.recognizer
	}
	rec, err := datemath.NewRecognizer(timezone)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Parse invalid timezone %q, using %q: %v", timezone, uc.opts.Timezone, err)
		return uc.recognizer
	}
	return rec
}

// --- duration patterns ---

// Ordered most-specific-first; first match wins. Ranges resolve to the mean
// of their bounds.
var durationPatterns = []struct {
	re      *regexp.Regexp
	resolve func(m []string) int
}{
	{
		re: regexp.MustCompile(`\b(\d+)\s*-\s*(\d+)\s*(?:hours|hour|hrs|hr)\b`),
		resolve: func(m []string) int {
			lo, _ := strconv.Atoi(m[1])
			hi, _ := strconv.Atoi(m[2])
			return (lo + hi) * 60 / 2
		},
	},
	{
		re: regexp.MustCompile(`\b(\d+)\s*-\s*(\d+)\s*(?:minutes|minute|mins|min)\b`),
		resolve: func(m []string) int {
			lo, _ := strconv.Atoi(m[1])
			hi, _ := strconv.Atoi(m[2])
			return (lo + hi) / 2
		},
	},
	{
		re: regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:hours|hour|hrs|hr)\b`),
		resolve: func(m []string) int {
			f, _ := strconv.ParseFloat(m[1], 64)
			return int(f * 60)
		},
	},
	{
		re: regexp.MustCompile(`\b(\d+)\s*(?:minutes|minute|mins|min)\b`),
		resolve: func(m []string) int {
			n, _ := strconv.Atoi(m[1])
			return n
		},
	},
	{
		re:      regexp.MustCompile(`\bhalf an hour\b`),
		resolve: func(m []string) int { return 30 },
	},
	{
		re:      regexp.MustCompile(`\ban hour\b`),
		resolve: func(m []string) int { return 60 },
	},
}

func extractDuration(lower string) (int, bool) {
	for _, p := range durationPatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			minutes := p.resolve(m)
			if minutes > 0 {
				return minutes, true
			}
		}
	}
	return 0, false
}

// --- recurrence phrase patterns ---

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Ordered most-specific-first: "every other week" must precede "every week".
var recurrencePatterns = []struct {
	re    *regexp.Regexp
	build func(m []string) recurrence.Options
}{
	{
		re: regexp.MustCompile(`\bfirst (monday|tuesday|wednesday|thursday|friday|saturday|sunday) of (?:the|every) month\b`),
		build: func(m []string) recurrence.Options {
			return recurrence.Options{
				Freq:      "MONTHLY",
				ByWeekday: []time.Weekday{weekdayNames[m[1]]},
				BySetPos:  []int{1},
			}
		},
	},
	{
		re: regexp.MustCompile(`\bmonthly on the (\d{1,2})(?:st|nd|rd|th)?\b`),
		build: func(m []string) recurrence.Options {
			day, _ := strconv.Atoi(m[1])
			return recurrence.Options{Freq: "MONTHLY", ByMonthDay: []int{day}}
		},
	},
	{
		re:    regexp.MustCompile(`\bevery other day\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "DAILY", Interval: 2} },
	},
	{
		re:    regexp.MustCompile(`\bevery other week\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "WEEKLY", Interval: 2} },
	},
	{
		re: regexp.MustCompile(`\bevery (\d+) days\b`),
		build: func(m []string) recurrence.Options {
			n, _ := strconv.Atoi(m[1])
			return recurrence.Options{Freq: "DAILY", Interval: n}
		},
	},
	{
		re: regexp.MustCompile(`\bevery (\d+) weeks\b`),
		build: func(m []string) recurrence.Options {
			n, _ := strconv.Atoi(m[1])
			return recurrence.Options{Freq: "WEEKLY", Interval: n}
		},
	},
	{
		re: regexp.MustCompile(`\bevery weekday\b`),
		build: func(m []string) recurrence.Options {
			return recurrence.Options{
				Freq: "WEEKLY",
				ByWeekday: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
				},
			}
		},
	},
	{
		re: regexp.MustCompile(`\bevery (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		build: func(m []string) recurrence.Options {
			return recurrence.Options{Freq: "WEEKLY", ByWeekday: []time.Weekday{weekdayNames[m[1]]}}
		},
	},
	{
		re:    regexp.MustCompile(`\b(?:every day|daily)\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "DAILY"} },
	},
	{
		re:    regexp.MustCompile(`\b(?:every week|weekly)\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "WEEKLY"} },
	},
	{
		re:    regexp.MustCompile(`\b(?:every month|monthly)\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "MONTHLY"} },
	},
	{
		re:    regexp.MustCompile(`\b(?:every year|yearly|annually)\b`),
		build: func(m []string) recurrence.Options { return recurrence.Options{Freq: "YEARLY"} },
	},
}

func extractRecurrence(lower string) (string, bool) {
	for _, p := range recurrencePatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			rule, err := recurrence.Build(p.build(m))
			if err != nil {
				return "", false
			}
			return rule, true
		}
	}
	return "", false
}

// --- title segmentation ---

// stopWords: articles, prepositions, temporal deictics, modal verbs.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"i": true, "my": true, "me": true, "we": true, "our": true,
	"to": true, "for": true, "of": true, "in": true, "on": true, "at": true,
	"by": true, "with": true, "from": true, "about": true, "into": true,
	"and": true, "or": true, "that": true, "this": true, "it": true,
	"please": true, "need": true, "should": true, "must": true, "have": true,
	"will": true, "would": true, "can": true, "could": true, "may": true,
	"today": true, "tomorrow": true, "tonight": true, "yesterday": true,
	"remind": true, "reminder": true,
}

// temporalIndicators end title accumulation immediately.
var temporalIndicators = map[string]bool{
	"today": true, "tomorrow": true, "tonight": true, "yesterday": true,
	"at": true, "on": true, "by": true, "in": true, "before": true,
	"after": true, "until": true, "next": true, "every": true,
}

func isStopWord(token string) bool {
	return stopWords[normalizeToken(token)]
}

func normalizeToken(token string) string {
	return strings.Trim(strings.ToLower(token), ".,!?;:\"'()")
}

// segmentTitle splits text into a short title and the remaining description.
// It skips leading stop-words to find the first content word, then greedily
// accumulates tokens, stopping at any temporal indicator, or, once the title
// has at least two tokens, at any stop-word.
func segmentTitle(text string) (title, description string) {
	tokens := strings.Fields(text)

	i := 0
	for i < len(tokens) && isStopWord(tokens[i]) {
		i++
	}
	if i == len(tokens) {
		return "", ""
	}

	titleTokens := []string{tokens[i]}
	j := i + 1
	for j < len(tokens) && len(titleTokens) < maxTitleTokens {
		norm := normalizeToken(tokens[j])
		if temporalIndicators[norm] {
			break
		}
		if len(titleTokens) >= 2 && stopWords[norm] {
			break
		}
		titleTokens = append(titleTokens, tokens[j])
		j++
	}

	return strings.Join(titleTokens, " "), strings.Join(tokens[j:], " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
