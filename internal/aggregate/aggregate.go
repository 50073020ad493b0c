// Package aggregate rebuilds the hierarchical questionnaire structure from a
// flattened form payload and computes per-section score averages.
package aggregate

import (
	"math"
	"strconv"
	"strings"

	"github.com/Veerenstael/QuickScan/internal/fieldkey"
)

// Field is one submitted key/value pair, in payload order.
type Field struct {
	Key   string
	Value string
}

// Question is one reconstructed question record.
type Question struct {
	Text   string
	Answer string
	Score  int
	Scored bool
}

// DisplayScore renders the score for report output, "-" when absent.
func (q Question) DisplayScore() string {
	if !q.Scored {
		return "-"
	}
	return strconv.Itoa(q.Score)
}

// Section groups the questions of one assessment category.
type Section struct {
	Name       string
	Questions  []Question
	Average    float64
	HasAverage bool
}

// Metadata carries the submitter fields of the form.
type Metadata struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Intro   string
}

// Aggregate folds the ordered payload fields into sections and metadata.
// A question exists only where its _answer field exists; orphaned _label or
// _customer_score fields contribute nothing. Sections and questions keep the
// first-appearance order of the payload.
func Aggregate(fields []Field) ([]Section, Metadata) {
	byKey := make(map[string]string, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}

	var meta Metadata
	var sections []Section
	position := make(map[string]int)

	for _, f := range fields {
		k := fieldkey.Decode(f.Key)
		switch k.Kind {
		case fieldkey.Metadata:
			setMetadata(&meta, f.Key, f.Value)
		case fieldkey.Answer:
			q := Question{Text: f.Key, Answer: f.Value}
			if label, ok := byKey[k.SiblingKey(fieldkey.Label)]; ok {
				q.Text = label
			}
			q.Score, q.Scored = parseScore(byKey[k.SiblingKey(fieldkey.Score)])

			pos, ok := position[k.Section]
			if !ok {
				pos = len(sections)
				position[k.Section] = pos
				sections = append(sections, Section{Name: k.Section})
			}
			sections[pos].Questions = append(sections[pos].Questions, q)
		}
	}

	for i := range sections {
		sections[i].Average, sections[i].HasAverage = average(sections[i].Questions)
	}

	return sections, meta
}

// OverallAverage returns the mean of every valid score across all sections,
// rounded to one decimal. The second return is false when no valid score
// exists anywhere.
func OverallAverage(sections []Section) (float64, bool) {
	sum, count := 0, 0
	for _, s := range sections {
		for _, q := range s.Questions {
			if q.Scored {
				sum += q.Score
				count++
			}
		}
	}
	if count == 0 {
		return 0, false
	}
	return round1(float64(sum) / float64(count)), true
}

// parseScore interprets a raw customer_score value. Empty, non-numeric or
// out-of-range values mean "no score"; they are never coerced to 0.
func parseScore(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func average(qs []Question) (float64, bool) {
	sum, count := 0, 0
	for _, q := range qs {
		if q.Scored {
			sum += q.Score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return round1(float64(sum) / float64(count)), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func setMetadata(meta *Metadata, key, value string) {
	switch key {
	case "name":
		meta.Name = value
	case "company":
		meta.Company = value
	case "email":
		meta.Email = value
	case "phone":
		meta.Phone = value
	case "introText":
		meta.Intro = value
	}
}
