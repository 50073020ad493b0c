// Package fieldkey decodes the flattened form-field naming convention used by
// the QuickScan frontend. Question data arrives as a flat key/value map where
// each key encodes section, question index and sub-field as
// "{section}_{index}_{answer|label|customer_score}". Sections may contain
// spaces and arbitrary words, so decoding anchors on the known suffixes.
package fieldkey

import "strings"

// Kind classifies a submitted form key.
type Kind int

const (
	// Metadata is any key without a recognized question suffix
	// (name, company, email, phone, introText).
	Metadata Kind = iota
	// Answer carries the free-text answer for one question.
	Answer
	// Label carries the display text of the question.
	Label
	// Score carries the submitter's 1-5 self-rating.
	Score
)

const (
	suffixAnswer = "_answer"
	suffixLabel  = "_label"
	suffixScore  = "_customer_score"
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Answer:
		return "answer"
	case Label:
		return "label"
	case Score:
		return "customer_score"
	default:
		return "metadata"
	}
}

// Key is a decoded form-field key.
type Key struct {
	Kind    Kind
	Section string
	Index   string
	// Prefix is "{section}_{index}", the grouping identity shared by the
	// three sub-field keys of one logical question.
	Prefix string
	Raw    string
}

// Decode classifies a raw key and extracts its section/index components.
// Keys without a recognized suffix pass through as Metadata.
func Decode(raw string) Key {
	kind, prefix := splitSuffix(raw)
	if kind == Metadata {
		return Key{Kind: Metadata, Raw: raw}
	}

	section, index := prefix, ""
	if i := strings.LastIndex(prefix, "_"); i >= 0 {
		section, index = prefix[:i], prefix[i+1:]
	}

	return Key{
		Kind:    kind,
		Section: section,
		Index:   index,
		Prefix:  prefix,
		Raw:     raw,
	}
}

// Encode is the inverse of Decode for question keys.
func Encode(section, index string, kind Kind) string {
	switch kind {
	case Answer:
		return section + "_" + index + suffixAnswer
	case Label:
		return section + "_" + index + suffixLabel
	case Score:
		return section + "_" + index + suffixScore
	default:
		return section
	}
}

// SiblingKey returns the key of another sub-field of the same question.
func (k Key) SiblingKey(kind Kind) string {
	switch kind {
	case Answer:
		return k.Prefix + suffixAnswer
	case Label:
		return k.Prefix + suffixLabel
	case Score:
		return k.Prefix + suffixScore
	default:
		return k.Raw
	}
}

func splitSuffix(raw string) (Kind, string) {
	if p, ok := strings.CutSuffix(raw, suffixScore); ok {
		return Score, p
	}
	if p, ok := strings.CutSuffix(raw, suffixAnswer); ok {
		return Answer, p
	}
	if p, ok := strings.CutSuffix(raw, suffixLabel); ok {
		return Label, p
	}
	return Metadata, raw
}
