package fieldkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeQuestionKeys(t *testing.T) {
	tests := []struct {
		raw     string
		kind    Kind
		section string
		index   string
		prefix  string
	}{
		{"Org_0_answer", Answer, "Org", "0", "Org_0"},
		{"Org_0_label", Label, "Org", "0", "Org_0"},
		{"Org_0_customer_score", Score, "Org", "0", "Org_0"},
		{"Asset Management Strategie_1_answer", Answer, "Asset Management Strategie", "1", "Asset Management Strategie_1"},
		{"Maintenance & Reliability Engineering_0_customer_score", Score, "Maintenance & Reliability Engineering", "0", "Maintenance & Reliability Engineering_0"},
		{"Werkvoorbereiding_12_label", Label, "Werkvoorbereiding", "12", "Werkvoorbereiding_12"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			k := Decode(tt.raw)
			assert.Equal(t, tt.kind, k.Kind)
			assert.Equal(t, tt.section, k.Section)
			assert.Equal(t, tt.index, k.Index)
			assert.Equal(t, tt.prefix, k.Prefix)
			assert.Equal(t, tt.raw, k.Raw)
		})
	}
}

func TestDecodeMetadataKeys(t *testing.T) {
	for _, raw := range []string{"name", "company", "email", "phone", "introText", "answer", "label"} {
		k := Decode(raw)
		assert.Equal(t, Metadata, k.Kind, "key %q", raw)
		assert.Equal(t, raw, k.Raw)
		assert.Empty(t, k.Prefix)
	}
}

func TestDecodePrefixWithoutIndex(t *testing.T) {
	// A prefix without an underscore keeps the whole prefix as the section.
	k := Decode("Org_answer")
	assert.Equal(t, Answer, k.Kind)
	assert.Equal(t, "Org", k.Section)
	assert.Empty(t, k.Index)
	assert.Equal(t, "Org", k.Prefix)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		section string
		index   string
		kind    Kind
	}{
		{"Org", "0", Answer},
		{"Org", "0", Label},
		{"Org", "3", Score},
		{"Asset Management Strategie", "1", Answer},
		{"Uitvoering onderhoud", "0", Score},
	}

	for _, tt := range tests {
		k := Decode(Encode(tt.section, tt.index, tt.kind))
		assert.Equal(t, tt.kind, k.Kind)
		assert.Equal(t, tt.section, k.Section)
		assert.Equal(t, tt.index, k.Index)
	}
}

func TestSiblingKeysShareGroupingIdentity(t *testing.T) {
	answer := Decode("Werkvoorbereiding_1_answer")
	label := Decode(answer.SiblingKey(Label))
	score := Decode(answer.SiblingKey(Score))

	assert.Equal(t, answer.Prefix, label.Prefix)
	assert.Equal(t, answer.Prefix, score.Prefix)
	assert.Equal(t, "Werkvoorbereiding_1_label", label.Raw)
	assert.Equal(t, "Werkvoorbereiding_1_customer_score", score.Raw)
}
