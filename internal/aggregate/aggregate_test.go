package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSingleQuestion(t *testing.T) {
	fields := []Field{
		{"Org_0_answer", "yes"},
		{"Org_0_label", "Q1?"},
		{"Org_0_customer_score", "4"},
	}

	sections, _ := Aggregate(fields)

	require.Len(t, sections, 1)
	sec := sections[0]
	assert.Equal(t, "Org", sec.Name)
	require.Len(t, sec.Questions, 1)
	assert.Equal(t, Question{Text: "Q1?", Answer: "yes", Score: 4, Scored: true}, sec.Questions[0])
	require.True(t, sec.HasAverage)
	assert.Equal(t, 4.0, sec.Average)
}

func TestAggregateMissingLabelAndEmptyScore(t *testing.T) {
	fields := []Field{
		{"Org_0_answer", ""},
		{"Org_0_customer_score", "-"},
	}

	sections, _ := Aggregate(fields)

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Questions, 1)
	q := sections[0].Questions[0]
	assert.Equal(t, "Org_0_answer", q.Text, "question text falls back to the raw answer key")
	assert.Empty(t, q.Answer)
	assert.False(t, q.Scored)
	assert.Equal(t, "-", q.DisplayScore())
	assert.False(t, sections[0].HasAverage)
}

func TestAggregateSectionAverage(t *testing.T) {
	fields := []Field{
		{"Org_0_answer", "a"},
		{"Org_0_customer_score", "3"},
		{"Org_1_answer", "b"},
		{"Org_1_customer_score", "5"},
	}

	sections, _ := Aggregate(fields)

	require.Len(t, sections, 1)
	require.True(t, sections[0].HasAverage)
	assert.Equal(t, 4.0, sections[0].Average)
}

func TestAggregateAverageRounding(t *testing.T) {
	fields := []Field{
		{"Org_0_answer", "a"},
		{"Org_0_customer_score", "1"},
		{"Org_1_answer", "b"},
		{"Org_1_customer_score", "2"},
		{"Org_2_answer", "c"},
		{"Org_2_customer_score", "2"},
	}

	sections, _ := Aggregate(fields)

	require.Len(t, sections, 1)
	assert.Equal(t, 1.7, sections[0].Average)
}

func TestAggregateOrphanSiblingsIgnored(t *testing.T) {
	fields := []Field{
		{"Org_0_label", "orphan label"},
		{"Org_1_customer_score", "5"},
	}

	sections, _ := Aggregate(fields)

	assert.Empty(t, sections, "label/score without an answer must not create questions")
}

func TestAggregateQuestionCountEqualsAnswerCount(t *testing.T) {
	fields := []Field{
		{"name", "Jan"},
		{"A_0_answer", "x"},
		{"A_0_label", "first"},
		{"A_1_answer", "y"},
		{"B_0_answer", "z"},
		{"B_3_customer_score", "2"},
	}

	sections, _ := Aggregate(fields)

	total := 0
	for _, s := range sections {
		total += len(s.Questions)
	}
	assert.Equal(t, 3, total)
}

func TestAggregateInvalidScores(t *testing.T) {
	for _, raw := range []string{"", "-", "abc", "0", "6", "4.5", "NaN"} {
		fields := []Field{
			{"Org_0_answer", "a"},
			{"Org_0_customer_score", raw},
		}
		sections, _ := Aggregate(fields)
		require.Len(t, sections, 1)
		assert.False(t, sections[0].Questions[0].Scored, "score %q must be treated as absent", raw)
		assert.Zero(t, sections[0].Questions[0].Score)
	}

	// Surrounding whitespace is tolerated.
	sections, _ := Aggregate([]Field{
		{"Org_0_answer", "a"},
		{"Org_0_customer_score", " 4 "},
	})
	assert.True(t, sections[0].Questions[0].Scored)
	assert.Equal(t, 4, sections[0].Questions[0].Score)
}

func TestAggregatePreservesFirstAppearanceOrder(t *testing.T) {
	fields := []Field{
		{"Werkvoorbereiding_0_answer", "a"},
		{"Asset Management Strategie_0_answer", "b"},
		{"Werkvoorbereiding_1_answer", "c"},
		{"Analyse gegevens_0_answer", "d"},
	}

	sections, _ := Aggregate(fields)

	require.Len(t, sections, 3)
	assert.Equal(t, "Werkvoorbereiding", sections[0].Name)
	assert.Equal(t, "Asset Management Strategie", sections[1].Name)
	assert.Equal(t, "Analyse gegevens", sections[2].Name)
	require.Len(t, sections[0].Questions, 2)
	assert.Equal(t, "a", sections[0].Questions[0].Answer)
	assert.Equal(t, "c", sections[0].Questions[1].Answer)
}

func TestAggregateIdempotent(t *testing.T) {
	fields := []Field{
		{"name", "Jan"},
		{"A_0_answer", "x"},
		{"A_0_customer_score", "3"},
		{"B_0_answer", "y"},
		{"B_0_customer_score", "5"},
	}

	first, firstMeta := Aggregate(fields)
	second, secondMeta := Aggregate(fields)

	assert.Equal(t, first, second)
	assert.Equal(t, firstMeta, secondMeta)
}

func TestAggregateMetadata(t *testing.T) {
	fields := []Field{
		{"name", "Jan Jansen"},
		{"company", "Acme BV"},
		{"email", "jan@example.com"},
		{"phone", "0612345678"},
		{"introText", "hallo"},
		{"Org_0_answer", "ok"},
	}

	_, meta := Aggregate(fields)

	assert.Equal(t, Metadata{
		Name:    "Jan Jansen",
		Company: "Acme BV",
		Email:   "jan@example.com",
		Phone:   "0612345678",
		Intro:   "hallo",
	}, meta)
}

func TestOverallAverage(t *testing.T) {
	sections, _ := Aggregate([]Field{
		{"A_0_answer", "a"},
		{"A_0_customer_score", "3"},
		{"B_0_answer", "b"},
		{"B_0_customer_score", "4"},
		{"B_1_answer", "c"},
	})

	avg, ok := OverallAverage(sections)
	require.True(t, ok)
	assert.Equal(t, 3.5, avg)

	empty, _ := Aggregate([]Field{{"A_0_answer", "a"}})
	_, ok = OverallAverage(empty)
	assert.False(t, ok)
}

func TestParseFormPreservesOrder(t *testing.T) {
	body := `{"b_key":"1","a_key":"2","c_key":"3"}`

	fields, err := ParseForm(strings.NewReader(body))

	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "b_key", fields[0].Key)
	assert.Equal(t, "a_key", fields[1].Key)
	assert.Equal(t, "c_key", fields[2].Key)
}

func TestParseFormCoercesScalars(t *testing.T) {
	body := `{"score":4,"flag":true,"missing":null,"text":"x"}`

	fields, err := ParseForm(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, []Field{
		{"score", "4"},
		{"flag", "true"},
		{"missing", ""},
		{"text", "x"},
	}, fields)
}

func TestParseFormRejectsMalformedBodies(t *testing.T) {
	for _, body := range []string{
		`{invalid`,
		`[]`,
		`"just a string"`,
		`{"nested":{"a":1}}`,
		`{"list":[1,2]}`,
		`{"open":"value"`,
		`{"a":"b"}garbage`,
		`{"a":"b"}{"c":"d"}`,
	} {
		_, err := ParseForm(strings.NewReader(body))
		assert.Error(t, err, "body %q", body)
	}
}
