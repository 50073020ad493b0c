package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
)

func fixtureSections() []aggregate.Section {
	return []aggregate.Section{
		{
			Name: "Werkvoorbereiding",
			Questions: []aggregate.Question{
				{Text: "Is er een actuele planning?", Answer: "Ja, tot vijf jaar vooruit.", Score: 4, Scored: true},
				{Text: "Zijn resources tijdig inzichtelijk?", Answer: "Deels.", Score: 3, Scored: true},
			},
			Average:    3.5,
			HasAverage: true,
		},
		{
			Name: "Analyse gegevens",
			Questions: []aggregate.Question{
				{Text: "Worden prestaties zichtbaar gemaakt?", Answer: ""},
			},
		},
	}
}

func fixtureMeta() aggregate.Metadata {
	return aggregate.Metadata{
		Name:    "Jan Jansen",
		Company: "Acme BV",
		Email:   "jan@example.com",
		Phone:   "0612345678",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	p := NewPDF()
	generatedAt := time.Date(2025, 10, 10, 9, 30, 0, 0, time.UTC)

	data, err := p.Render(fixtureMeta(), fixtureSections(), generatedAt)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must start with the PDF magic")
	assert.Greater(t, len(data), 1000)
}

func TestRenderEmptySubmission(t *testing.T) {
	p := NewPDF()

	data, err := p.Render(aggregate.Metadata{}, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderIsDeterministic(t *testing.T) {
	p := NewPDF()
	generatedAt := time.Date(2025, 10, 10, 9, 30, 0, 0, time.UTC)

	first, err := p.Render(fixtureMeta(), fixtureSections(), generatedAt)
	require.NoError(t, err)
	second, err := p.Render(fixtureMeta(), fixtureSections(), generatedAt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "4.0", FormatScore(4))
	assert.Equal(t, "3.5", FormatScore(3.5))
	assert.Equal(t, "1.7", FormatScore(1.7))
}
