// Package metrics exposes hand-rolled submission counters in Prometheus text
// format, without pulling in a client library for a handful of series.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	submissionsReceivedTotal atomic.Uint64
	submissionsFailedTotal   atomic.Uint64
	emailsSentTotal          atomic.Uint64

	renderDurationMs = newHistogram([]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncSubmissionReceived counts a submission accepted for processing.
func IncSubmissionReceived() {
	submissionsReceivedTotal.Add(1)
}

// IncSubmissionFailed counts a submission that could not produce a report.
func IncSubmissionFailed() {
	submissionsFailedTotal.Add(1)
}

// IncEmailSent counts a successfully dispatched report mail.
func IncEmailSent() {
	emailsSentTotal.Add(1)
}

// ObserveRenderDurationMs records how long a report render took.
func ObserveRenderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	renderDurationMs.Observe(value)
}

// Handler serves the metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders all series as Prometheus exposition text.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "quickscan_submissions_received_total", "Total submissions received", submissionsReceivedTotal.Load())
	writeCounter(&buf, "quickscan_submissions_failed_total", "Total submissions that failed processing", submissionsFailedTotal.Load())
	writeCounter(&buf, "quickscan_emails_sent_total", "Total report mails dispatched", emailsSentTotal.Load())
	writeHistogram(&buf, "quickscan_render_duration_ms", "Report render duration in milliseconds", renderDurationMs.snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	bounds  []float64
	counts  []uint64
	sum     float64
	samples uint64
}

func newHistogram(bounds []float64) *histogram {
	return &histogram{
		bounds: bounds,
		counts: make([]uint64, len(bounds)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.samples++
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
		}
	}
}

type histogramSnapshot struct {
	bounds  []float64
	counts  []uint64
	sum     float64
	samples uint64
}

func (h *histogram) snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		bounds:  append([]float64(nil), h.bounds...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		samples: h.samples,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.bounds {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.samples)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.samples)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
