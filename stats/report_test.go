package stats_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ippcode/stats"
)

var _ = Describe("Report", func() {
	s := stats.Stats{
		Insts:     7,
		Comments:  2,
		Labels:    3,
		Jumps:     4,
		FwJumps:   1,
		BackJumps: 2,
		BadJumps:  0,
	}

	It("should write entries in the requested order", func() {
		var buf bytes.Buffer
		err := stats.WriteEntries(&buf, s, []stats.Entry{
			stats.MetricEntry(stats.MetricJumps),
			stats.MetricEntry(stats.MetricLoc),
			stats.TextEntry("--"),
			stats.EOLEntry(),
			stats.MetricEntry(stats.MetricLoc),
			stats.MetricEntry(stats.MetricBadJumps),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("4\n7\n--\n\n7\n0\n"))
	})

	It("should parse every metric name back", func() {
		for _, m := range stats.Metrics() {
			got, ok := stats.ParseMetric(m.String())
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(m))
		}

		_, ok := stats.ParseMetric("bogus")
		Expect(ok).To(BeFalse())
	})

	It("should render a summary table", func() {
		var buf bytes.Buffer
		stats.SummaryTable(&buf, s)
		Expect(buf.String()).To(ContainSubstring("fwjumps"))
		Expect(buf.String()).To(ContainSubstring("backjumps"))
	})
})
