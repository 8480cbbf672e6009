package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/emit"
	"github.com/sarchlab/ippcode/stats"
	"github.com/spf13/pflag"
)

var _ = Describe("Config", func() {
	var (
		b  *config.Builder
		fs *pflag.FlagSet
	)

	BeforeEach(func() {
		b = config.NewBuilder()
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SortFlags = false
		config.BindFlags(fs, b)
	})

	parse := func(args ...string) (config.Config, error) {
		if err := fs.Parse(args); err != nil {
			if b.Err() != nil {
				return config.Config{}, b.Err()
			}
			return config.Config{}, core.Errorf(core.ExitParam, 0, "%v", err)
		}
		return b.Build()
	}

	It("should default to XML and no targets", func() {
		cfg, err := parse()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Format).To(Equal(emit.FormatXML))
		Expect(cfg.Targets).To(BeEmpty())
		Expect(cfg.EmitHelp).To(BeFalse())
	})

	It("should keep metrics in command-line order per target", func() {
		cfg, err := parse(
			"--stats=a.txt", "--jumps", "--loc", "--loc",
			"--stats=b.txt", "--print=hello", "--eol", "--badjumps",
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Targets).To(Equal([]config.StatsTarget{
			{File: "a.txt", Entries: []stats.Entry{
				stats.MetricEntry(stats.MetricJumps),
				stats.MetricEntry(stats.MetricLoc),
				stats.MetricEntry(stats.MetricLoc),
			}},
			{File: "b.txt", Entries: []stats.Entry{
				stats.TextEntry("hello"),
				stats.EOLEntry(),
				stats.MetricEntry(stats.MetricBadJumps),
			}},
		}))
	})

	It("should accept the separated --stats form", func() {
		cfg, err := parse("--stats", "out", "--comments", "--labels", "--fwjumps", "--backjumps")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Targets).To(HaveLen(1))
		Expect(cfg.Targets[0].Entries).To(HaveLen(4))
	})

	It("should reject a metric before any --stats", func() {
		_, err := parse("--loc", "--stats=a")
		Expect(core.CodeOf(err)).To(Equal(core.ExitParam))
	})

	It("should reject a repeated destination with 12", func() {
		_, err := parse("--stats=a", "--loc", "--stats=./a", "--jumps")
		Expect(core.CodeOf(err)).To(Equal(core.ExitOutputFile))
	})

	It("should reject unknown flags", func() {
		_, err := parse("--verbose")
		Expect(core.CodeOf(err)).To(Equal(core.ExitParam))
	})

	It("should select the YAML format", func() {
		cfg, err := parse("--format=yaml", "--summary", "--list", "--trace")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Format).To(Equal(emit.FormatYAML))
		Expect(cfg.Summary).To(BeTrue())
		Expect(cfg.List).To(BeTrue())
		Expect(cfg.Trace).To(BeTrue())
	})

	It("should reject an unknown format", func() {
		_, err := parse("--format=json")
		Expect(core.CodeOf(err)).To(Equal(core.ExitParam))
	})

	Context("Help", func() {
		It("should accept a lone help request", func() {
			b.RequestHelp(nil)
			cfg, err := b.Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.EmitHelp).To(BeTrue())
		})

		It("should reject help with other options", func() {
			Expect(fs.Parse([]string{"--stats=x"})).To(Succeed())
			b.RequestHelp(nil)
			_, err := b.Build()
			Expect(core.CodeOf(err)).To(Equal(core.ExitParam))
		})

		It("should reject help with positional arguments", func() {
			b.RequestHelp([]string{"file.src"})
			_, err := b.Build()
			Expect(core.CodeOf(err)).To(Equal(core.ExitParam))
		})
	})

	It("should not share entries between builds", func() {
		cfg, err := parse("--stats=a", "--loc")
		Expect(err).NotTo(HaveOccurred())
		cfg.Targets[0].Entries[0] = stats.EOLEntry()

		again, err := b.Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Targets[0].Entries[0]).To(Equal(stats.MetricEntry(stats.MetricLoc)))
	})
})
