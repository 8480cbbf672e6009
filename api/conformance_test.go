package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// scenario is one end-to-end run described in testdata.
type scenario struct {
	Name     string            `yaml:"name"`
	Args     []string          `yaml:"args"`
	Source   string            `yaml:"source"`
	Exit     int               `yaml:"exit"`
	Contains []string          `yaml:"contains"`
	Output   string            `yaml:"output"`
	Files    map[string]string `yaml:"files"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenarios(dir string) ([]scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	var all []scenario
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var f scenarioFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		all = append(all, f.Scenarios...)
	}

	return all, nil
}

// memOpener keeps every opened destination in memory.
type memOpener struct {
	files map[string]*nopCloser
}

func (m *memOpener) Open(name string) (io.WriteCloser, error) {
	f := &nopCloser{}
	m.files[name] = f
	return f, nil
}

func runScenario(sc scenario) (string, map[string]*nopCloser, core.ExitCode) {
	b := config.NewBuilder()
	fs := pflag.NewFlagSet("ippparse", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.BindFlags(fs, b)

	if err := fs.Parse(sc.Args); err != nil {
		if b.Err() != nil {
			return "", nil, core.CodeOf(b.Err())
		}
		return "", nil, core.ExitParam
	}

	cfg, err := b.Build()
	if err != nil {
		return "", nil, core.CodeOf(err)
	}

	opener := &memOpener{files: make(map[string]*nopCloser)}
	driver := DriverBuilder{}.
		WithConfig(cfg).
		WithOpener(opener).
		Build()

	var out bytes.Buffer
	_, err = driver.Run(strings.NewReader(sc.Source), &out)

	return out.String(), opener.files, core.CodeOf(err)
}

var _ = Describe("Scenarios", func() {
	scenarios, err := loadScenarios("testdata")
	if err != nil {
		panic(err)
	}

	for _, sc := range scenarios {
		sc := sc

		It(sc.Name, func() {
			out, files, code := runScenario(sc)

			Expect(int(code)).To(Equal(sc.Exit))

			if sc.Exit != 0 {
				Expect(out).To(BeEmpty())
			}

			if sc.Output != "" {
				Expect(out).To(Equal(sc.Output))
			}

			for _, want := range sc.Contains {
				Expect(out).To(ContainSubstring(want))
			}

			for name, content := range sc.Files {
				Expect(files).To(HaveKey(name))
				Expect(files[name].String()).To(Equal(content))
			}
		})
	}
})
