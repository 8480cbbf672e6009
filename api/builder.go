package api

import (
	"io"

	"github.com/sarchlab/ippcode/config"
	"github.com/sarchlab/ippcode/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	cfg        config.Config
	opener     Opener
	translator *core.Builder
	summaryOut io.Writer
}

// WithConfig sets the run configuration.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = cfg
	return b
}

// WithOpener sets how stats destinations are opened.
func (b DriverBuilder) WithOpener(opener Opener) DriverBuilder {
	b.opener = opener
	return b
}

// WithTranslator sets the builder translators are created from.
func (b DriverBuilder) WithTranslator(tb core.Builder) DriverBuilder {
	b.translator = &tb
	return b
}

// WithSummaryWriter sets where the summary table goes.
func (b DriverBuilder) WithSummaryWriter(w io.Writer) DriverBuilder {
	b.summaryOut = w
	return b
}

// Build create a driver.
func (b DriverBuilder) Build() Driver {
	d := &driverImpl{
		cfg:        b.cfg,
		opener:     b.opener,
		translator: core.NewBuilder(),
		summaryOut: b.summaryOut,
	}

	if d.opener == nil {
		d.opener = FileOpener{}
	}

	if b.translator != nil {
		d.translator = *b.translator
	}

	return d
}
