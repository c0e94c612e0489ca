package assetquality

import (
	"log/slog"
	"time"

	"github.com/tsawler/assetquality/bankprofile"
	"github.com/tsawler/assetquality/batch"
	"github.com/tsawler/assetquality/extract"
	"github.com/tsawler/assetquality/reader"
)

// Options holds configuration shared by single-document and batch
// extraction.
type Options struct {
	// OCR settings
	language string
	dpi      float64

	// Issuer profiles
	profiles     bankprofile.Table
	profilesFile string

	// Batch pool settings
	workers int
	timeout time.Duration
	logger  *slog.Logger
}

// defaultOptions returns the settings used for the disclosure corpus.
func defaultOptions() Options {
	return Options{
		language: extract.DefaultLanguage,
		dpi:      reader.DefaultDPI,
		workers:  batch.DefaultWorkers,
		timeout:  batch.DefaultTimeout,
	}
}

// clone creates a copy of Options. The profile table is shared: it is
// read-only once loaded.
func (o Options) clone() Options {
	return Options{
		language:     o.language,
		dpi:          o.dpi,
		profiles:     o.profiles,
		profilesFile: o.profilesFile,
		workers:      o.workers,
		timeout:      o.timeout,
		logger:       o.logger,
	}
}

// buildPipeline resolves the profile table and assembles a pipeline from the
// options.
func (o Options) buildPipeline() (*extract.Pipeline, error) {
	profiles := o.profiles
	if profiles == nil && o.profilesFile != "" {
		loaded, err := bankprofile.Load(o.profilesFile)
		if err != nil {
			return nil, err
		}
		profiles = loaded
	}

	p := extract.NewPipeline(profiles)
	p.OCR.Language = o.language
	p.OCR.DPI = o.dpi
	return p, nil
}
