// Package processor runs the single-pass pipeline: classify the search root,
// extract every image, aggregate the outcomes.
package processor

import (
	"github.com/sirupsen/logrus"

	"github.com/n0mad-samurai/photo2geo/geo"
	"github.com/n0mad-samurai/photo2geo/results"
	"github.com/n0mad-samurai/photo2geo/scan"
)

// Classifier partitions a search root into image and non-image names.
type Classifier interface {
	Classify(root string) (scan.Result, error)
}

// Extractor turns one image into an outcome.
type Extractor interface {
	Extract(root, name string) (results.Outcome, error)
}

// Processor wires a classifier to an extractor.
type Processor struct {
	Classifier Classifier
	Extractor  Extractor
	Log        logrus.FieldLogger
}

// New returns a Processor using the decode-probe classifier and the EXIF extractor.
func New(log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{
		Classifier: scan.NewClassifier(log),
		Extractor:  geo.NewExtractor(log),
		Log:        log,
	}
}

// Run processes every file under root. Classification finishes before any
// extraction starts. An empty directory or a GPS conversion fault stops the
// run and no aggregate is returned.
func (p *Processor) Run(root string) (*results.Aggregate, error) {
	classified, err := p.Classifier.Classify(root)
	if err != nil {
		return nil, err
	}

	agg := results.New()
	for _, name := range classified.NotImages {
		agg.Flag(results.NotImage, name)
	}

	p.Log.WithFields(logrus.Fields{
		"images":     len(classified.Images),
		"not_images": len(classified.NotImages),
	}).Info("classified search root")

	for _, name := range classified.Images {
		out, err := p.Extractor.Extract(root, name)
		if err != nil {
			return nil, err
		}
		agg.Absorb(out)
	}

	p.Log.WithField("records", agg.Len()).Info("extraction finished")
	return agg, nil
}
