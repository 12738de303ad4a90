// Package scan discovers candidate files under a search root and separates
// decodable images from everything else.
package scan

import (
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"

	"github.com/n0mad-samurai/photo2geo/failure"
)

// Result is the outcome of classifying a search root.
type Result struct {
	Images    []string
	NotImages []string
}

// Classifier walks a search root and probes every discovered file.
type Classifier struct {
	// Probe reports whether path decodes as an image. Defaults to DecodeProbe.
	Probe func(path string) error
	Log   logrus.FieldLogger
}

func NewClassifier(log logrus.FieldLogger) *Classifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Classifier{Probe: DecodeProbe, Log: log}
}

// Classify walks root and partitions the discovered names into images and
// non-images. Every name is resolved directly against root; names that only
// exist in subdirectories are dropped.
func (c *Classifier) Classify(root string) (Result, error) {
	names, err := c.Walk(root)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, name := range names {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			c.Log.WithField("file", name).Debug("not present under search root, skipping")
			continue
		}
		if err := c.Probe(path); err != nil {
			c.Log.WithField("file", name).WithError(err).Debug("not an image")
			res.NotImages = append(res.NotImages, name)
			continue
		}
		res.Images = append(res.Images, name)
	}
	return res, nil
}

// Walk lists file names top-down: a directory's files come before the contents
// of its subdirectories, each in lexical order. It fails as soon as a listed
// directory leaves the running file count at zero.
func (c *Classifier) Walk(root string) ([]string, error) {
	var names []string
	var visit func(dir string) error
	visit = func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == root {
				return failure.Wrap(failure.KindPath, "walk", "Directory is not readable", dir, err)
			}
			c.Log.WithField("dir", dir).WithError(err).Warn("skipping unreadable directory")
			return nil
		}

		var subdirs []string
		for _, e := range entries {
			if e.IsDir() {
				subdirs = append(subdirs, filepath.Join(dir, e.Name()))
				continue
			}
			names = append(names, e.Name())
		}
		if len(names) == 0 {
			return failure.New(failure.KindEmptyDir, "walk", "Directory is empty or files are hidden", dir)
		}

		for _, sub := range subdirs {
			if err := visit(sub); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return names, nil
}

// DecodeProbe fully decodes the file at path. Any decoding failure means the
// file is not a usable image.
func DecodeProbe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = imaging.Decode(f)
	return err
}
