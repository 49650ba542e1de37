// Package seed proposes primary, background and text seed colours by
// clustering the pixels of an image.
package seed

import (
	"fmt"
	"image"

	"github.com/jmylchreest/themer/internal/colour"
)

// Cluster is one representative colour of an image with its relative weight.
type Cluster struct {
	Color  colour.Color
	Weight float64
}

// Extractor defines the interface for colour clustering algorithms.
type Extractor interface {
	// Extract returns up to count clusters from an image.
	Extract(img image.Image, count int) ([]Cluster, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans}
}

// NewExtractor creates an Extractor for the named algorithm. The seed value
// makes clustering reproducible.
func NewExtractor(alg Algorithm, seed int64) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans, "":
		return NewKMeansExtractor(seed), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid: %v)", alg, ValidAlgorithms())
	}
}
