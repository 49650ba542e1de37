package seed

import (
	"context"
	"fmt"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/image"
)

// DefaultClusters is the number of clusters sampled from an image.
const DefaultClusters = 8

// Options configures seed suggestion.
type Options struct {
	// Dark picks the darkest cluster as background instead of the lightest.
	Dark bool

	// Clusters is the number of k-means clusters. Zero means DefaultClusters.
	Clusters int

	// RandomSeed drives centroid initialisation.
	RandomSeed int64
}

// Suggestion is a set of seeds with the clusters they were chosen from.
type Suggestion struct {
	Seeds    colour.Seeds
	Clusters []Cluster
}

// FromImage loads path with loader, clusters it and suggests seeds.
func FromImage(ctx context.Context, loader image.Loader, path string, opts Options) (*Suggestion, error) {
	img, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	n := opts.Clusters
	if n == 0 {
		n = DefaultClusters
	}
	ex, err := NewExtractor(AlgorithmKMeans, opts.RandomSeed)
	if err != nil {
		return nil, err
	}
	clusters, err := ex.Extract(img, n)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	return &Suggestion{Seeds: Suggest(clusters, opts.Dark), Clusters: clusters}, nil
}

// Suggest picks seeds from clusters: the lightest (or darkest when dark)
// cluster as background, the highest-contrast cluster as text, and the most
// vivid remaining cluster as primary. Missing roles fall back to the
// defaults.
func Suggest(clusters []Cluster, dark bool) colour.Seeds {
	seeds := colour.DefaultSeeds()
	if dark {
		seeds.Background = colour.MustParse("#1b1a19")
		seeds.Text = colour.MustParse("#f3f2f1")
	}
	if len(clusters) == 0 {
		return seeds
	}

	bgIdx := 0
	for i, c := range clusters {
		l, best := colour.Luminance(c.Color), colour.Luminance(clusters[bgIdx].Color)
		if (!dark && l > best) || (dark && l < best) {
			bgIdx = i
		}
	}
	seeds.Background = clusters[bgIdx].Color

	textIdx, textCR := -1, 0.0
	for i, c := range clusters {
		if i == bgIdx {
			continue
		}
		if cr := colour.ContrastRatio(c.Color, seeds.Background); cr > textCR {
			textIdx, textCR = i, cr
		}
	}
	if textIdx >= 0 && textCR >= colour.TextContrast {
		seeds.Text = clusters[textIdx].Color
	} else if colour.ContrastRatio(seeds.Text, seeds.Background) < colour.TextContrast {
		seeds.Text = colour.White
		if colour.ContrastRatio(colour.Black, seeds.Background) > colour.ContrastRatio(colour.White, seeds.Background) {
			seeds.Text = colour.Black
		}
	}

	primaryIdx, vivid := -1, 0.0
	for i, c := range clusters {
		if i == bgIdx || i == textIdx {
			continue
		}
		hsv := c.Color.HSV()
		if v := hsv.S * hsv.V; v > vivid {
			primaryIdx, vivid = i, v
		}
	}
	if primaryIdx >= 0 {
		seeds.Primary = clusters[primaryIdx].Color
	}

	return seeds
}
