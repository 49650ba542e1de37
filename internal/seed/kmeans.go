package seed

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/jmylchreest/themer/internal/colour"
)

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	seed          int64
}

// NewKMeansExtractor creates a KMeansExtractor whose centroid initialisation
// is driven by seed.
func NewKMeansExtractor(seed int64) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		seed:          seed,
	}
}

// Extract clusters the sampled pixels of img into at most count colours,
// returned heaviest first.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := make(map[point3D]int)
	for _, p := range points {
		unique[p]++
	}

	var clusters []Cluster
	if count >= len(unique) {
		for p, n := range unique {
			clusters = append(clusters, Cluster{Color: p.colour(), Weight: float64(n) / float64(len(points))})
		}
	} else {
		rng := rand.New(rand.NewSource(e.seed))
		centroids, weights := e.kmeans(rng, points, count)
		for i, c := range centroids {
			if weights[i] == 0 {
				continue
			}
			clusters = append(clusters, Cluster{Color: c.colour(), Weight: weights[i]})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].Weight != clusters[j].Weight {
			return clusters[i].Weight > clusters[j].Weight
		}
		return clusters[i].Color.Hex() < clusters[j].Color.Hex()
	})
	return clusters, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) colour() colour.Color {
	round := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(255, v)))) }
	return colour.FromRGB(round(p.R), round(p.G), round(p.B))
}

// samplePixels grid-samples at most maxSamples opaque pixels.
func (e *KMeansExtractor) samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := max(int(math.Sqrt(float64(total)/float64(e.maxSamples))), 1)

	points := make([]point3D, 0, min(total, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := colour.FromColor(img.At(x, y))
			if c.Alpha() == 0 {
				continue
			}
			ch := c.Channels()
			points = append(points, point3D{R: float64(ch.R), G: float64(ch.G), B: float64(ch.B)})
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(rng *rand.Rand, points []point3D, k int) ([]point3D, []float64) {
	centroids := initCentroids(rng, points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		// Fewer than 1% reassigned: converged.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculateCentroids(rng, points, assignments, k)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initCentroids uses k-means++ seeding.
func initCentroids(rng *rand.Rand, points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best, nearest := math.MaxFloat64, 0
	for i, c := range centroids {
		if d := p.distance(c); d < best {
			best, nearest = d, i
		}
	}
	return nearest
}

func recalculateCentroids(rng *rand.Rand, points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] == 0 {
			// Empty cluster: reseed from a random point.
			centroids[i] = points[rng.Intn(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
