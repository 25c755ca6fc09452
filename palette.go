package dotgrid

import (
	"math/rand"
	"sort"
)

// Algorithm selects a palette-extraction strategy.
type Algorithm int

// Supported palette-extraction algorithms.
const (
	// AlgorithmMedianCut recursively splits the color population along
	// the channel with the widest range. Deterministic.
	AlgorithmMedianCut Algorithm = iota
	// AlgorithmKMeans clusters colors around iteratively refined
	// centroids. Randomly seeded unless ExtractOptions.Rand is set.
	AlgorithmKMeans
	// AlgorithmFrequency keeps the most frequent colors. Deterministic.
	AlgorithmFrequency
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmMedianCut:
		return "median-cut"
	case AlgorithmKMeans:
		return "k-means"
	case AlgorithmFrequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// Palette is an ordered list of unique colors. Order is the producing
// algorithm's natural order (box order for median-cut, centroid order
// for k-means, descending frequency otherwise) and carries no meaning
// beyond display.
type Palette []Color

// Nearest returns the palette entry closest to c by squared RGB
// distance, alpha excluded. Ties resolve to the first minimal entry in
// palette order. The palette must be non-empty.
func (pal Palette) Nearest(c Color) Color {
	best := pal[0]
	bestDist := c.DistanceSquared(pal[0])
	for _, pc := range pal[1:] {
		if d := c.DistanceSquared(pc); d < bestDist {
			best = pc
			bestDist = d
		}
	}
	return best
}

// ExtractOptions configures ExtractPalette.
type ExtractOptions struct {
	// Colors is the target palette size. Callers clamp it to [2, 256].
	Colors int
	// Algorithm selects the extraction strategy.
	Algorithm Algorithm
	// Rand seeds k-means centroid initialization. When nil a shared
	// global source is used and results vary between runs. The other
	// algorithms ignore it.
	Rand *rand.Rand
}

// ExtractPalette derives a reduced palette from the opaque pixels of
// the pixmap. A fully transparent or empty pixmap yields an empty
// palette. When the pixmap holds no more distinct opaque colors than
// requested, the distinct colors are returned unchanged in first-seen
// order, whatever the algorithm.
func ExtractPalette(p *Pixmap, opts ExtractOptions) Palette {
	colors := opaqueColors(p)
	if len(colors) == 0 {
		return nil
	}

	distinct := distinctColors(colors)
	if len(distinct) <= opts.Colors {
		return distinct
	}

	switch opts.Algorithm {
	case AlgorithmKMeans:
		return kMeansPalette(colors, opts.Colors, opts.Rand)
	case AlgorithmFrequency:
		return frequencyPalette(colors, opts.Colors)
	default:
		return medianCutPalette(colors, opts.Colors)
	}
}

// CountUniqueColors returns the number of distinct opaque colors in the
// pixmap. Fully transparent pixels do not count.
func CountUniqueColors(p *Pixmap) int {
	seen := make(map[Color]struct{})
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.PixelAt(x, y)
			if c.Transparent() {
				continue
			}
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

// opaqueColors lists the colors of all pixels with nonzero alpha, in
// row-major order, duplicates included.
func opaqueColors(p *Pixmap) []Color {
	var colors []Color
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.PixelAt(x, y)
			if c.Transparent() {
				continue
			}
			colors = append(colors, c)
		}
	}
	return colors
}

// distinctColors deduplicates while preserving first-seen order.
func distinctColors(colors []Color) Palette {
	seen := make(map[Color]struct{}, len(colors))
	var out Palette
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// --- median cut ---

// colorBox is one partition of the color population during median-cut.
type colorBox []Color

// channelRange returns the [min, max] spread of one RGB channel
// (0 = R, 1 = G, 2 = B) across the box.
func (box colorBox) channelRange(ch int) int {
	lo, hi := 255, 0
	for _, c := range box {
		v := int(channelValue(c, ch))
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

func channelValue(c Color, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// mean reduces the box to the rounded per-channel mean, alpha included.
func (box colorBox) mean() Color {
	var r, g, b, a int
	for _, c := range box {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(box)
	return Color{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
		A: uint8((a + n/2) / n),
	}
}

// medianCutPalette reduces colors to at most target entries by
// repeatedly splitting the box with the globally widest channel range
// at its median. Splitting stops early once every remaining box is
// monochromatic, so the result can fall short of target.
func medianCutPalette(colors []Color, target int) Palette {
	boxes := []colorBox{colorBox(colors)}

	for len(boxes) < target {
		bestBox, bestCh, bestRange := -1, 0, 0
		for i, box := range boxes {
			if len(box) < 2 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				if r := box.channelRange(ch); r > bestRange {
					bestBox, bestCh, bestRange = i, ch, r
				}
			}
		}
		if bestRange <= 0 {
			break
		}

		box := boxes[bestBox]
		sort.SliceStable(box, func(i, j int) bool {
			return channelValue(box[i], bestCh) < channelValue(box[j], bestCh)
		})
		mid := len(box) / 2

		// Replace the split box in place so palette order follows the
		// splitting order.
		boxes[bestBox] = box[:mid]
		boxes = append(boxes, nil)
		copy(boxes[bestBox+2:], boxes[bestBox+1:])
		boxes[bestBox+1] = box[mid:]
	}

	Logger().Debug("median cut complete", "boxes", len(boxes), "target", target)

	pal := make(Palette, len(boxes))
	for i, box := range boxes {
		pal[i] = box.mean()
	}
	return pal
}

// --- k-means ---

const kMeansMaxIterations = 20

// kMeansPalette clusters colors around target centroids seeded by the
// farthest-point heuristic and refined for at most kMeansMaxIterations
// rounds, stopping early once no centroid's RGB moves.
func kMeansPalette(colors []Color, target int, rng *rand.Rand) Palette {
	centroids := seedCentroids(colors, target, rng)

	assign := make([]int, len(colors))
	for iter := 0; iter < kMeansMaxIterations; iter++ {
		// Assignment uses the full RGBA distance so translucent pixels
		// cluster with like alpha.
		for i, c := range colors {
			best, bestDist := 0, c.distanceSquaredRGBA(centroids[0])
			for j := 1; j < len(centroids); j++ {
				if d := c.distanceSquaredRGBA(centroids[j]); d < bestDist {
					best, bestDist = j, d
				}
			}
			assign[i] = best
		}

		moved := false
		for j := range centroids {
			var r, g, b, a, n int
			for i, c := range colors {
				if assign[i] != j {
					continue
				}
				r += int(c.R)
				g += int(c.G)
				b += int(c.B)
				a += int(c.A)
				n++
			}
			if n == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			next := Color{
				R: uint8((r + n/2) / n),
				G: uint8((g + n/2) / n),
				B: uint8((b + n/2) / n),
				A: uint8((a + n/2) / n),
			}
			if next.R != centroids[j].R || next.G != centroids[j].G || next.B != centroids[j].B {
				moved = true
			}
			centroids[j] = next
		}
		if !moved {
			Logger().Debug("k-means converged", "iterations", iter+1)
			break
		}
	}

	return Palette(centroids)
}

// seedCentroids picks target seeds via farthest-point sampling: a
// random first seed, then repeatedly the color maximizing its minimum
// distance to the seeds chosen so far.
func seedCentroids(colors []Color, target int, rng *rand.Rand) []Color {
	pick := func(n int) int {
		if rng != nil {
			return rng.Intn(n)
		}
		return rand.Intn(n)
	}

	centroids := make([]Color, 0, target)
	centroids = append(centroids, colors[pick(len(colors))])

	for len(centroids) < target {
		var farthest Color
		farthestDist := -1
		for _, c := range colors {
			minDist := c.distanceSquaredRGBA(centroids[0])
			for _, ct := range centroids[1:] {
				if d := c.distanceSquaredRGBA(ct); d < minDist {
					minDist = d
				}
			}
			if minDist > farthestDist {
				farthest, farthestDist = c, minDist
			}
		}
		centroids = append(centroids, farthest)
	}
	return centroids
}

// --- frequency ---

// frequencyPalette keeps the target most frequent colors, ties broken
// by first-encountered order.
func frequencyPalette(colors []Color, target int) Palette {
	counts := make(map[Color]int)
	var order []Color
	for _, c := range colors {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > target {
		order = order[:target]
	}
	return Palette(order)
}
