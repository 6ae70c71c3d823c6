package mix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-mix/algorithms/common"
	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
)

// TrackDistance is the cost of moving from a (playing) to b (next).
//
// The tempo deviation is the pitch change, in semitones, of matching the two
// tempos. The key deviation is the smallest signed transpose from b onto a key
// compatible with a. A transition is cheap only when both are small and agree.
func TrackDistance(a, b Track) float64 {
	tempoDev := common.RatioToSemitones(a.BPM / b.BPM)
	keyDev := float64(keyDeviation(a.Key, b.Key))

	return math.Abs(tempoDev-keyDev) + math.Max(math.Abs(tempoDev), math.Abs(keyDev))
}

// keyDeviation returns the signed transpose distance from next onto the
// closest key compatible with playing that shares next's mode.
// The first candidate wins ties.
func keyDeviation(playing, next tonal.Key) int {
	best := 0
	found := false
	for _, c := range tonal.CompatibleKeys(playing) {
		if c.Mode != next.Mode {
			continue
		}
		d := tonal.MustTransposeDistance(next, c)
		if !found || common.AbsInt(d) < common.AbsInt(best) {
			best = d
			found = true
		}
	}
	return best
}

// NewDistanceMatrix precomputes the cost between every pair of tracks.
// The matrix is symmetric: the entry for {i, j} with i < j is
// TrackDistance(tracks[i], tracks[j]). It returns nil for an empty slice.
func NewDistanceMatrix(tracks []Track) *mat.SymDense {
	n := len(tracks)
	if n == 0 {
		return nil
	}

	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, TrackDistance(tracks[i], tracks[j]))
		}
	}
	return dist
}

// matrixSize returns the dimension of a possibly nil distance matrix
func matrixSize(dist *mat.SymDense) int {
	if dist == nil {
		return 0
	}
	return dist.SymmetricDim()
}
