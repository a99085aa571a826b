package wave_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefc/catalog"
)

// freeCatalog allows every pattern next to every other one.
func freeCatalog(t testing.TB, weights ...float64) *catalog.Catalog {
	t.Helper()
	var p catalog.Propagator
	for d := range p {
		p[d] = make([][]int, len(weights))
		for t1 := range weights {
			for t2 := range weights {
				p[d][t1] = append(p[d][t1], t2)
			}
		}
	}
	cat, err := catalog.New(weights, p, nil)
	require.NoError(t, err)
	return cat
}

// checkerCatalog has two patterns that must alternate in every direction.
func checkerCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	var p catalog.Propagator
	for d := range p {
		p[d] = [][]int{{1}, {0}}
	}
	cat, err := catalog.New([]float64{1, 1}, p, []string{"black", "white"})
	require.NoError(t, err)
	return cat
}
