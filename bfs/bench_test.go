package bfs_test

import (
	"testing"

	"github.com/katalvlaran/knightpath/bfs"
)

// BenchmarkSearch_Chain measures a search along a linear chain of N vertices.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	next := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(N, 0, N-1, next)
	}
}
