package reach_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/reach"
)

// BenchmarkBFS_16 measures a full distance table on the largest board the CLI
// accepts by default.
func BenchmarkBFS_16(b *testing.B) {
	bd := board.MustBoard(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reach.BFS(bd, board.C(0, 0))
	}
}
