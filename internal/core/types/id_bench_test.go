package types

import (
	"testing"

	"github.com/p5d/RustyRougelike/internal/core/types/enums"
)

// Sinks не дают компилятору выкинуть вычисления.
var (
	sinkID  EntityID
	sinkU32 uint32
)

func BenchmarkPackEntityID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = PackEntityID(enums.EntityKindMonster, uint32(i), uint32(i))
	}
}

func BenchmarkEntityID_Unpack(b *testing.B) {
	id := PackEntityID(enums.EntityKindMonster, 17, 4242)
	for i := 0; i < b.N; i++ {
		sinkU32 = id.Index() + id.Generation()
	}
}
