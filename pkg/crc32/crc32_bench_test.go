package crc32

import (
	"fmt"
	"math/rand"
	"testing"
)

var sinkCrc32 uint32

func BenchmarkUpdate(b *testing.B) {
	sizes := []int{64, 128, 256, 1024, 8192, 65536}
	for _, n := range sizes {
		r := rand.New(rand.NewSource(42))
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(r.Intn(256))
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				c := NewCrc32()
				c.Update(data)
				sinkCrc32 = c.AsUint32()
			}
		})
	}
}

func BenchmarkCombine(b *testing.B) {
	a := NewCrc32()
	a.Update(make([]byte, 4096))
	c := NewCrc32()
	c.Update(make([]byte, 4096))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkCrc32 = Combine(a, c).AsUint32()
	}
}
