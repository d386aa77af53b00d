package arena

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage tests scenarios where arena should excel
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Many small allocations with periodic cleanup
	b.Run("ManySmallAllocs/Arena", func(b *testing.B) {
		a := NewArena(64 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			// Allocate 100 small objects
			for j := 0; j < 100; j++ {
				Allocate[byte](a, 64)
			}
			// Clear after each batch (simulates frame or request cleanup)
			a.Clear()
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 2: Struct allocation patterns
	type TestStruct struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructAllocs/Arena", func(b *testing.B) {
		a := NewArena(64 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 50; j++ {
				Push(a, TestStruct{ID: int64(j)})
			}
			a.Clear()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			structs := make([]*TestStruct, 50)
			for j := 0; j < 50; j++ {
				structs[j] = &TestStruct{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 3: Mesh building, the workload the fixed region is sized for
	type vertex struct {
		pos, normal [3]float32
		uv          [2]float32
	}
	quad := []vertex{
		{pos: [3]float32{0, 0, 0}, uv: [2]float32{0, 0}},
		{pos: [3]float32{1, 0, 0}, uv: [2]float32{1, 0}},
		{pos: [3]float32{1, 1, 0}, uv: [2]float32{1, 1}},
		{pos: [3]float32{0, 1, 0}, uv: [2]float32{0, 1}},
	}
	quadIndices := []uint32{0, 1, 2, 2, 3, 0}

	b.Run("MeshBuild/Arena", func(b *testing.B) {
		a := NewArena(1 << 20)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for q := 0; q < 256; q++ {
				PushSlice(a, quad)
				PushSlice(a, quadIndices)
			}
			a.Clear()
		}
	})

	b.Run("MeshBuild/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var verts []vertex
			var indices []uint32
			for q := 0; q < 256; q++ {
				verts = append(verts, quad...)
				indices = append(indices, quadIndices...)
			}
			_, _ = verts, indices
		}
	})
}
