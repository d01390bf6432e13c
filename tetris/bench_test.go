package tetris

import "testing"

func BenchmarkCollides(b *testing.B) {
	grid := NewGrid(10, 20)
	for y := 0; y < 10; y++ {
		fillRow(grid, y, y%10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.Collides(Kind(i%KindCount), 0, 3, 10)
	}
}

func BenchmarkUpdateHardDrop(b *testing.B) {
	e := newTestEngine(b, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Submit(HardDrop)
		e.Update()
		if e.State() == Lost {
			e.Reset()
		}
	}
}

func BenchmarkResolveLines(b *testing.B) {
	e := newTestEngine(b, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 4; y++ {
			fillRow(e.grid, y)
		}
		e.resolveLines()
	}
}

func BenchmarkOverlay(b *testing.B) {
	e := newTestEngine(b, 1)
	e.active.Y = 10

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Overlay()
	}
}
