package wavefront

import "testing"

func TestBufferPush(t *testing.T) {
	var b buffer[float32]

	b.push(1, 2, 3)
	if b.len() != 3 {
		t.Fatalf("len() = %d, want 3", b.len())
	}
	if cap(b.elems) != initialCap {
		t.Errorf("cap = %d, want %d", cap(b.elems), initialCap)
	}

	for i := 0; i < 100; i++ {
		b.push(float32(i))
	}
	if b.len() != 103 {
		t.Errorf("len() = %d, want 103", b.len())
	}
	if b.elems[0] != 1 || b.elems[2] != 3 || b.elems[3] != 0 {
		t.Error("growth lost earlier elements")
	}
}

func TestBufferReserveDoubles(t *testing.T) {
	var b buffer[uint32]

	b.reserve(initialCap + 1)
	if got := cap(b.elems); got != initialCap*2 {
		t.Errorf("cap after reserve(%d) = %d, want %d", initialCap+1, got, initialCap*2)
	}
	if b.len() != 0 {
		t.Errorf("reserve changed len to %d", b.len())
	}

	// a reserved burst must not reallocate
	b.push(1, 2, 3)
	before := cap(b.elems)
	b.reserve(3)
	b.push(4)
	b.push(5)
	b.push(6)
	if cap(b.elems) != before {
		t.Error("pushes within reserved capacity reallocated")
	}
}
