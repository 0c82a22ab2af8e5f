package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(1<<20, 16); !ok || p != 16<<20 {
		t.Fatalf("MulOverflowSafe(1<<20,16)=%d,%v", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero operand should give 0,true")
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := MulOverflowSafe(-1, 4); ok {
		t.Fatalf("negative operands are rejected")
	}
}

func TestCheckListBounds(t *testing.T) {
	end, err := CheckListBounds(64, 16, 3, 16)
	if err != nil || end != 64 {
		t.Fatalf("CheckListBounds = %d, %v; want 64, nil", end, err)
	}
	if _, err := CheckListBounds(64, 17, 3, 16); err == nil {
		t.Fatalf("expected out of bounds")
	}
	if _, err := CheckListBounds(64, 0, math.MaxInt, 16); err == nil {
		t.Fatalf("expected overflow")
	}
	if _, err := CheckListBounds(64, -1, 1, 1); err == nil {
		t.Fatalf("expected negative offset error")
	}
}

func TestCheckCount(t *testing.T) {
	if n, err := CheckCount(5, 10); err != nil || n != 5 {
		t.Fatalf("CheckCount(5,10) = %d, %v", n, err)
	}
	if _, err := CheckCount(11, 10); err == nil {
		t.Fatalf("expected limit error")
	}
	if _, err := CheckCount(math.MaxUint64, math.MaxInt); err == nil {
		t.Fatalf("expected limit error for MaxUint64")
	}
}

func TestAlign(t *testing.T) {
	cases := [][3]int{{0, 8, 0}, {1, 8, 8}, {8, 8, 8}, {17, 8, 24}, {58, 8, 64}, {3, 4, 4}, {5, 1, 5}}
	for _, c := range cases {
		if got := Align(c[0], c[1]); got != c[2] {
			t.Fatalf("Align(%d,%d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
}
