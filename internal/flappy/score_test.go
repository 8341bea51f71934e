package flappy

import "testing"

func TestCheckPassedOnce(t *testing.T) {
	o := Obstacle{X: 100, Width: 64}

	if CheckPassed(&o, 164) {
		t.Error("passed while level with the trailing edge")
	}
	if !CheckPassed(&o, 165) {
		t.Fatal("expected pass beyond the trailing edge")
	}
	if !o.Passed {
		t.Error("Passed flag not set")
	}
	for _, x := range []float64{166, 200, 1000} {
		if CheckPassed(&o, x) {
			t.Errorf("obstacle passed twice at x=%v", x)
		}
	}
}

func TestRecordGameOverTrace(t *testing.T) {
	scores := []int{25, 10, 30, 5}
	want := []int{25, 25, 30, 30}

	high := 0
	for i, s := range scores {
		high = RecordGameOver(s, high)
		if high != want[i] {
			t.Errorf("after score %d: high = %d, want %d", s, high, want[i])
		}
	}
}
