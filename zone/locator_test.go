package zone

import (
	"math"
	"testing"
)

func TestLocate(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		starts []float64
		ends   []float64
		want   Interval
		ok     bool
	}{
		{"before_every_start", -1, []float64{0, 20}, []float64{10, 30}, Interval{}, false},
		{"inside_first", 5, []float64{0, 20}, []float64{10, 30}, Interval{0, 10}, true},
		{"at_start", 0, []float64{0}, []float64{10}, Interval{0, 10}, true},
		{"at_end", 10, []float64{0}, []float64{10}, Interval{0, 10}, true},
		{"gap_spans_to_next_end", 15, []float64{0, 20}, []float64{10, 30}, Interval{0, 30}, true},
		{"inside_second", 25, []float64{20, 0}, []float64{30, 10}, Interval{20, 30}, true},
		{"no_end_ahead", 40, []float64{0, 20}, []float64{10, 30}, Interval{}, false},
		{"no_ends", 5, []float64{0}, nil, Interval{}, false},
		{"no_starts", 5, nil, []float64{10}, Interval{}, false},
		{"empty", 5, nil, nil, Interval{}, false},
		{"duplicate_positions", 5, []float64{0, 0}, []float64{10, 10}, Interval{0, 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Locate(c.x, c.starts, c.ends)
			if ok != c.ok {
				t.Fatalf("expected ok=%v, got %v (interval %+v)", c.ok, ok, got)
			}
			if ok && got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestLocateClosedBeforeStarts(t *testing.T) {
	starts := []float64{3, 8, 12}
	ends := []float64{5, 9, 100}
	for x := -10.0; x < 3; x += 0.5 {
		if _, ok := Locate(x, starts, ends); ok {
			t.Fatalf("expected closed gate at x=%v", x)
		}
	}
}

func TestPassed(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		starts []float64
		ends   []float64
		start  float64
		ok     bool
	}{
		{"no_start_passed", 1, []float64{5}, []float64{10}, 0, false},
		{"end_behind_start", 6, []float64{5}, []float64{3}, 5, true},
		{"end_ahead_only", 6, []float64{5}, []float64{7}, 5, true},
		{"end_passed", 12, []float64{5}, []float64{10}, 0, false},
		{"end_equal_start", 6, []float64{5}, []float64{5}, 0, false},
		{"reopened_by_later_start", 25, []float64{0, 20}, []float64{10}, 20, true},
		{"no_ends", 4, []float64{0}, nil, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, ok := Passed(c.x, c.starts, c.ends)
			if ok != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, ok)
			}
			if ok && start != c.start {
				t.Fatalf("expected start %v, got %v", c.start, start)
			}
		})
	}
}

func TestCap(t *testing.T) {
	if got := Cap(6, []float64{7}); got != 1 {
		t.Fatalf("expected cap 1, got %v", got)
	}
	if got := Cap(0, []float64{30, 10, -4}); got != 10 {
		t.Fatalf("expected nearest end ahead, got %v", got)
	}
	if got := Cap(10, []float64{10}); !math.IsInf(got, 1) {
		t.Fatalf("end at origin is not ahead, expected +Inf, got %v", got)
	}
	if got := Cap(0, nil); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf without ends, got %v", got)
	}
}

func TestPolicyLocate(t *testing.T) {
	starts := []float64{5}
	ends := []float64{3}

	if PolicyBounded.Permits(6, starts, ends) {
		t.Fatalf("bounded policy must reject a zone with no end ahead")
	}
	iv, ok := PolicyPassed.Locate(6, starts, ends)
	if !ok {
		t.Fatalf("passed policy should permit when the end lies behind the start")
	}
	if iv.Low != 5 || !math.IsInf(iv.High, 1) {
		t.Fatalf("expected [5, +Inf), got %+v", iv)
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{"": PolicyBounded, "bounded": PolicyBounded, " Passed ": PolicyPassed}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("sometimes"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestSetPositionsSkipsDeadMarkers(t *testing.T) {
	markers := []Marker{
		{Ref: 1, Kind: Start, Category: "jump"},
		{Ref: 2, Kind: End, Category: "jump"},
		{Ref: 3, Kind: Start, Category: "blow"},
		{Ref: 4, Kind: End, Category: "jump"},
	}
	set := NewSet("jump", markers)
	if len(set.Starts) != 1 || len(set.Ends) != 2 {
		t.Fatalf("expected 1 start and 2 ends, got %+v", set)
	}

	alive := map[Ref]float64{1: 0, 2: 10, 4: 20}
	resolver := ResolverFunc(func(ref Ref) (float64, bool) {
		x, ok := alive[ref]
		return x, ok
	})

	_, ends := set.Positions(resolver)
	if len(ends) != 2 {
		t.Fatalf("expected 2 live ends, got %v", ends)
	}

	delete(alive, 2)
	starts, ends := set.Positions(resolver)
	if len(ends) != 1 || ends[0] != 20 {
		t.Fatalf("destroyed end should be skipped, got %v", ends)
	}
	iv, ok := Locate(15, starts, ends)
	if !ok || iv != (Interval{0, 20}) {
		t.Fatalf("expected zone to extend to the next live end, got %+v ok=%v", iv, ok)
	}
}
