package graph

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

var allStyles = []Style{
	Lines(LineSolid),
	Lines(LineSlim),
	Lines(LineDotted),
	Dotted(),
	Custom([]rune("01234567")),
}

// TestCompose_FlatSolidSingle pins the flat-line scenario
func TestCompose_FlatSolidSingle(t *testing.T) {
	series := make([]float64, MinSeries)
	for i := range series {
		series[i] = 10
	}

	chart, err := Compose(series, Lines(LineSolid), RowsSingle)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if len(chart.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(chart.Rows))
	}
	if want := strings.Repeat("▄", ChartWidth); chart.Rows[0] != want {
		t.Errorf("Flat chart mismatch:\n got %q\nwant %q", chart.Rows[0], want)
	}
}

// TestCompose_RisingSolidSingle pins the monotonic ramp scenario
func TestCompose_RisingSolidSingle(t *testing.T) {
	chart, err := Compose(ramp(0, 24), Lines(LineSolid), RowsSingle)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	want := "▁▁▁" + "▁▁▁" + "▁▁▁" + "▁▁▂" + // 0 0 0 0
		"▂▂▂" + "▂▂▂" + "▂▂▃" + // 1 1 1
		"▃▃▃" + "▃▃▃" + "▃▃▃" + "▃▃▄" + // 2 2 2 2
		"▄▄▄" + "▄▄▄" + "▄▄▅" + // 3 3 3
		"▅▅▅" + "▅▅▅" + "▅▅▅" + "▅▅▆" + // 4 4 4 4
		"▆▆▆" + "▆▆▆" + "▆▆▇" + // 5 5 5
		"▇▇▇" + "▇▇▇" + "▇▇█" // 6 6 6, lookahead 7
	if chart.Rows[0] != want {
		t.Errorf("Rising chart mismatch:\n got %q\nwant %q", chart.Rows[0], want)
	}

	// Every transition-out either holds the level or steps up by one
	runes := []rune(chart.Rows[0])
	for i := 0; i < ChartPoints; i++ {
		cur := chart.Levels[i]
		out := indexOf(chart.Palette, runes[i*GlyphsPerPoint+2])
		if out != cur && out != cur+1 {
			t.Errorf("Point %d: transition-out level %d from %d", i, out, cur)
		}
		if out > 7 {
			t.Errorf("Point %d: level %d exceeds palette", i, out)
		}
	}
}

// TestCompose_MultiLevelJump pins the two-step smoothing across large jumps
func TestCompose_MultiLevelJump(t *testing.T) {
	// Values 0..7 quantize to themselves on the solid palette
	series := make([]float64, MinSeries)
	copy(series, []float64{0, 4, 4})
	for i := 3; i < MinSeries; i++ {
		series[i] = 7
	}

	chart, err := Compose(series, Lines(LineSolid), RowsSingle)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	want := "▁▁▃" + "▃▅▅" + "▅▅▇" + "▇██" + strings.Repeat("███", ChartPoints-4)
	if chart.Rows[0] != want {
		t.Errorf("Jump chart mismatch:\n got %q\nwant %q", chart.Rows[0], want)
	}
}

// TestCompose_SingleLength verifies 72 runes per row for every style
func TestCompose_SingleLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, style := range allStyles {
		chart, err := Compose(randomSeries(rng, MinSeries), style, RowsSingle)
		if err != nil {
			t.Fatalf("%v: Compose failed: %v", style, err)
		}
		if n := utf8.RuneCountInString(chart.Rows[0]); n != ChartWidth {
			t.Errorf("%v: expected %d runes, got %d", style, ChartWidth, n)
		}
	}
}

// TestCompose_DoubleRows verifies row lengths and half ownership in double mode
func TestCompose_DoubleRows(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, style := range allStyles {
		for iter := 0; iter < 50; iter++ {
			chart, err := Compose(randomSeries(rng, MinSeries+rng.Intn(5)), style, RowsDouble)
			if err != nil {
				t.Fatalf("%v: Compose failed: %v", style, err)
			}
			if len(chart.Rows) != 2 {
				t.Fatalf("%v: expected 2 rows, got %d", style, len(chart.Rows))
			}

			upper, lower := []rune(chart.Rows[0]), []rune(chart.Rows[1])
			if len(upper) != ChartWidth || len(lower) != ChartWidth {
				t.Fatalf("%v: row lengths %d/%d, want %d", style, len(upper), len(lower), ChartWidth)
			}

			idle := ' '
			if fill, ok := chart.Palette.Fill(); ok {
				idle = fill
			}
			mid := chart.Palette.Mid()
			for i := 0; i < ChartPoints; i++ {
				drawnRow, idleRow := lower, upper
				if chart.Levels[i] > mid {
					drawnRow, idleRow = upper, lower
				}
				for k := 0; k < GlyphsPerPoint; k++ {
					pos := i*GlyphsPerPoint + k
					if idleRow[pos] != idle {
						t.Fatalf("%v: point %d idle row has %q", style, i, idleRow[pos])
					}
					if idx := indexOf(chart.Palette, drawnRow[pos]); idx < 0 {
						t.Fatalf("%v: point %d drawn glyph %q not in palette", style, i, drawnRow[pos])
					}
				}
			}
		}
	}
}

// TestCompose_DoubleFlat draws a flat line at the top of the lower half
func TestCompose_DoubleFlat(t *testing.T) {
	series := make([]float64, MinSeries)
	chart, err := Compose(series, Lines(LineSolid), RowsDouble)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if chart.Rows[0] != strings.Repeat(" ", ChartWidth) {
		t.Errorf("Upper row should be blank, got %q", chart.Rows[0])
	}
	if chart.Rows[1] != strings.Repeat("█", ChartWidth) {
		t.Errorf("Lower row should be full blocks, got %q", chart.Rows[1])
	}

	chart, err = Compose(series, Dotted(), RowsDouble)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if chart.Rows[0] != strings.Repeat(string(FillGlyph), ChartWidth) {
		t.Errorf("Dotted idle row should be filled, got %q", chart.Rows[0])
	}
}

// TestCompose_DoubleTransitionsStayInHalf checks nudged glyphs never cross the midpoint
func TestCompose_DoubleTransitionsStayInHalf(t *testing.T) {
	// Alternate between the extremes of a 16-level palette
	series := make([]float64, MinSeries)
	for i := range series {
		if i%2 == 1 {
			series[i] = 15
		}
	}
	chart, err := Compose(series, Custom([]rune("abcdefgh")), RowsDouble)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	upper, lower := []rune(chart.Rows[0]), []rune(chart.Rows[1])
	for i := 0; i < ChartPoints; i++ {
		row := lower
		if i%2 == 1 {
			row = upper
		}
		seg := string(row[i*GlyphsPerPoint : (i+1)*GlyphsPerPoint])
		// Level 0 steps up to 2 (c), level 15 steps down to 13 (f)
		var want string
		switch {
		case i == 0:
			want = "aac"
		case i%2 == 1:
			want = "fhf"
		default:
			want = "cac"
		}
		if seg != want {
			t.Errorf("Point %d: got %q, want %q", i, seg, want)
		}
	}
}

func TestCompose_InvalidInput(t *testing.T) {
	short := make([]float64, MinSeries-1)
	if _, err := Compose(short, Lines(LineSolid), RowsSingle); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Short series: expected ErrInvalidInput, got %v", err)
	}

	bad := make([]float64, MinSeries)
	bad[5] = math.NaN()
	if _, err := Compose(bad, Lines(LineSolid), RowsSingle); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN series: expected ErrInvalidInput, got %v", err)
	}

	ok := make([]float64, MinSeries)
	if _, err := Compose(ok, Custom([]rune("abc")), RowsDouble); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Bad custom: expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNudge(t *testing.T) {
	tests := []struct {
		neighbor, cur, lo, hi, want int
	}{
		{3, 3, 0, 7, 3},  // equal
		{4, 3, 0, 7, 4},  // one up
		{7, 3, 0, 7, 5},  // jump up, two steps
		{0, 5, 0, 7, 3},  // jump down, two steps
		{7, 6, 0, 7, 7},  // one step at top
		{2, 1, 0, 1, 1},  // no room above
		{0, 3, 2, 7, 2},  // two steps would leave half, one step fits
		{15, 7, 0, 7, 7}, // neighbor in other half, no room
		{0, 8, 8, 15, 8}, // bottom of upper half holds
	}
	for _, tt := range tests {
		if got := nudge(tt.neighbor, tt.cur, tt.lo, tt.hi); got != tt.want {
			t.Errorf("nudge(%d, %d, [%d,%d]) = %d, want %d", tt.neighbor, tt.cur, tt.lo, tt.hi, got, tt.want)
		}
	}
}

// TestCarry_SingleMatchesDouble records that both carry rules agree for every in-palette pair
func TestCarry_SingleMatchesDouble(t *testing.T) {
	for _, size := range []int{4, 8, 16} {
		for cur := 0; cur < size; cur++ {
			for next := 0; next < size; next++ {
				s := carrySingle(cur, next, 0, size-1)
				d := carryDouble(cur, next)
				if s != d {
					t.Errorf("size %d: carry(%d -> %d) single=%d double=%d", size, cur, next, s, d)
				}
				if s < 0 || s >= size {
					t.Errorf("size %d: carry(%d -> %d) = %d out of palette", size, cur, next, s)
				}
			}
		}
	}
}

func randomSeries(rng *rand.Rand, n int) []float64 {
	series := make([]float64, n)
	base := rng.Float64()*60 - 30
	for i := range series {
		series[i] = base + rng.NormFloat64()*8
	}
	return series
}

func indexOf(p Palette, r rune) int {
	for i, g := range p.Glyphs {
		if g == r {
			return i
		}
	}
	return -1
}
