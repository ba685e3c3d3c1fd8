package polyline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_HandEncoded(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Point
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single positive latitude step",
			input:    "B@",
			expected: []Point{{Lat: 0.00001, Lon: 0}},
		},
		{
			name:     "single negative latitude step",
			input:    "C@",
			expected: []Point{{Lat: -0.00001, Lon: 0}},
		},
		{
			name:     "multi-group integer",
			input:    "`A@",
			expected: []Point{{Lat: 0.00016, Lon: 0}},
		},
		{
			name:     "deltas accumulate",
			input:    "B@BB",
			expected: []Point{{Lat: 0.00001, Lon: 0}, {Lat: 0.00002, Lon: 0.00001}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.input)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i].Lat, got[i].Lat, 1e-9)
				assert.InDelta(t, tt.expected[i].Lon, got[i].Lon, 1e-9)
			}
		})
	}
}

func TestDecode_MalformedTrailingData(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
	}{
		{name: "latitude without longitude", input: "B", wantCount: 0},
		{name: "dangling latitude after a point", input: "B@B", wantCount: 1},
		{name: "ends mid-integer", input: "`", wantCount: 0},
		{name: "character below alphabet", input: "B@ ", wantCount: 1},
		{name: "only garbage", input: "!!!!", wantCount: 0},
		{name: "endless continuation", input: "B@``````````````````", wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Len(t, Decode(tt.input), tt.wantCount)
			})
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	points := []Point{
		{Lat: 52.5160, Lon: 13.3779},
		{Lat: 52.5206, Lon: 13.3862},
		{Lat: 52.5121, Lon: 13.3900},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 40.7128, Lon: -74.0060},
		{Lat: 0, Lon: 0},
	}

	got := Decode(Encode(points))
	require.Len(t, got, len(points))
	for i, p := range points {
		assert.LessOrEqual(t, math.Abs(got[i].Lat-p.Lat), 0.5e-5, "lat at %d", i)
		assert.LessOrEqual(t, math.Abs(got[i].Lon-p.Lon), 0.5e-5, "lon at %d", i)
	}
}

func TestDecode_FallsBackToSixDigitPrecision(t *testing.T) {
	points := []Point{
		{Lat: 41.878113, Lon: -87.629799},
		{Lat: 41.881832, Lon: -87.623177},
	}
	encoded := EncodeWithPrecision(points, Precision6)

	got := Decode(encoded)
	require.Len(t, got, 2)
	for i, p := range points {
		assert.InDelta(t, p.Lat, got[i].Lat, 0.5e-6)
		assert.InDelta(t, p.Lon, got[i].Lon, 0.5e-6)
	}
}

func TestDecodeWithPrecision(t *testing.T) {
	points := []Point{{Lat: 1.5, Lon: 2.25}}
	got := DecodeWithPrecision(EncodeWithPrecision(points, 1e7), 1e7)
	require.Len(t, got, 1)
	assert.InDelta(t, 1.5, got[0].Lat, 1e-9)
	assert.InDelta(t, 2.25, got[0].Lon, 1e-9)

	assert.Empty(t, DecodeWithPrecision("B@", 0))
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", EncodeWithPrecision([]Point{{Lat: 1, Lon: 1}}, -1))
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lon: -180}.Valid())
	assert.False(t, Point{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lon: 181}.Valid())
	assert.False(t, Point{Lat: math.NaN(), Lon: 0}.Valid())
}
