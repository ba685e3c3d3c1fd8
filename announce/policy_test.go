package announce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Table(t *testing.T) {
	tests := []struct {
		class    RoadClass
		expected Thresholds
	}{
		{Highway, Thresholds{OffRouteMeters: 90, FarMeters: 1200, NearMeters: 600, ImmediateMeters: 400}},
		{Arterial, Thresholds{OffRouteMeters: 60, FarMeters: 400, NearMeters: 200, ImmediateMeters: 100}},
		{Local, Thresholds{OffRouteMeters: 35, FarMeters: 250, NearMeters: 150, ImmediateMeters: 80}},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Lookup(tt.class))
			assert.Equal(t, tt.expected, DefaultPolicy().Lookup(tt.class))
		})
	}
}

func TestLookup_UnknownClassUsesLocal(t *testing.T) {
	assert.Equal(t, Lookup(Local), Lookup(RoadClass(42)))
	assert.Equal(t, "RoadClass(42)", RoadClass(42).String())
}

func TestDefaultPolicy_IsACopy(t *testing.T) {
	p := DefaultPolicy()
	p[Highway] = Thresholds{OffRouteMeters: 1}
	assert.Equal(t, 90.0, Lookup(Highway).OffRouteMeters)
}

func TestPolicy_LookupFallsBackToTable(t *testing.T) {
	p := Policy{Local: {OffRouteMeters: 20}}
	assert.Equal(t, 20.0, p.Lookup(Local).OffRouteMeters)
	assert.Equal(t, 90.0, p.Lookup(Highway).OffRouteMeters)
}

func TestParseRoadClass(t *testing.T) {
	tests := []struct {
		input   string
		want    RoadClass
		wantErr bool
	}{
		{"highway", Highway, false},
		{" Arterial ", Arterial, false},
		{"LOCAL", Local, false},
		{"", Local, false},
		{"motorway", Local, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoadClass(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholds_Stage(t *testing.T) {
	hw := Lookup(Highway)
	tests := []struct {
		name     string
		distance float64
		want     Stage
	}{
		{"beyond far", 1500, StageNone},
		{"at far", 1200, StageFar},
		{"between far and near", 800, StageFar},
		{"near", 500, StageNear},
		{"immediate", 400, StageImmediate},
		{"at maneuver", 0, StageImmediate},
		{"negative", -1, StageNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hw.Stage(tt.distance))
		})
	}
	assert.Equal(t, "near", StageNear.String())
	assert.Equal(t, "none", StageNone.String())
}

func TestTextMarshalling(t *testing.T) {
	b, err := StageImmediate.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "immediate", string(b))

	b, err = Arterial.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "arterial", string(b))

	var st Stage
	require.NoError(t, st.UnmarshalText([]byte("near")))
	assert.Equal(t, StageNear, st)
	assert.Error(t, st.UnmarshalText([]byte("soon")))

	var c RoadClass
	require.NoError(t, c.UnmarshalText([]byte("highway")))
	assert.Equal(t, Highway, c)
	assert.Error(t, c.UnmarshalText([]byte("dirt")))
}
