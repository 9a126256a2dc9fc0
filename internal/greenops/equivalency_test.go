package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEquivalency(t *testing.T) {
	tests := []struct {
		name        string
		input       CarbonInput
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150kg reference value",
			input:      CarbonInput{Value: 150.0, Unit: "kg"},
			wantMiles:  781.25,
			wantPhones: 18248.18,
		},
		{
			name:       "metric tons normalized",
			input:      CarbonInput{Value: 0.15, Unit: "t"},
			wantMiles:  781.25,
			wantPhones: 18248.18,
		},
		{
			name:       "grams normalized",
			input:      CarbonInput{Value: 150000.0, Unit: "gCO2e"},
			wantMiles:  781.25,
			wantPhones: 18248.18,
		},
		{
			name:        "below threshold returns empty",
			input:       CarbonInput{Value: 0.0005, Unit: "t"},
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			input:       CarbonInput{Value: 0, Unit: "kg"},
			wantIsEmpty: true,
		},
		{
			name:    "negative value returns error",
			input:   CarbonInput{Value: -1, Unit: "kg"},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "invalid unit returns error",
			input:   CarbonInput{Value: 1, Unit: "kWh"},
			wantErr: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateEquivalency(tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty, "IsEmpty should be true on error")
				return
			}

			require.NoError(t, err)
			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				return
			}

			require.Len(t, got.Results, 2)
			assert.Equal(t, EquivalencyMilesDriven, got.Results[0].Type)
			assert.InDelta(t, tt.wantMiles, got.Results[0].Value, tt.wantMiles*0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, got.Results[1].Type)
			assert.InDelta(t, tt.wantPhones, got.Results[1].Value, tt.wantPhones*0.01)
			assert.Contains(t, got.DisplayText, "Equivalent to driving")
		})
	}
}

func TestCalculateEquivalency_LargeNumbers(t *testing.T) {
	got, err := CalculateEquivalency(CarbonInput{Value: 10_000, Unit: "t"})
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "million")
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "EquivalencyType(9)", EquivalencyType(9).String())
}

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{unit: "g", want: 0.002},
		{unit: "KG", want: 2},
		{unit: "tCO2e", want: 2000},
		{unit: "lb", want: 0.907184},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := NormalizeToKg(2, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func BenchmarkCalculate(b *testing.B) {
	p := HouseholdProfile{LEDBulbs: 10, ACHoursPerDay: 4, UseSmartPlug: true, UseEV: true, KmPerDay: 20}
	for b.Loop() {
		_ = Calculate(p)
	}
}
