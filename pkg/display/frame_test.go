//nolint:funlen // ok for tests
package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-dashboard-go/pkg/model"
)

func sampleState() *model.RaceState {
	state := model.NewRaceState()
	state.PlayerSlot = 0
	state.PlayerCarStatus = &model.CarStatusSummary{
		Tyre:              "Soft",
		RearLeftWear:      10,
		RearRightWear:     55,
		FrontLeftWear:     71,
		FrontRightWear:    40,
		FuelRemainingLaps: 12.5,
		FuelMix:           "Standard",
	}
	state.PlayerTelemetry = &model.PlayerTelemetry{
		Speed:            250,
		Throttle:         0.8,
		Brake:            0.1,
		Gear:             4,
		SuggestedGear:    0,
		EngineRPM:        11000,
		RevLightsPercent: 65,
	}
	state.Positions = []model.PositionEntry{
		{
			IsPlayer:      true,
			Position:      1,
			Driver:        model.DriverDetails{Driver: "Lewis Hamilton", RaceNumber: 44},
			BestLap:       90500 * time.Millisecond,
			LastLap:       91111 * time.Millisecond,
			Tyre:          "Soft",
			CurrentLapNum: 5,
		},
		{
			Position:      2,
			Driver:        model.DriverDetails{Driver: "Valtteri Bottas", RaceNumber: 77},
			BestLap:       90900 * time.Millisecond,
			LastLap:       92000 * time.Millisecond,
			Tyre:          "Medium",
			CurrentLapNum: 5,
		},
	}
	return state
}

func TestBuildFrame(t *testing.T) {
	frame := Build(sampleState())

	require.Len(t, frame.TyreWear, 4)
	assert.Equal(t, SeveritySafe, frame.TyreWear[0].Severity)
	assert.Equal(t, SeverityWarning, frame.TyreWear[1].Severity)
	assert.Equal(t, SeverityCritical, frame.TyreWear[2].Severity)

	require.Len(t, frame.Telemetry, 3)
	// throttle 0.8 renders as an 80% gauge
	assert.Equal(t, 80, frame.Telemetry[2].Percent)
	assert.Equal(t, SeverityCritical, frame.Telemetry[2].Severity)

	assert.Contains(t, frame.CarInfo, "Suggested Gear: [N/A]")

	require.Len(t, frame.Positions.Rows, 2)
	assert.True(t, frame.Positions.Rows[0].Highlight)
	assert.False(t, frame.Positions.Rows[1].Highlight)
	assert.Equal(t,
		[]string{"1", "Hamilton", "5", "1:31.111", "1:30.500", "Soft"},
		frame.Positions.Rows[0].Cells)
}

func TestBuildFrameSpeedTrapWithoutTelemetry(t *testing.T) {
	state := model.NewRaceState()
	state.SpeedTrap = 301.5
	state.HasSpeedTrap = true

	frame := Build(state)

	assert.Contains(t, frame.CarInfo, "Speed trap: 301.5 KM/H")
}

func TestBuildFrameEmptyState(t *testing.T) {
	frame := Build(model.NewRaceState())

	assert.Empty(t, frame.TyreWear)
	assert.Empty(t, frame.Telemetry)
	assert.Empty(t, frame.Positions.Rows)
}

func TestAnsiRendererHighlightsPlayerRow(t *testing.T) {
	var out strings.Builder
	renderer := NewAnsiRenderer(&out)

	require.NoError(t, renderer.Draw(Build(sampleState())))

	assert.Contains(t, out.String(), ansiInverse)
	assert.Contains(t, out.String(), "Hamilton")
	assert.Contains(t, out.String(), "Live Position")
}
