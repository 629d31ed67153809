package display

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-dashboard-go/pkg/model"
)

// Frame is the display tree derived from one race state snapshot.
// Building a frame never mutates the state.
type Frame struct {
	TyreWear  []Gauge
	Status    []string
	Telemetry []Gauge
	CarInfo   []string
	Positions PositionTable
}

// Gauge is a labeled 0-100 value with its color bucket.
type Gauge struct {
	Label    string
	Percent  int
	Severity Severity
}

type PositionTable struct {
	Header []string
	Rows   []Row
}

// Row holds the rendered cells of one position entry. Highlight marks
// the player row (inverted/bold).
type Row struct {
	Highlight bool
	Cells     []string
}

var positionHeader = []string{"P", "Driver", "Lap", "Last Lap", "Best Lap", "Tyre"}

// Build projects the race state into a render-ready frame.
func Build(st *model.RaceState) *Frame {
	frame := &Frame{
		Positions: PositionTable{
			Header: positionHeader,
			Rows:   lo.Map(st.Positions, positionRow),
		},
	}
	if status := st.PlayerCarStatus; status != nil {
		frame.TyreWear = []Gauge{
			wearGauge("Rear Left", status.RearLeftWear),
			wearGauge("Rear Right", status.RearRightWear),
			wearGauge("Front Left", status.FrontLeftWear),
			wearGauge("Front Right", status.FrontRightWear),
		}
		frame.Status = []string{
			fmt.Sprintf("Fuel remaining in laps: %.2f", status.FuelRemainingLaps),
			fmt.Sprintf("Fuel mix: %s", status.FuelMix),
			fmt.Sprintf("Fuel in tank: %.2f", status.FuelInTank),
			fmt.Sprintf("DRS allowed: %t", status.DrsAllowed),
			fmt.Sprintf("ERS deployment mode: %s", status.ErsDeployMode),
		}
	}
	if tel := st.PlayerTelemetry; tel != nil {
		frame.Telemetry = []Gauge{
			wearGauge("Rev", tel.RevLightsPercent),
			wearGauge("Brake", toPercent(tel.Brake)),
			wearGauge("Throttle", toPercent(tel.Throttle)),
		}
		frame.CarInfo = []string{
			fmt.Sprintf("Speed: %d KM/H", tel.Speed),
			fmt.Sprintf("Gear: %d", tel.Gear),
			fmt.Sprintf("Suggested Gear: %s", SuggestedGearLabel(tel.SuggestedGear)),
			fmt.Sprintf("DRS: %t", tel.Drs),
			fmt.Sprintf("Engine RPM: %d", tel.EngineRPM),
		}
	}
	if st.HasSpeedTrap {
		frame.CarInfo = append(frame.CarInfo,
			fmt.Sprintf("Speed trap: %.1f KM/H", st.SpeedTrap))
	}
	return frame
}

func positionRow(entry model.PositionEntry, _ int) Row {
	return Row{
		Highlight: entry.IsPlayer,
		Cells: []string{
			fmt.Sprintf("%d", entry.Position),
			LastName(entry.Driver.Driver),
			fmt.Sprintf("%d", entry.CurrentLapNum),
			FormatLaptime(entry.LastLap),
			FormatLaptime(entry.BestLap),
			entry.Tyre,
		},
	}
}

func wearGauge(label string, percent int) Gauge {
	return Gauge{Label: label, Percent: percent, Severity: WearSeverity(percent)}
}

func toPercent(value float64) int {
	return int(value*100 + 0.5)
}
