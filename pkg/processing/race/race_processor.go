package race

import (
	"slices"
	"time"

	"github.com/mpapenbr/f1-dashboard-go/log"
	"github.com/mpapenbr/f1-dashboard-go/pkg/model"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

// RaceProcessor rebuilds the live position table from lap packets.
type RaceProcessor struct {
	state *model.RaceState
}

type RaceProcessorOption func(rp *RaceProcessor)

func WithState(state *model.RaceState) RaceProcessorOption {
	return func(rp *RaceProcessor) {
		rp.state = state
	}
}

func NewRaceProcessor(opts ...RaceProcessorOption) *RaceProcessor {
	rp := &RaceProcessor{}
	for _, opt := range opts {
		opt(rp)
	}
	if rp.state == nil {
		rp.state = model.NewRaceState()
	}
	return rp
}

// ProcessLap replaces the position table with one entry per classified
// car, sorted ascending by rank. Lap packets arriving before both
// rosters are populated are a no-op.
func (p *RaceProcessor) ProcessLap(pkt *telemetry.LapPacket) {
	st := p.state
	if !st.RosterReady() {
		return
	}
	playerSlot, hasPlayer := st.PlayerSlotIndex()

	entries := make([]model.PositionEntry, 0, len(pkt.Laps))
	for i := range pkt.Laps {
		lap := &pkt.Laps[i]
		if lap.CarPosition == 0 {
			continue
		}
		num, ok := st.NumBySlot[i]
		if !ok {
			log.Debug("no roster binding for classified slot", log.Int("slot", i))
			continue
		}
		driver, ok := st.Drivers[num]
		if !ok {
			continue
		}
		status, ok := st.CarStatus[num]
		if !ok {
			continue
		}
		entries = append(entries, model.PositionEntry{
			IsPlayer:      hasPlayer && i == playerSlot,
			Position:      int(lap.CarPosition),
			Driver:        driver,
			BestLap:       secondsToDuration(lap.BestLapTime),
			LastLap:       secondsToDuration(lap.LastLapTime),
			Sector1:       msToDuration(lap.BestLapSector1TimeMS),
			Sector2:       msToDuration(lap.BestLapSector2TimeMS),
			Sector3:       msToDuration(lap.BestLapSector3TimeMS),
			Tyre:          status.Tyre,
			CurrentLapNum: int(lap.CurrentLapNum),
		})
	}
	slices.SortStableFunc(entries, func(a, b model.PositionEntry) int {
		return a.Position - b.Position
	})
	st.Positions = entries
}

func secondsToDuration(secs float32) time.Duration {
	return time.Duration(float64(secs) * float64(time.Second))
}

func msToDuration(ms uint16) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
