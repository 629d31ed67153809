package car

import (
	"strconv"

	"github.com/mpapenbr/f1-dashboard-go/log"
	"github.com/mpapenbr/f1-dashboard-go/pkg/model"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

// CarProcessor maintains the per-car rosters and the player specific
// data of the race state. Per-car data is keyed by race number; the
// slot binding is captured together with the driver roster.
type CarProcessor struct {
	state *model.RaceState
}

type CarProcessorOption func(cp *CarProcessor)

func WithState(state *model.RaceState) CarProcessorOption {
	return func(cp *CarProcessor) {
		cp.state = state
	}
}

func NewCarProcessor(opts ...CarProcessorOption) *CarProcessor {
	cp := &CarProcessor{}
	for _, opt := range opts {
		opt(cp)
	}
	if cp.state == nil {
		cp.state = model.NewRaceState()
	}
	return cp
}

// ProcessParticipants captures the driver roster and the slot binding.
// The roster is populated exactly once per process lifetime; packets
// arriving once it is populated are ignored.
func (p *CarProcessor) ProcessParticipants(pkt *telemetry.ParticipantsPacket) {
	st := p.state
	if len(st.Drivers) > 0 {
		return
	}
	if slot, ok := st.PlayerSlotIndex(); ok && slot < len(pkt.Participants) {
		details := driverDetails(&pkt.Participants[slot])
		st.PlayerDetails = &details
	}
	for i := range pkt.Participants {
		details := driverDetails(&pkt.Participants[i])
		if details.RaceNumber <= 0 {
			continue
		}
		num := strconv.Itoa(details.RaceNumber)
		st.NumBySlot[i] = num
		st.Drivers[num] = details
	}
	log.Debug("driver roster captured", log.Int("entries", len(st.Drivers)))
}

// ProcessCarStatus records the player car status and rebuilds the
// car-status roster. Slots without a roster binding are skipped.
func (p *CarProcessor) ProcessCarStatus(pkt *telemetry.CarStatusPacket) {
	st := p.state
	if slot, ok := st.PlayerSlotIndex(); ok && slot < len(pkt.Cars) {
		summary := statusSummary(&pkt.Cars[slot])
		st.PlayerCarStatus = &summary
	}
	for i := range pkt.Cars {
		num, ok := st.NumBySlot[i]
		if !ok {
			continue
		}
		st.CarStatus[num] = statusSummary(&pkt.Cars[i])
	}
}

// ProcessCarTelemetry records the telemetry sample of the player car.
// Without a known player slot the packet leaves the state untouched.
func (p *CarProcessor) ProcessCarTelemetry(pkt *telemetry.CarTelemetryPacket) {
	st := p.state
	slot, ok := st.PlayerSlotIndex()
	if !ok || slot >= len(pkt.Cars) {
		return
	}
	entry := &pkt.Cars[slot]
	st.PlayerTelemetry = &model.PlayerTelemetry{
		Speed:            int(entry.Speed),
		Throttle:         float64(entry.Throttle),
		Brake:            float64(entry.Brake),
		Gear:             int(entry.Gear),
		SuggestedGear:    int(pkt.SuggestedGear),
		EngineRPM:        int(entry.EngineRPM),
		Drs:              entry.Drs == 1,
		RevLightsPercent: int(entry.RevLightsPercent),
	}
}

// ProcessEvent records speed trap readings of the player car.
// All other event codes are ignored.
func (p *CarProcessor) ProcessEvent(pkt *telemetry.EventPacket) {
	if pkt.SpeedTrap == nil {
		return
	}
	st := p.state
	slot, ok := st.PlayerSlotIndex()
	if !ok || int(pkt.SpeedTrap.VehicleIndex) != slot {
		return
	}
	st.SpeedTrap = float64(pkt.SpeedTrap.Speed)
	st.HasSpeedTrap = true
}

func driverDetails(entry *telemetry.ParticipantData) model.DriverDetails {
	name := entry.DisplayName()
	return model.DriverDetails{
		Driver:      telemetry.DriverName(entry.DriverID, name),
		Team:        telemetry.TeamName(entry.TeamID),
		RaceNumber:  int(entry.RaceNumber),
		Nationality: telemetry.NationalityCode(entry.Nationality),
		Name:        name,
	}
}

func statusSummary(entry *telemetry.CarStatusData) model.CarStatusSummary {
	return model.CarStatusSummary{
		Tyre:              telemetry.TyreLabel(entry.VisualTyreCompound),
		RearLeftWear:      int(entry.TyresWear[telemetry.TyreRearLeft]),
		RearRightWear:     int(entry.TyresWear[telemetry.TyreRearRight]),
		FrontLeftWear:     int(entry.TyresWear[telemetry.TyreFrontLeft]),
		FrontRightWear:    int(entry.TyresWear[telemetry.TyreFrontRight]),
		FuelInTank:        float64(entry.FuelInTank),
		FuelRemainingLaps: float64(entry.FuelRemainingLaps),
		FuelMix:           telemetry.FuelMixLabel(entry.FuelMix),
		DrsAllowed:        entry.DrsAllowed == 1,
		ErsDeployMode:     telemetry.ErsDeployModeLabel(entry.ErsDeployMode),
	}
}
