package processing

import (
	"sync"

	"github.com/mpapenbr/f1-dashboard-go/pkg/display"
	"github.com/mpapenbr/f1-dashboard-go/pkg/model"
	"github.com/mpapenbr/f1-dashboard-go/pkg/processing/car"
	"github.com/mpapenbr/f1-dashboard-go/pkg/processing/race"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

// Processor applies incoming packets to the race state. Aggregation and
// the dependent render happen inside one lock acquisition, so a renderer
// never observes a partially updated snapshot.
type Processor struct {
	mu            sync.Mutex
	State         *model.RaceState
	carProcessor  *car.CarProcessor
	raceProcessor *race.RaceProcessor
	renderer      display.Renderer
}

type ProcessorOption func(proc *Processor)

func WithRenderer(renderer display.Renderer) ProcessorOption {
	return func(proc *Processor) {
		proc.renderer = renderer
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	state := model.NewRaceState()
	ret := &Processor{
		State:         state,
		carProcessor:  car.NewCarProcessor(car.WithState(state)),
		raceProcessor: race.NewRaceProcessor(race.WithState(state)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ProcessPacket applies one packet and renders the resulting snapshot.
// The returned error is a render failure; aggregation itself does not fail.
func (p *Processor) ProcessPacket(pkt telemetry.Packet) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(pkt)
	if p.renderer == nil {
		return nil
	}
	return p.renderer.Draw(display.Build(p.State))
}

func (p *Processor) apply(pkt telemetry.Packet) {
	if header := pkt.PacketHeader(); header.PlayerCarIndex != model.UnknownSlot {
		p.State.PlayerSlot = int(header.PlayerCarIndex)
	}
	switch pkt := pkt.(type) {
	case *telemetry.MotionPacket:
		// nothing on the dashboard is derived from motion data
	case *telemetry.CarStatusPacket:
		p.carProcessor.ProcessCarStatus(pkt)
	case *telemetry.CarTelemetryPacket:
		p.carProcessor.ProcessCarTelemetry(pkt)
	case *telemetry.ParticipantsPacket:
		p.carProcessor.ProcessParticipants(pkt)
	case *telemetry.LapPacket:
		p.raceProcessor.ProcessLap(pkt)
	case *telemetry.EventPacket:
		p.carProcessor.ProcessEvent(pkt)
	default:
		// remaining kinds carry nothing the dashboard shows
	}
}
