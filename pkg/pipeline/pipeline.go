package pipeline

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1-dashboard-go/log"
	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

const DefaultQueueCapacity = 512

// Source delivers the next decoded packet. Errors are recoverable;
// a canceled context ends the stream.
type Source interface {
	Next(ctx context.Context) (telemetry.Packet, error)
}

// Sink processes one packet completely (aggregate + render).
// A returned error is fatal to the pipeline.
type Sink interface {
	ProcessPacket(pkt telemetry.Packet) error
}

// Pipeline couples the receive loop to the single consumer through a
// bounded FIFO queue. When the consumer cannot keep pace the incoming
// packet is dropped (drop-newest) and counted, the receive loop never
// stalls.
type Pipeline struct {
	source   Source
	sink     Sink
	queue    chan telemetry.Packet
	capacity int

	received  metric.Int64Counter
	dropped   metric.Int64Counter
	processed metric.Int64Counter
}

type Option func(p *Pipeline)

func WithSource(source Source) Option {
	return func(p *Pipeline) {
		p.source = source
	}
}

func WithSink(sink Sink) Option {
	return func(p *Pipeline) {
		p.sink = sink
	}
}

func WithQueueCapacity(capacity int) Option {
	return func(p *Pipeline) {
		if capacity > 0 {
			p.capacity = capacity
		}
	}
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{capacity: DefaultQueueCapacity}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan telemetry.Packet, p.capacity)
	p.setupMetrics()
	return p
}

//nolint:errcheck // metric registration failures only disable instruments
func (p *Pipeline) setupMetrics() {
	meter := otel.GetMeterProvider().Meter("f1dash.pipeline")
	p.received, _ = meter.Int64Counter("packets_received",
		metric.WithDescription("number of packets taken from the source"))
	p.dropped, _ = meter.Int64Counter("packets_dropped",
		metric.WithDescription("number of packets dropped on full queue"))
	p.processed, _ = meter.Int64Counter("packets_processed",
		metric.WithDescription("number of packets aggregated and rendered"))
	meter.Int64ObservableGauge("queue_depth",
		metric.WithDescription("packets waiting in the queue"),
		metric.WithInt64Callback(
			func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(int64(len(p.queue)))
				return nil
			}))
}

// Run starts the receive loop and consumes the queue until the context
// is canceled or the sink fails.
func (p *Pipeline) Run(ctx context.Context) error {
	go p.receiveLoop(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case pkt := <-p.queue:
			if err := p.sink.ProcessPacket(pkt); err != nil {
				return err
			}
			p.processed.Add(ctx, 1)
		}
	}
}

func (p *Pipeline) receiveLoop(ctx context.Context) {
	for {
		pkt, err := p.source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("could not receive packet", log.ErrorField(err))
			continue
		}
		p.received.Add(ctx, 1)
		p.enqueue(ctx, pkt)
	}
}

// enqueue applies the drop-newest policy on a full queue.
func (p *Pipeline) enqueue(ctx context.Context, pkt telemetry.Packet) {
	select {
	case p.queue <- pkt:
	default:
		p.dropped.Add(ctx, 1)
		log.Warn("queue full, dropping packet",
			log.Uint8("kind", uint8(pkt.Kind())))
	}
}
