//nolint:thelper // ok for tests
package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

type sliceSource struct {
	packets []telemetry.Packet
}

func (s *sliceSource) Next(ctx context.Context) (telemetry.Packet, error) {
	if len(s.packets) == 0 {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	pkt := s.packets[0]
	s.packets = s.packets[1:]
	return pkt, nil
}

type collectingSink struct {
	seen chan telemetry.Packet
	err  error
}

func (s *collectingSink) ProcessPacket(pkt telemetry.Packet) error {
	s.seen <- pkt
	return s.err
}

func rawPacket(frame uint32) *telemetry.RawPacket {
	return &telemetry.RawPacket{
		Header: telemetry.Header{PacketID: uint8(telemetry.KindSession), FrameIdentifier: frame},
	}
}

func TestPipeline_DeliversInOrder(t *testing.T) {
	source := &sliceSource{packets: []telemetry.Packet{
		rawPacket(1), rawPacket(2), rawPacket(3),
	}}
	sink := &collectingSink{seen: make(chan telemetry.Packet, 3)}
	p := NewPipeline(WithSource(source), WithSink(sink), WithQueueCapacity(8))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for want := uint32(1); want <= 3; want++ {
		select {
		case pkt := <-sink.seen:
			assert.Equal(t, want, pkt.PacketHeader().FrameIdentifier)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for packet")
		}
	}
	cancel()
	require.NoError(t, <-done)
}

func TestPipeline_SinkErrorStopsRun(t *testing.T) {
	source := &sliceSource{packets: []telemetry.Packet{rawPacket(1)}}
	sink := &collectingSink{seen: make(chan telemetry.Packet, 1), err: errors.New("draw failed")}
	p := NewPipeline(WithSource(source), WithSink(sink))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := p.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draw failed")
}

func TestPipeline_DropNewestOnFullQueue(t *testing.T) {
	p := NewPipeline(WithQueueCapacity(1))

	ctx := context.Background()
	p.enqueue(ctx, rawPacket(1))
	p.enqueue(ctx, rawPacket(2))

	require.Len(t, p.queue, 1)
	pkt := <-p.queue
	// the packet already queued wins, the newer one is dropped
	assert.Equal(t, uint32(1), pkt.PacketHeader().FrameIdentifier)
}
