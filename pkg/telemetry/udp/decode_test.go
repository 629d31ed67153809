//nolint:thelper,funlen // ok for tests
package udp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

func encode(t *testing.T, parts ...any) []byte {
	var buf bytes.Buffer
	for _, part := range parts {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, part))
	}
	return buf.Bytes()
}

func sampleHeader(kind telemetry.Kind) telemetry.Header {
	return telemetry.Header{
		PacketFormat:    2020,
		PacketID:        uint8(kind),
		SessionUID:      12345,
		SessionTime:     42.5,
		FrameIdentifier: 100,
		PlayerCarIndex:  0,
	}
}

func TestDecodeSpeedTrapEvent(t *testing.T) {
	data := encode(t,
		sampleHeader(telemetry.KindEvent),
		[4]byte{'S', 'P', 'T', 'P'},
		telemetry.SpeedTrapEvent{VehicleIndex: 4, Speed: 301.7},
	)

	pkt, err := Decode(data)
	require.NoError(t, err)
	evt, ok := pkt.(*telemetry.EventPacket)
	require.True(t, ok)
	assert.Equal(t, "SPTP", evt.Code)
	require.NotNil(t, evt.SpeedTrap)
	assert.Equal(t, uint8(4), evt.SpeedTrap.VehicleIndex)
	assert.InDelta(t, 301.7, evt.SpeedTrap.Speed, 0.001)
}

func TestDecodeOtherEventCodesCarryNoDetails(t *testing.T) {
	data := encode(t,
		sampleHeader(telemetry.KindEvent),
		[4]byte{'F', 'T', 'L', 'P'},
	)

	pkt, err := Decode(data)
	require.NoError(t, err)
	evt, ok := pkt.(*telemetry.EventPacket)
	require.True(t, ok)
	assert.Equal(t, "FTLP", evt.Code)
	assert.Nil(t, evt.SpeedTrap)
}

func TestDecodeLapPacket(t *testing.T) {
	var laps [telemetry.MaxCars]telemetry.LapData
	laps[0] = telemetry.LapData{
		LastLapTime:   75.25,
		BestLapTime:   74.8,
		CarPosition:   1,
		CurrentLapNum: 3,
	}
	data := encode(t, sampleHeader(telemetry.KindLap), laps)

	pkt, err := Decode(data)
	require.NoError(t, err)
	lap, ok := pkt.(*telemetry.LapPacket)
	require.True(t, ok)
	assert.Equal(t, uint8(1), lap.Laps[0].CarPosition)
	assert.InDelta(t, 75.25, lap.Laps[0].LastLapTime, 0.001)
	assert.Equal(t, uint8(0), lap.Laps[1].CarPosition)
}

func TestDecodeCarTelemetryTrailer(t *testing.T) {
	var cars [telemetry.MaxCars]telemetry.CarTelemetryData
	cars[0] = telemetry.CarTelemetryData{Speed: 250, Gear: 4}
	data := encode(t,
		sampleHeader(telemetry.KindCarTelemetry),
		cars,
		uint32(0), // buttonStatus
		uint8(0),  // mfd panel
		uint8(0),  // mfd panel secondary
		int8(5),   // suggested gear
	)

	pkt, err := Decode(data)
	require.NoError(t, err)
	tel, ok := pkt.(*telemetry.CarTelemetryPacket)
	require.True(t, ok)
	assert.Equal(t, uint16(250), tel.Cars[0].Speed)
	assert.Equal(t, int8(5), tel.SuggestedGear)
}

func TestDecodeParticipants(t *testing.T) {
	var participants [telemetry.MaxCars]telemetry.ParticipantData
	participants[0] = telemetry.ParticipantData{DriverID: 7, TeamID: 0, RaceNumber: 44}
	copy(participants[0].Name[:], "HAMILTON")
	data := encode(t,
		sampleHeader(telemetry.KindParticipants),
		uint8(20),
		participants,
	)

	pkt, err := Decode(data)
	require.NoError(t, err)
	par, ok := pkt.(*telemetry.ParticipantsPacket)
	require.True(t, ok)
	assert.Equal(t, uint8(20), par.NumActiveCars)
	assert.Equal(t, uint8(44), par.Participants[0].RaceNumber)
	assert.Equal(t, "HAMILTON", par.Participants[0].DisplayName())
}

func TestDecodeUnknownKindYieldsRawPacket(t *testing.T) {
	data := encode(t, sampleHeader(telemetry.KindSession))

	pkt, err := Decode(data)
	require.NoError(t, err)
	_, ok := pkt.(*telemetry.RawPacket)
	assert.True(t, ok)
	assert.Equal(t, telemetry.KindSession, pkt.Kind())
}

func TestDecodeShortDatagram(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02})
	require.Error(t, err)

	// header ok, truncated payload
	data := encode(t, sampleHeader(telemetry.KindLap), uint8(1))
	_, err = Decode(data)
	require.Error(t, err)
}
