package udp

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mpapenbr/f1-dashboard-go/pkg/telemetry"
)

// event string codes (F1 2020)
const (
	eventSpeedTrap = "SPTP"
)

// Decode parses one datagram into a typed packet. Packet kinds the
// dashboard does not interpret decode to *telemetry.RawPacket.
func Decode(data []byte) (telemetry.Packet, error) {
	r := bytes.NewReader(data)
	var header telemetry.Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	switch telemetry.Kind(header.PacketID) {
	case telemetry.KindLap:
		pkt := &telemetry.LapPacket{Header: header}
		if err := binary.Read(r, binary.LittleEndian, &pkt.Laps); err != nil {
			return nil, fmt.Errorf("decode lap data: %w", err)
		}
		return pkt, nil

	case telemetry.KindParticipants:
		pkt := &telemetry.ParticipantsPacket{Header: header}
		if err := binary.Read(r, binary.LittleEndian, &pkt.NumActiveCars); err != nil {
			return nil, fmt.Errorf("decode participants: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &pkt.Participants); err != nil {
			return nil, fmt.Errorf("decode participants: %w", err)
		}
		return pkt, nil

	case telemetry.KindCarTelemetry:
		pkt := &telemetry.CarTelemetryPacket{Header: header}
		if err := binary.Read(r, binary.LittleEndian, &pkt.Cars); err != nil {
			return nil, fmt.Errorf("decode car telemetry: %w", err)
		}
		trailer := struct {
			ButtonStatus           uint32
			MfdPanelIndex          uint8
			MfdPanelIndexSecondary uint8
			SuggestedGear          int8
		}{}
		if err := binary.Read(r, binary.LittleEndian, &trailer); err != nil {
			return nil, fmt.Errorf("decode car telemetry: %w", err)
		}
		pkt.ButtonStatus = trailer.ButtonStatus
		pkt.MfdPanelIndex = trailer.MfdPanelIndex
		pkt.MfdPanelIndexSecondary = trailer.MfdPanelIndexSecondary
		pkt.SuggestedGear = trailer.SuggestedGear
		return pkt, nil

	case telemetry.KindCarStatus:
		pkt := &telemetry.CarStatusPacket{Header: header}
		if err := binary.Read(r, binary.LittleEndian, &pkt.Cars); err != nil {
			return nil, fmt.Errorf("decode car status: %w", err)
		}
		return pkt, nil

	case telemetry.KindEvent:
		return decodeEvent(r, header)

	case telemetry.KindMotion:
		// motion payload is not displayed, the kind is kept distinct
		return &telemetry.MotionPacket{Header: header}, nil

	default:
		return &telemetry.RawPacket{Header: header}, nil
	}
}

func decodeEvent(r *bytes.Reader, header telemetry.Header) (telemetry.Packet, error) {
	var code [4]byte
	if err := binary.Read(r, binary.LittleEndian, &code); err != nil {
		return nil, fmt.Errorf("decode event code: %w", err)
	}
	pkt := &telemetry.EventPacket{Header: header, Code: string(code[:])}
	if pkt.Code == eventSpeedTrap {
		var st telemetry.SpeedTrapEvent
		if err := binary.Read(r, binary.LittleEndian, &st); err != nil {
			return nil, fmt.Errorf("decode speed trap: %w", err)
		}
		pkt.SpeedTrap = &st
	}
	return pkt, nil
}
