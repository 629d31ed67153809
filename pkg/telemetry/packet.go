package telemetry

// Kind identifies the packet type. Values match the packetId of the
// F1 2020 UDP specification.
type Kind uint8

const (
	KindMotion              Kind = 0
	KindSession             Kind = 1
	KindLap                 Kind = 2
	KindEvent               Kind = 3
	KindParticipants        Kind = 4
	KindCarSetups           Kind = 5
	KindCarTelemetry        Kind = 6
	KindCarStatus           Kind = 7
	KindFinalClassification Kind = 8
	KindLobbyInfo           Kind = 9
)

// MaxCars is the number of car slots carried by every per-car payload.
const MaxCars = 22

// Header precedes every packet. PlayerCarIndex is the car slot of the
// observer's own car (255 if not applicable).
type Header struct {
	PacketFormat            uint16
	GameMajorVersion        uint8
	GameMinorVersion        uint8
	PacketVersion           uint8
	PacketID                uint8
	SessionUID              uint64
	SessionTime             float32
	FrameIdentifier         uint32
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex uint8
}

// Packet is the closed set of decoded telemetry packets.
// Dispatch is done via type switch; kinds the dashboard does not
// display decode to *RawPacket.
type Packet interface {
	Kind() Kind
	PacketHeader() Header
}

type MotionPacket struct {
	Header Header
}

func (p *MotionPacket) Kind() Kind           { return KindMotion }
func (p *MotionPacket) PacketHeader() Header { return p.Header }

type LapPacket struct {
	Header Header
	Laps   [MaxCars]LapData
}

func (p *LapPacket) Kind() Kind           { return KindLap }
func (p *LapPacket) PacketHeader() Header { return p.Header }

type ParticipantsPacket struct {
	Header        Header
	NumActiveCars uint8
	Participants  [MaxCars]ParticipantData
}

func (p *ParticipantsPacket) Kind() Kind           { return KindParticipants }
func (p *ParticipantsPacket) PacketHeader() Header { return p.Header }

type CarTelemetryPacket struct {
	Header                 Header
	Cars                   [MaxCars]CarTelemetryData
	ButtonStatus           uint32
	MfdPanelIndex          uint8
	MfdPanelIndexSecondary uint8
	SuggestedGear          int8
}

func (p *CarTelemetryPacket) Kind() Kind           { return KindCarTelemetry }
func (p *CarTelemetryPacket) PacketHeader() Header { return p.Header }

type CarStatusPacket struct {
	Header Header
	Cars   [MaxCars]CarStatusData
}

func (p *CarStatusPacket) Kind() Kind           { return KindCarStatus }
func (p *CarStatusPacket) PacketHeader() Header { return p.Header }

// EventPacket carries a four letter event code. Only speed trap
// events are decoded beyond the code.
type EventPacket struct {
	Header    Header
	Code      string
	SpeedTrap *SpeedTrapEvent
}

func (p *EventPacket) Kind() Kind           { return KindEvent }
func (p *EventPacket) PacketHeader() Header { return p.Header }

// SpeedTrapEvent is a single point speed measurement for one car.
type SpeedTrapEvent struct {
	VehicleIndex uint8
	Speed        float32 // km/h
}

// RawPacket represents a kind that is received but not interpreted.
type RawPacket struct {
	Header Header
}

func (p *RawPacket) Kind() Kind           { return Kind(p.Header.PacketID) }
func (p *RawPacket) PacketHeader() Header { return p.Header }
