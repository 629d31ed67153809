package telemetry

// Wire layouts of the per-car payload entries (F1 2020, little endian).
// Field order must match the UDP specification since packets are decoded
// with binary.Read.

type LapData struct {
	LastLapTime              float32 // seconds
	CurrentLapTime           float32
	Sector1TimeMS            uint16
	Sector2TimeMS            uint16
	BestLapTime              float32
	BestLapNum               uint8
	BestLapSector1TimeMS     uint16
	BestLapSector2TimeMS     uint16
	BestLapSector3TimeMS     uint16
	BestOverallSector1TimeMS uint16
	BestOverallSector1LapNum uint8
	BestOverallSector2TimeMS uint16
	BestOverallSector2LapNum uint8
	BestOverallSector3TimeMS uint16
	BestOverallSector3LapNum uint8
	LapDistance              float32
	TotalDistance            float32
	SafetyCarDelta           float32
	CarPosition              uint8 // 0 = not classified
	CurrentLapNum            uint8
	PitStatus                uint8
	Sector                   uint8
	CurrentLapInvalid        uint8
	Penalties                uint8
	GridPosition             uint8
	DriverStatus             uint8
	ResultStatus             uint8
}

type ParticipantData struct {
	AiControlled  uint8
	DriverID      uint8
	TeamID        uint8
	RaceNumber    uint8
	Nationality   uint8
	Name          [48]byte // utf-8, null terminated
	YourTelemetry uint8
}

// DisplayName returns the null terminated Name as string.
func (p *ParticipantData) DisplayName() string {
	for i, b := range p.Name {
		if b == 0 {
			return string(p.Name[:i])
		}
	}
	return string(p.Name[:])
}

type CarTelemetryData struct {
	Speed                   uint16 // km/h
	Throttle                float32
	Steer                   float32
	Brake                   float32
	Clutch                  uint8
	Gear                    int8 // -1 reverse, 0 neutral, 1-8
	EngineRPM               uint16
	Drs                     uint8
	RevLightsPercent        uint8
	BrakesTemperature       [4]uint16
	TyresSurfaceTemperature [4]uint8
	TyresInnerTemperature   [4]uint8
	EngineTemperature       uint16
	TyresPressure           [4]float32
	SurfaceType             [4]uint8
}

// tyre array order: RL, RR, FL, FR
const (
	TyreRearLeft   = 0
	TyreRearRight  = 1
	TyreFrontLeft  = 2
	TyreFrontRight = 3
)

type CarStatusData struct {
	TractionControl         uint8
	AntiLockBrakes          uint8
	FuelMix                 uint8
	FrontBrakeBias          uint8
	PitLimiterStatus        uint8
	FuelInTank              float32
	FuelCapacity            float32
	FuelRemainingLaps       float32
	MaxRPM                  uint16
	IdleRPM                 uint16
	MaxGears                uint8
	DrsAllowed              uint8
	DrsActivationDistance   uint16
	TyresWear               [4]uint8
	ActualTyreCompound      uint8
	VisualTyreCompound      uint8
	TyresDamage             [4]uint8
	FrontLeftWingDamage     uint8
	FrontRightWingDamage    uint8
	RearWingDamage          uint8
	DrsFault                uint8
	EngineDamage            uint8
	GearBoxDamage           uint8
	VehicleFiaFlags         int8
	ErsStoreEnergy          float32
	ErsDeployMode           uint8
	ErsHarvestedThisLapMGUK float32
	ErsHarvestedThisLapMGUH float32
	ErsDeployedThisLap      float32
}
