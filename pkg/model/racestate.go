package model

import "time"

// UnknownSlot marks the player car slot as not yet observed.
// The protocol uses 255 for "no such car" in packet headers.
const UnknownSlot = 255

// DriverDetails describe one entry of the session grid.
// They are captured once per session and not updated afterwards.
type DriverDetails struct {
	Driver      string `json:"driver"` // display name
	Team        string `json:"team"`
	RaceNumber  int    `json:"raceNumber"`
	Nationality string `json:"nationality"`
	Name        string `json:"name"` // name as sent by the game
}

// CarStatusSummary holds the per-car status values shown on the dashboard.
type CarStatusSummary struct {
	Tyre              string  `json:"tyre"`
	RearLeftWear      int     `json:"rearLeftWear"`
	RearRightWear     int     `json:"rearRightWear"`
	FrontLeftWear     int     `json:"frontLeftWear"`
	FrontRightWear    int     `json:"frontRightWear"`
	FuelInTank        float64 `json:"fuelInTank"`
	FuelRemainingLaps float64 `json:"fuelRemainingLaps"`
	FuelMix           string  `json:"fuelMix"`
	DrsAllowed        bool    `json:"drsAllowed"`
	ErsDeployMode     string  `json:"ersDeployMode"`
}

// PlayerTelemetry is the most recent telemetry sample of the player car.
type PlayerTelemetry struct {
	Speed            int     `json:"speed"` // km/h
	Throttle         float64 `json:"throttle"`
	Brake            float64 `json:"brake"`
	Gear             int     `json:"gear"` // -1 reverse, 0 neutral, 1-8
	SuggestedGear    int     `json:"suggestedGear"`
	EngineRPM        int     `json:"engineRpm"`
	Drs              bool    `json:"drs"`
	RevLightsPercent int     `json:"revLightsPercent"`
}

// PositionEntry is one row of the live position table.
type PositionEntry struct {
	IsPlayer      bool          `json:"isPlayer"`
	Position      int           `json:"position"` // 1-based classification rank
	Driver        DriverDetails `json:"driver"`
	BestLap       time.Duration `json:"bestLap"`
	LastLap       time.Duration `json:"lastLap"`
	Sector1       time.Duration `json:"sector1"`
	Sector2       time.Duration `json:"sector2"`
	Sector3       time.Duration `json:"sector3"`
	Tyre          string        `json:"tyre"`
	CurrentLapNum int           `json:"currentLapNum"`
}

// RaceState is the aggregate view over all received packets.
// It is created once at startup and mutated in place for the
// process lifetime; there is no session end detection.
//
// Per-car data is keyed by race number. NumBySlot binds the positional
// car slot used by the wire payloads to that key; the binding is
// captured together with the driver roster.
type RaceState struct {
	PlayerSlot      int
	PlayerDetails   *DriverDetails
	PlayerCarStatus *CarStatusSummary
	PlayerTelemetry *PlayerTelemetry
	SpeedTrap       float64
	HasSpeedTrap    bool

	Positions []PositionEntry

	Drivers   map[string]DriverDetails
	CarStatus map[string]CarStatusSummary
	NumBySlot map[int]string
}

func NewRaceState() *RaceState {
	return &RaceState{
		PlayerSlot: UnknownSlot,
		Positions:  make([]PositionEntry, 0, 22),
		Drivers:    make(map[string]DriverDetails),
		CarStatus:  make(map[string]CarStatusSummary),
		NumBySlot:  make(map[int]string),
	}
}

// PlayerSlotIndex returns the player car slot and whether it is known.
func (s *RaceState) PlayerSlotIndex() (int, bool) {
	if s.PlayerSlot == UnknownSlot {
		return 0, false
	}
	return s.PlayerSlot, true
}

// RosterReady reports whether both per-car rosters are populated.
// Position updates are ignored until this holds.
func (s *RaceState) RosterReady() bool {
	return len(s.Drivers) > 0 && len(s.CarStatus) > 0
}
