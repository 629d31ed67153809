package telemetry

import "fmt"

// display labels for the numeric ids used on the wire (F1 2020 appendix)

var visualTyres = map[uint8]string{
	7:  "Inter",
	8:  "Wet",
	16: "Soft",
	17: "Medium",
	18: "Hard",
}

func TyreLabel(visualCompound uint8) string {
	if label, ok := visualTyres[visualCompound]; ok {
		return label
	}
	return fmt.Sprintf("C%d", visualCompound)
}

var teams = map[uint8]string{
	0:  "Mercedes",
	1:  "Ferrari",
	2:  "Red Bull Racing",
	3:  "Williams",
	4:  "Racing Point",
	5:  "Renault",
	6:  "AlphaTauri",
	7:  "Haas",
	8:  "McLaren",
	9:  "Alfa Romeo",
	41: "My Team",
}

func TeamName(teamID uint8) string {
	if name, ok := teams[teamID]; ok {
		return name
	}
	return fmt.Sprintf("Team %d", teamID)
}

var drivers = map[uint8]string{
	0:  "Carlos Sainz",
	1:  "Daniil Kvyat",
	2:  "Daniel Ricciardo",
	6:  "Kimi Raikkonen",
	7:  "Lewis Hamilton",
	9:  "Max Verstappen",
	10: "Nico Hulkenberg",
	11: "Kevin Magnussen",
	12: "Romain Grosjean",
	13: "Sebastian Vettel",
	14: "Sergio Perez",
	15: "Valtteri Bottas",
	17: "Esteban Ocon",
	19: "Lance Stroll",
	54: "Lando Norris",
	58: "Charles Leclerc",
	59: "Pierre Gasly",
	62: "Alexander Albon",
	63: "George Russell",
	64: "Nicholas Latifi",
	66: "Antonio Giovinazzi",
}

// DriverName resolves the driver id of the 2020 grid. Network players
// and unknown ids fall back to the name sent by the game.
func DriverName(driverID uint8, fallback string) string {
	if name, ok := drivers[driverID]; ok {
		return name
	}
	return fallback
}

var nationalities = map[uint8]string{
	1:  "USA",
	3:  "AUS",
	4:  "AUT",
	10: "BRA",
	13: "CAN",
	21: "DNK",
	26: "FIN",
	27: "FRA",
	28: "GER",
	42: "ITA",
	43: "JPN",
	49: "MEX",
	50: "MON",
	53: "NLD",
	62: "POL",
	68: "RUS",
	75: "ESP",
	78: "SWE",
	80: "THA",
	83: "GBR",
}

func NationalityCode(id uint8) string {
	if code, ok := nationalities[id]; ok {
		return code
	}
	return fmt.Sprintf("N%d", id)
}

var fuelMixes = map[uint8]string{
	0: "Lean",
	1: "Standard",
	2: "Rich",
	3: "Max",
}

func FuelMixLabel(mix uint8) string {
	if label, ok := fuelMixes[mix]; ok {
		return label
	}
	return fmt.Sprintf("Mix %d", mix)
}

var ersModes = map[uint8]string{
	0: "None",
	1: "Medium",
	2: "Overtake",
	3: "Hotlap",
}

func ErsDeployModeLabel(mode uint8) string {
	if label, ok := ersModes[mode]; ok {
		return label
	}
	return fmt.Sprintf("Mode %d", mode)
}
