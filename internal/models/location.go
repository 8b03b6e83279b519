package models

// StateDB represents a state row.
type StateDB struct {
	StateID int64  `json:"id" db:"state_id"`
	Name    string `json:"name" db:"name"`
}

// CityDB represents a city row. Name is unique per state.
type CityDB struct {
	CityID  int64  `json:"id" db:"city_id"`
	Name    string `json:"name" db:"name"`
	StateID int64  `json:"stateId" db:"state_id"`
}

// StateSeed is one entry of the reference-data seed file.
type StateSeed struct {
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}
