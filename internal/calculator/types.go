package calculator

// Result summarises a single calculation.
// LeftoverSlices is what remains once every attendee has eaten their share.
type Result struct {
	PartySize       int         `json:"partySize" yaml:"party_size"`
	HungerLevel     HungerLevel `json:"hungerLevel" yaml:"hunger_level"`
	SlicesPerPerson int         `json:"slicesPerPerson" yaml:"slices_per_person"`
	TotalSlices     int         `json:"totalSlices" yaml:"total_slices"`
	TotalPizzas     int         `json:"totalPizzas" yaml:"total_pizzas"`
	LeftoverSlices  int         `json:"leftoverSlices" yaml:"leftover_slices"`
}
