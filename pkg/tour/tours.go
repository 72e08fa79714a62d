package tour

// Stop is one waypoint in a virtual garden tour.
type Stop struct {
	Ord     int    `json:"ord"`
	PlantID string `json:"plant_id"`
	Label   string `json:"label"`
}

type Tour struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Stops       []Stop `json:"stops"`
}

// Builtin returns the fixed tour definitions. Stops reference catalog
// plant ids; progress rows reference stops by plant id.
func Builtin() []Tour {
	return []Tour{
		{
			ID:          "healing-garden",
			Name:        "Healing Garden",
			Description: "A walk through the three core plants of the garden",
			Stops: []Stop{
				{Ord: 0, PlantID: "aloe-vera", Label: "The Soothing Succulent"},
				{Ord: 1, PlantID: "turmeric", Label: "The Golden Root"},
				{Ord: 2, PlantID: "neem", Label: "The Village Pharmacy"},
			},
		},
		{
			ID:          "skin-remedies",
			Name:        "Skin Remedies",
			Description: "Plants traditionally used for skin conditions",
			Stops: []Stop{
				{Ord: 0, PlantID: "aloe-vera", Label: "Burns and Wound Care"},
				{Ord: 1, PlantID: "neem", Label: "Infections and Fungal Problems"},
			},
		},
	}
}

func Find(id string) (*Tour, bool) {
	for _, t := range Builtin() {
		if t.ID == id {
			return &t, true
		}
	}
	return nil, false
}
