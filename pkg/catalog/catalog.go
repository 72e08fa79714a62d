package catalog

import "strings"

// Plant is one knowledge-base record. ConfidenceKeywords drive the
// query-evidence scoring in the recommendation service; Uses and
// Description are display-only.
type Plant struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ScientificName     string   `json:"scientificName"`
	Conditions         []string `json:"conditions"`
	ConfidenceKeywords []string `json:"confidenceKeywords"`
	Uses               []string `json:"uses"`
	Description        string   `json:"description"`
}

// Catalog is the read-only plant knowledge base. Built once at startup,
// safe for concurrent reads.
type Catalog struct {
	plants []Plant
	byID   map[string]int
	byName map[string]int
}

func New(plants []Plant) *Catalog {
	c := &Catalog{
		plants: plants,
		byID:   make(map[string]int, len(plants)),
		byName: make(map[string]int, len(plants)),
	}
	for i, p := range plants {
		c.byID[p.ID] = i
		c.byName[p.Name] = i
	}
	return c
}

func (c *Catalog) All() []Plant { return c.plants }

// Find resolves a model-supplied plant reference: exact id match first,
// exact display-name match as fallback.
func (c *Catalog) Find(id, name string) (*Plant, bool) {
	if i, ok := c.byID[id]; ok {
		return &c.plants[i], true
	}
	if i, ok := c.byName[name]; ok {
		return &c.plants[i], true
	}
	return nil, false
}

// Summary renders the catalog block embedded in the model system prompt:
// one "Name (Scientific): cond, cond" line per plant.
func (c *Catalog) Summary() string {
	lines := make([]string, 0, len(c.plants))
	for _, p := range c.plants {
		lines = append(lines, p.Name+" ("+p.ScientificName+"): "+strings.Join(p.Conditions, ", "))
	}
	return strings.Join(lines, "\n")
}

// Builtin returns the curated base catalog. Adding or removing plants here
// requires a redeploy; extra rows can be merged from CSV/XLSX at startup.
func Builtin() []Plant {
	return []Plant{
		{
			ID:                 "aloe-vera",
			Name:               "Aloe Vera",
			ScientificName:     "Aloe barbadensis miller",
			Conditions:         []string{"burns", "skin problems", "digestive issues", "inflammation", "wound healing"},
			ConfidenceKeywords: []string{"burn", "skin", "cut", "wound", "heal", "soothing", "gel"},
			Uses:               []string{"Topical gel for burns", "Digestive health", "Anti-inflammatory"},
			Description:        "Succulent plant with gel-filled leaves known for skin healing properties",
		},
		{
			ID:                 "turmeric",
			Name:               "Turmeric",
			ScientificName:     "Curcuma longa",
			Conditions:         []string{"inflammation", "arthritis", "digestive problems", "infection", "pain"},
			ConfidenceKeywords: []string{"inflammation", "joint", "pain", "arthritis", "turmeric", "golden", "spice"},
			Uses:               []string{"Anti-inflammatory", "Joint pain relief", "Digestive aid"},
			Description:        "Golden spice with powerful anti-inflammatory and antioxidant properties",
		},
		{
			ID:                 "neem",
			Name:               "Neem",
			ScientificName:     "Azadirachta indica",
			Conditions:         []string{"skin infections", "bacterial infections", "fungal problems", "diabetes", "immune system"},
			ConfidenceKeywords: []string{"infection", "bacteria", "fungal", "skin", "diabetes", "blood sugar", "immune"},
			Uses:               []string{"Antibacterial", "Antifungal", "Blood sugar management"},
			Description:        "Medicinal tree known as \"village pharmacy\" for its versatile healing properties",
		},
	}
}
