package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles merges optional extra plant rows over the builtin catalog.
// Either path may be empty; a file that fails to load is skipped with the
// error returned alongside whatever did load, so startup can warn and
// continue with the builtins.
func LoadFromFiles(csvPath, xlsxPath string) (*Catalog, error) {
	plants := Builtin()
	var firstErr error

	if csvPath != "" {
		extra, err := loadCSV(csvPath)
		if err != nil {
			firstErr = fmt.Errorf("catalog csv: %w", err)
		} else {
			plants = merge(plants, extra)
		}
	}
	if xlsxPath != "" {
		extra, err := loadXLSX(xlsxPath)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("catalog xlsx: %w", err)
		} else if err == nil {
			plants = merge(plants, extra)
		}
	}

	return New(plants), firstErr
}

// merge overwrites builtin records on id collision, appends otherwise.
func merge(base, extra []Plant) []Plant {
	idx := map[string]int{}
	for i, p := range base {
		idx[p.ID] = i
	}
	for _, p := range extra {
		if p.ID == "" || len(p.ConfidenceKeywords) == 0 {
			continue
		}
		if i, ok := idx[p.ID]; ok {
			base[i] = p
		} else {
			idx[p.ID] = len(base)
			base = append(base, p)
		}
	}
	return base
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func splitList(s string) []string {
	seps := ";"
	if !strings.Contains(s, ";") && strings.Contains(s, "|") {
		seps = "|"
	}
	parts := strings.Split(s, seps)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func plantsFromRows(rows [][]string) ([]Plant, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cID := findAny("id", "plant_id")
	cName := findAny("name", "plant", "plant_name")
	cSci := findAny("scientific_name", "scientificname", "latin")
	cCond := findAny("conditions", "condition_list")
	cKw := findAny("confidence_keywords", "keywords", "symptoms")
	cUses := findAny("uses", "use_list")
	cDesc := findAny("description", "notes", "remark")

	if cID < 0 || cName < 0 || cKw < 0 {
		return nil, fmt.Errorf("missing required columns (id, name, keywords)")
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	out := make([]Plant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := cell(row, cID)
		if id == "" {
			continue
		}
		out = append(out, Plant{
			ID:                 id,
			Name:               cell(row, cName),
			ScientificName:     cell(row, cSci),
			Conditions:         splitList(cell(row, cCond)),
			ConfidenceKeywords: splitList(cell(row, cKw)),
			Uses:               splitList(cell(row, cUses)),
			Description:        cell(row, cDesc),
		})
	}
	return out, nil
}

func loadCSV(path string) ([]Plant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return plantsFromRows(rows)
}

func loadXLSX(path string) ([]Plant, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return plantsFromRows(rows)
}
