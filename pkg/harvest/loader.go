package harvest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles starts from DefaultTable and applies overrides read from a CSV
// file and/or the first sheet of an XLSX workbook. Empty paths are skipped.
//
// Expected columns (aliases accepted): crop, first_days, routine_days and the
// optional kind and first_years. Rows with non-positive day counts are ignored.
func LoadFromFiles(csvPath, xlsxPath string) (*Table, error) {
	t := DefaultTable()
	if csvPath != "" {
		rows, err := readCSV(csvPath)
		if err != nil {
			return nil, fmt.Errorf("crop rules csv: %w", err)
		}
		if err := t.apply(rows); err != nil {
			return nil, fmt.Errorf("crop rules csv %s: %w", csvPath, err)
		}
	}
	if xlsxPath != "" {
		rows, err := readXLSX(xlsxPath)
		if err != nil {
			return nil, fmt.Errorf("crop rules xlsx: %w", err)
		}
		if err := t.apply(rows); err != nil {
			return nil, fmt.Errorf("crop rules xlsx %s: %w", xlsxPath, err)
		}
	}
	return t, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return x.GetRows(sheets[0])
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func (t *Table) apply(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("crop", "crop_type", "cultivo", "tipo_de_cultivo", "nombre")
	cFirst := findAny("first_days", "first", "primera", "dias_primera")
	cRoutine := findAny("routine_days", "routine", "rutinaria", "dias_rutinaria")
	cKind := findAny("kind", "tipo", "rule")
	cYears := findAny("first_years", "years", "anios", "años")
	if cCrop == -1 || cRoutine == -1 || (cFirst == -1 && cYears == -1) {
		return fmt.Errorf("missing required columns, found headers %v; need crop, first_days (or first_years), routine_days", rows[0])
	}

	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		crop := NormalizeCrop(get(cCrop))
		if crop == "" {
			continue
		}
		kind, ok := parseKind(get(cKind))
		if !ok {
			return fmt.Errorf("crop %q: unknown rule kind %q", crop, get(cKind))
		}
		routine, _ := strconv.Atoi(get(cRoutine))
		if routine <= 0 {
			continue
		}

		r := Rule{Kind: kind, RoutineDays: routine}
		if kind == KindPerennial {
			r.FirstYears, _ = strconv.Atoi(get(cYears))
			if r.FirstYears <= 0 {
				continue
			}
		} else {
			r.FirstDays, _ = strconv.Atoi(get(cFirst))
			if r.FirstDays <= 0 {
				continue
			}
		}
		t.Set(crop, r)
	}
	return nil
}
