// Package harvest derives first and routine harvest dates for a plot from its
// crop type and sowing date.
package harvest

import (
	"strings"
	"time"

	"cultivos/entities"
)

// Input is the raw user input for a plot registration. Empty strings mean
// "not supplied".
type Input struct {
	Number         int    `json:"number"`
	CropType       string `json:"crop_type"`
	SowingDate     string `json:"sowing_date"`
	FirstHarvest   string `json:"first_harvest_date"`
	RoutineHarvest string `json:"routine_harvest_date"`
	SoilType       string `json:"soil_type"`
	Temperature    string `json:"temperature"`
}

// Dates is the pure result of the derivation.
type Dates struct {
	Sowing  time.Time
	First   time.Time
	Routine string
}

// Derive resolves both harvest dates for crop. Overrides are independent and
// are not checked against each other or the sowing date. Perennial crops
// ignore both overrides.
func (t *Table) Derive(crop string, sowing time.Time, firstOverride, routineOverride string) (Dates, error) {
	rule := t.Resolve(crop)
	out := Dates{Sowing: sowing}

	if rule.Kind == KindPerennial {
		out.First = AddYears(sowing, rule.FirstYears)
		out.Routine = FormatDate(AddDays(out.First, rule.RoutineDays))
		return out, nil
	}

	if strings.TrimSpace(firstOverride) != "" {
		d, err := ParseDate(firstOverride)
		if err != nil {
			return Dates{}, err
		}
		out.First = d
	} else {
		out.First = AddDays(sowing, rule.FirstDays)
	}

	if strings.TrimSpace(routineOverride) != "" {
		d, err := ParseDate(routineOverride)
		if err != nil {
			return Dates{}, err
		}
		out.Routine = FormatDate(d)
	} else {
		out.Routine = FormatDate(AddDays(out.First, rule.RoutineDays))
	}
	return out, nil
}

// Calculate builds a plot record ready for persistence. It fails only with
// ErrInvalidDateFormat and never returns a partial record.
func (t *Table) Calculate(in Input) (*entities.Hectarea, error) {
	sowing, err := ParseDate(in.SowingDate)
	if err != nil {
		return nil, err
	}
	crop := NormalizeCrop(in.CropType)
	d, err := t.Derive(crop, sowing, in.FirstHarvest, in.RoutineHarvest)
	if err != nil {
		return nil, err
	}

	h := &entities.Hectarea{
		Number:         in.Number,
		CropType:       crop,
		SowingDate:     FormatDate(d.Sowing),
		FirstHarvest:   FormatDate(d.First),
		RoutineHarvest: d.Routine,
		Temperature:    ParseOptionalFloat(in.Temperature),
	}
	if soil := strings.TrimSpace(in.SoilType); soil != "" {
		h.SoilType = &soil
	}
	return h, nil
}
