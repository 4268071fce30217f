package service

import (
	"cultivos/entities"
	"cultivos/pkg/harvest"
)

// UpdateInput carries the full set of editable fields. Dates are stored as
// given (after format validation) and never recomputed.
type UpdateInput struct {
	CropType       string `json:"crop_type"`
	SowingDate     string `json:"sowing_date"`
	FirstHarvest   string `json:"first_harvest_date"`
	RoutineHarvest string `json:"routine_harvest_date"`
	SoilType       string `json:"soil_type"`
	Temperature    string `json:"temperature"`
}

type HectareaService interface {
	Preview(in harvest.Input) (*entities.Hectarea, error)
	Register(in harvest.Input) (*entities.Hectarea, error)
	List() ([]entities.Hectarea, error)
	Get(number int) (*entities.Hectarea, error)
	Update(number int, in UpdateInput) (*entities.Hectarea, error)
	Delete(number int) error
	NextNumber() (int, error)
}
