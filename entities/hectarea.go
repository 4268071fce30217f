package entities

// Hectarea is one tracked plot. Column names follow the legacy cultivos.db
// schema so an existing database opens unchanged. Dates are stored as
// YYYY-MM-DD text.
type Hectarea struct {
	ID             uint     `gorm:"primaryKey;column:id" json:"-"`
	Number         int      `gorm:"column:numero;uniqueIndex" json:"number"`
	CropType       string   `gorm:"column:tipo_de_cultivo" json:"crop_type"`
	SowingDate     string   `gorm:"column:siembra" json:"sowing_date"`
	FirstHarvest   string   `gorm:"column:primera_cosecha" json:"first_harvest_date"`
	RoutineHarvest string   `gorm:"column:cosecha_rutinaria" json:"routine_harvest_date"`
	SoilType       *string  `gorm:"column:tipo_suelo" json:"soil_type"`
	Temperature    *float64 `gorm:"column:temperatura" json:"temperature"`
}

func (Hectarea) TableName() string { return "hectareas" }
