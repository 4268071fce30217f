package entities

// CropManagement links a user with a vegetable, soil and climate entry.
// References are not enforced: deleting a catalog row leaves them dangling.
type CropManagement struct {
	Code        uint   `gorm:"primaryKey;column:codigo" json:"code"`
	UserID      uint   `gorm:"column:id_persona" json:"user_id"`
	VegetableID uint   `gorm:"column:id_tipo_hortaliza" json:"vegetable_id"`
	SoilID      uint   `gorm:"column:id_tipo_suelo" json:"soil_id"`
	ClimateID   uint   `gorm:"column:id_clima" json:"climate_id"`
	Video       string `gorm:"column:video" json:"video"`
	Notes       string `gorm:"column:observaciones" json:"notes"`
}

func (CropManagement) TableName() string { return "gestion_cultivo" }

// CropManagementReport is the joined, human-readable view of a CropManagement row.
type CropManagementReport struct {
	Code      uint   `json:"code"`
	Username  string `json:"username"`
	Vegetable string `json:"vegetable"`
	Soil      string `json:"soil"`
	Climate   string `json:"climate"`
	Video     string `json:"video"`
	Notes     string `json:"notes"`
}
