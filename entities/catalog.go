package entities

// Catalog is implemented by every reference-data row (soil, climate,
// vegetable and crop types).
type Catalog interface {
	TableName() string
	KeyColumn() string
	Key() uint
	Label() string
	ExportHeaders() []string
	ExportRow() []any
}

// CatalogPtr lets generic code set the primary key on a *T.
type CatalogPtr[T any] interface {
	*T
	Catalog
	SetKey(id uint)
}

type SoilType struct {
	Code        uint   `gorm:"primaryKey;column:codigo" json:"code"`
	Name        string `gorm:"column:nombre;uniqueIndex" json:"name"`
	Description string `gorm:"column:descripcion" json:"description"`
	Image       string `gorm:"column:imagen" json:"image"`
}

func (SoilType) TableName() string { return "tipo_suelo" }
func (s *SoilType) SetKey(id uint) { s.Code = id }
func (SoilType) KeyColumn() string { return "codigo" }
func (s SoilType) Key() uint       { return s.Code }
func (s SoilType) Label() string   { return s.Name }
func (SoilType) ExportHeaders() []string {
	return []string{"codigo", "nombre", "descripcion", "imagen"}
}
func (s SoilType) ExportRow() []any { return []any{s.Code, s.Name, s.Description, s.Image} }

// VegetableType is a hortaliza category (bulbs, leaves, roots...).
type VegetableType struct {
	Code        uint   `gorm:"primaryKey;column:codigo" json:"code"`
	Name        string `gorm:"column:nombre;uniqueIndex" json:"name"`
	Description string `gorm:"column:descripcion" json:"description"`
	Image       string `gorm:"column:imagen" json:"image"`
}

func (VegetableType) TableName() string { return "tipo_hortaliza" }
func (v *VegetableType) SetKey(id uint) { v.Code = id }
func (VegetableType) KeyColumn() string { return "codigo" }
func (v VegetableType) Key() uint       { return v.Code }
func (v VegetableType) Label() string   { return v.Name }
func (VegetableType) ExportHeaders() []string {
	return []string{"codigo", "nombre", "descripcion", "imagen"}
}
func (v VegetableType) ExportRow() []any { return []any{v.Code, v.Name, v.Description, v.Image} }

type Climate struct {
	Code        uint     `gorm:"primaryKey;column:codigo" json:"code"`
	Name        string   `gorm:"column:nombre;uniqueIndex" json:"name"`
	Degrees     *float64 `gorm:"column:grados_temperatura" json:"degrees"`
	Description string   `gorm:"column:descripcion" json:"description"`
	Image       string   `gorm:"column:imagen" json:"image"`
}

func (Climate) TableName() string { return "clima" }
func (c *Climate) SetKey(id uint) { c.Code = id }
func (Climate) KeyColumn() string { return "codigo" }
func (c Climate) Key() uint       { return c.Code }
func (c Climate) Label() string   { return c.Name }
func (Climate) ExportHeaders() []string {
	return []string{"codigo", "nombre", "grados_temperatura", "descripcion", "imagen"}
}
func (c Climate) ExportRow() []any {
	var deg any
	if c.Degrees != nil {
		deg = *c.Degrees
	}
	return []any{c.Code, c.Name, deg, c.Description, c.Image}
}

// CropType is the editable crop catalog. Month counts are informational; the
// harvest calculator uses its own day-offset table.
type CropType struct {
	ID            uint   `gorm:"primaryKey;column:id" json:"id"`
	Name          string `gorm:"column:nombre;uniqueIndex" json:"name"`
	FirstMonths   int    `gorm:"column:meses_primera" json:"first_months"`
	RoutineMonths int    `gorm:"column:meses_rutinaria" json:"routine_months"`
}

func (CropType) TableName() string { return "tipo_cultivo" }
func (c *CropType) SetKey(id uint) { c.ID = id }
func (CropType) KeyColumn() string { return "id" }
func (c CropType) Key() uint       { return c.ID }
func (c CropType) Label() string   { return c.Name }
func (CropType) ExportHeaders() []string {
	return []string{"id", "nombre", "meses_primera", "meses_rutinaria"}
}
func (c CropType) ExportRow() []any { return []any{c.ID, c.Name, c.FirstMonths, c.RoutineMonths} }
