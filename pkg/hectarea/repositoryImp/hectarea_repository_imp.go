package repositoryImp

import (
	"database/sql"

	"gorm.io/gorm"

	"cultivos/entities"
	"cultivos/pkg/hectarea/repository"
)

type hectareaRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HectareaRepository { return &hectareaRepo{db} }

func (r *hectareaRepo) Create(h *entities.Hectarea) error { return r.db.Create(h).Error }

func (r *hectareaRepo) List() ([]entities.Hectarea, error) {
	var out []entities.Hectarea
	return out, r.db.Order("numero ASC").Find(&out).Error
}

func (r *hectareaRepo) FindByNumber(number int) (*entities.Hectarea, error) {
	var h entities.Hectarea
	if err := r.db.Where("numero = ?", number).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// Update writes every column, including NULLs for cleared soil/temperature.
func (r *hectareaRepo) Update(h *entities.Hectarea) error {
	return r.db.Model(&entities.Hectarea{}).Where("numero = ?", h.Number).Updates(map[string]any{
		"tipo_de_cultivo":   h.CropType,
		"siembra":           h.SowingDate,
		"primera_cosecha":   h.FirstHarvest,
		"cosecha_rutinaria": h.RoutineHarvest,
		"tipo_suelo":        h.SoilType,
		"temperatura":       h.Temperature,
	}).Error
}

func (r *hectareaRepo) DeleteByNumber(number int) (bool, error) {
	res := r.db.Where("numero = ?", number).Delete(&entities.Hectarea{})
	return res.RowsAffected > 0, res.Error
}

func (r *hectareaRepo) MaxNumber() (int, error) {
	var n sql.NullInt64
	if err := r.db.Model(&entities.Hectarea{}).Select("MAX(numero)").Scan(&n).Error; err != nil {
		return 0, err
	}
	return int(n.Int64), nil
}
