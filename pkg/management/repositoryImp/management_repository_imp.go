package repositoryImp

import (
	"gorm.io/gorm"

	"cultivos/entities"
	"cultivos/pkg/management/repository"
)

type managementRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ManagementRepository { return &managementRepo{db} }

// Report joins the referenced names. LEFT JOINs keep rows whose references
// were deleted; their names come back empty.
func (r *managementRepo) Report() ([]entities.CropManagementReport, error) {
	var out []entities.CropManagementReport
	err := r.db.Table("gestion_cultivo AS gc").
		Select(`gc.codigo AS code,
			COALESCE(u.username, '') AS username,
			COALESCE(th.nombre, '') AS vegetable,
			COALESCE(ts.nombre, '') AS soil,
			COALESCE(c.nombre, '') AS climate,
			COALESCE(gc.video, '') AS video,
			COALESCE(gc.observaciones, '') AS notes`).
		Joins("LEFT JOIN usuarios u ON u.id = gc.id_persona").
		Joins("LEFT JOIN tipo_hortaliza th ON th.codigo = gc.id_tipo_hortaliza").
		Joins("LEFT JOIN tipo_suelo ts ON ts.codigo = gc.id_tipo_suelo").
		Joins("LEFT JOIN clima c ON c.codigo = gc.id_clima").
		Order("gc.codigo ASC").
		Scan(&out).Error
	return out, err
}

func (r *managementRepo) List() ([]entities.CropManagement, error) {
	var out []entities.CropManagement
	return out, r.db.Order("codigo ASC").Find(&out).Error
}

func (r *managementRepo) FindByCode(code uint) (*entities.CropManagement, error) {
	var m entities.CropManagement
	if err := r.db.Where("codigo = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *managementRepo) Create(m *entities.CropManagement) error { return r.db.Create(m).Error }

func (r *managementRepo) Update(m *entities.CropManagement) (bool, error) {
	res := r.db.Model(m).Select("*").Omit("codigo").Updates(m)
	return res.RowsAffected > 0, res.Error
}

func (r *managementRepo) Delete(code uint) (bool, error) {
	res := r.db.Where("codigo = ?", code).Delete(&entities.CropManagement{})
	return res.RowsAffected > 0, res.Error
}
