package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cultivos/database/testdb"
	"cultivos/entities"
	"cultivos/pkg/apperr"
	"cultivos/pkg/management/repositoryImp"
	"cultivos/pkg/management/service"
)

func newSvc(t *testing.T) (service.ManagementService, *gorm.DB) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&entities.User{Username: "ana", Password: "x", Role: entities.RoleUser}).Error)
	return NewManagementService(repositoryImp.New(db), zap.NewNop()), db
}

func TestManagementCRUD(t *testing.T) {
	svc, _ := newSvc(t)

	m, err := svc.Create(&entities.CropManagement{UserID: 1, VegetableID: 5, SoilID: 3, ClimateID: 1, Video: " https://example.com/v ", Notes: "riego diario"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), m.Code)
	assert.Equal(t, "https://example.com/v", m.Video)

	report, err := svc.Report()
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, entities.CropManagementReport{
		Code: 1, Username: "ana", Vegetable: "Hojas", Soil: "Franco", Climate: "Tropical",
		Video: "https://example.com/v", Notes: "riego diario",
	}, report[0])

	_, err = svc.Update(1, &entities.CropManagement{UserID: 1, VegetableID: 1, SoilID: 1, ClimateID: 5})
	require.NoError(t, err)
	got, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ClimateID)
	assert.Empty(t, got.Notes)

	require.NoError(t, svc.Delete(1))
	assert.ErrorIs(t, svc.Delete(1), apperr.ErrNotFound)
	_, err = svc.Get(1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestManagementValidation(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.Create(&entities.CropManagement{UserID: 1, VegetableID: 1, SoilID: 1})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Update(9, &entities.CropManagement{UserID: 1, VegetableID: 1, SoilID: 1, ClimateID: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReportKeepsDanglingRows(t *testing.T) {
	svc, db := newSvc(t)
	_, err := svc.Create(&entities.CropManagement{UserID: 1, VegetableID: 2, SoilID: 2, ClimateID: 2})
	require.NoError(t, err)

	require.NoError(t, db.Where("codigo = ?", 2).Delete(&entities.Climate{}).Error)
	require.NoError(t, db.Where("id = ?", 1).Delete(&entities.User{}).Error)

	report, err := svc.Report()
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Empty(t, report[0].Username)
	assert.Empty(t, report[0].Climate)
	assert.Equal(t, "Limoso", report[0].Soil)

	raw, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, uint(2), raw[0].ClimateID)
}
