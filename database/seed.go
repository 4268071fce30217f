package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cultivos/entities"
)

func deg(v float64) *float64 { return &v }

var (
	defaultSoils = []entities.SoilType{
		{Name: "Arenoso", Description: "Suelos con alta cantidad de arena.", Image: "arenoso.jpg"},
		{Name: "Limoso", Description: "Suelos con alta proporción de limo.", Image: "limoso.jpg"},
		{Name: "Franco", Description: "Suelos equilibrados.", Image: "franco.jpg"},
		{Name: "Arcilloso", Description: "Suelos con alta cantidad de arcilla.", Image: "arcilloso.jpg"},
	}
	defaultVegetables = []entities.VegetableType{
		{Name: "Bulbos", Description: "Vegetales de forma redonda que crecen bajo tierra.", Image: "bulbos.jpg"},
		{Name: "Tallos comestibles", Description: "Vegetales con tallos comestibles.", Image: "tallos.jpg"},
		{Name: "Raíces comestibles", Description: "Vegetales con raíces comestibles.", Image: "raices.jpg"},
		{Name: "Frutos", Description: "Vegetales de tipo fruto.", Image: "frutos.jpg"},
		{Name: "Hojas", Description: "Vegetales donde se consumen las hojas.", Image: "hojas.jpg"},
		{Name: "Flores", Description: "Vegetales en los que se consumen las flores.", Image: "flores.jpg"},
		{Name: "Tubérculos", Description: "Vegetales con tubérculos comestibles.", Image: "tuberculos.jpg"},
	}
	defaultClimates = []entities.Climate{
		{Name: "Tropical", Degrees: deg(30), Description: "Clima cálido y húmedo.", Image: "tropical.jpg"},
		{Name: "Seco", Degrees: deg(25), Description: "Clima árido con poca humedad.", Image: "seco.jpg"},
		{Name: "Templado", Degrees: deg(20), Description: "Clima moderado.", Image: "templado.jpg"},
		{Name: "Continental", Degrees: deg(15), Description: "Clima con estaciones bien marcadas.", Image: "continental.jpg"},
		{Name: "Polar", Degrees: deg(0), Description: "Clima muy frío.", Image: "polar.jpg"},
	}
)

// Seed fills the soil, vegetable and climate catalogs when they are empty.
// The admin account is created by the auth service, which owns hashing.
func Seed(db *gorm.DB, log *zap.Logger) error {
	if err := seedIfEmpty(db, log, &entities.SoilType{}, cloneSlice(defaultSoils)); err != nil {
		return err
	}
	if err := seedIfEmpty(db, log, &entities.VegetableType{}, cloneSlice(defaultVegetables)); err != nil {
		return err
	}
	return seedIfEmpty(db, log, &entities.Climate{}, cloneSlice(defaultClimates))
}

func cloneSlice[T any](in []T) []T { return append([]T(nil), in...) }

func seedIfEmpty[T any](db *gorm.DB, log *zap.Logger, model any, rows []T) error {
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		return fmt.Errorf("count %T: %w", model, err)
	}
	if n > 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %T: %w", model, err)
	}
	log.Info("catalog seeded", zap.String("model", fmt.Sprintf("%T", model)), zap.Int("rows", len(rows)))
	return nil
}
