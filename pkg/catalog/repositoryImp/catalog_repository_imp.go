package repositoryImp

import (
	"gorm.io/gorm"

	"cultivos/entities"
	"cultivos/pkg/catalog/repository"
)

type catalogRepo[T any, P entities.CatalogPtr[T]] struct {
	db  *gorm.DB
	key string
}

func New[T any, P entities.CatalogPtr[T]](db *gorm.DB) repository.CatalogRepository[T] {
	return &catalogRepo[T, P]{db: db, key: P(new(T)).KeyColumn()}
}

func (r *catalogRepo[T, P]) List() ([]T, error) {
	var out []T
	return out, r.db.Order(r.key + " ASC").Find(&out).Error
}

func (r *catalogRepo[T, P]) FindByKey(key uint) (*T, error) {
	var e T
	if err := r.db.Where(r.key+" = ?", key).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *catalogRepo[T, P]) SearchByName(fragment string) ([]T, error) {
	var out []T
	return out, r.db.Where("nombre LIKE ?", "%"+fragment+"%").Order(r.key + " ASC").Find(&out).Error
}

func (r *catalogRepo[T, P]) Create(e *T) error { return r.db.Create(e).Error }

// Update writes every column of e, zero values included.
func (r *catalogRepo[T, P]) Update(key uint, e *T) (bool, error) {
	P(e).SetKey(key)
	res := r.db.Model(e).Select("*").Updates(e)
	return res.RowsAffected > 0, res.Error
}

func (r *catalogRepo[T, P]) Delete(key uint) (bool, error) {
	res := r.db.Where(r.key+" = ?", key).Delete(new(T))
	return res.RowsAffected > 0, res.Error
}

func (r *catalogRepo[T, P]) Count() (int64, error) {
	var n int64
	return n, r.db.Model(new(T)).Count(&n).Error
}
