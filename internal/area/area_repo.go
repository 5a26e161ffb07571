package area

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=area_repo.go -destination=mock/area_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, area *Area) error
	FindAll(ctx context.Context) ([]Area, error)
	FindByID(ctx context.Context, id uint) (*Area, error)
	Update(ctx context.Context, area *Area) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Area, error) {
	var areas []Area
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&areas).Error
	return areas, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Area, error) {
	var area Area
	err := r.db.WithContext(ctx).
		First(&area, "id = ?", id).Error
	return &area, err
}

func (r *repository) Update(ctx context.Context, area *Area) error {
	return r.db.WithContext(ctx).Save(area).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	// Rates and salary records go with the area via FK cascade in
	// the same statement's transaction.
	res := r.db.WithContext(ctx).Delete(&Area{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
