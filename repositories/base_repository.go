package repositories

import (
	"context"
	"errors"
	"strings"

	"ygodeck.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hata.
// Servis katmanı bunu kendi hata tipine çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository ortak CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, model *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetAll(ctx context.Context, params queryparams.ListParams) ([]T, int64, error)
	GetCount(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) ile base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
	}
}

// SetAllowedSortColumns sıralamaya izin verilen sütunları belirler.
// Liste dışı bir sütun istenirse created_at'e düşülür (SQL injection önlemi).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, col := range columns {
		allowed[col] = true
	}
	r.allowedSortColumns = allowed
}

func (r *BaseRepository[T]) Create(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var model T
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	var model T
	result := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var model T
	result := r.db.WithContext(ctx).Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetAll(ctx context.Context, params queryparams.ListParams) ([]T, int64, error) {
	var results []T
	var totalCount int64
	var model T

	query := r.db.WithContext(ctx).Model(&model)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
