package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	appErr "github.com/routeburn/product-flow/pkg/errors"
	"gorm.io/gorm"
)

// DefaultStoreTimeout bounds record-store calls when no explicit timeout is
// configured.
const DefaultStoreTimeout = 5 * time.Second

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id any) error
}

type baseRepository[T any] struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewBaseRepository[T any](db *gorm.DB, timeout time.Duration) BaseRepository[T] {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &baseRepository[T]{db: db, timeout: timeout}
}

// bound applies the store timeout. Every store call is independently bounded;
// timeouts surface as CodeUnavailable so callers can distinguish a slow store
// from a missing record.
func bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr maps a gorm/driver failure onto the error taxonomy.
func storeErr(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return appErr.Unavailable(err, msg)
	}
	return appErr.Wrap(err, appErr.CodeInternal, msg)
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return storeErr(err, "create record failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "record not found")
		}
		return storeErr(err, "get record failed")
	}
	return nil
}

func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	if err := r.db.WithContext(ctx).Save(obj).Error; err != nil {
		return storeErr(err, "update record failed")
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	ctx, cancel := bound(ctx, r.timeout)
	defer cancel()
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return storeErr(res.Error, "delete record failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("record %v not found", id))
	}
	return nil
}
