package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
)

type Calculation interface {
	List(ctx context.Context, filter *CalculationQueryFilter, opts *CalculationQueryOptions) (model.CalculationList, error)
	Create(ctx context.Context, calculation model.Calculation) (*model.Calculation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Calculation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	InitialMigration(ctx context.Context) error
}

type CalculationStore struct {
	db *gorm.DB
}

// Make sure we conform to Calculation interface
var _ Calculation = (*CalculationStore)(nil)

func NewCalculationStore(db *gorm.DB) Calculation {
	return &CalculationStore{db: db}
}

func (c *CalculationStore) InitialMigration(ctx context.Context) error {
	return c.getDB(ctx).AutoMigrate(&model.Calculation{})
}

// List lists stored calculations, narrowed and ordered by the given filter
// and options.
func (c *CalculationStore) List(ctx context.Context, filter *CalculationQueryFilter, opts *CalculationQueryOptions) (model.CalculationList, error) {
	var calculations model.CalculationList
	tx := c.getDB(ctx)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if err := tx.Model(&calculations).Find(&calculations).Error; err != nil {
		return nil, err
	}

	return calculations, nil
}

// Create stores a calculation row.
func (c *CalculationStore) Create(ctx context.Context, calculation model.Calculation) (*model.Calculation, error) {
	if err := c.getDB(ctx).WithContext(ctx).Create(&calculation).Error; err != nil {
		return nil, translateError(err)
	}

	return &calculation, nil
}

// Get returns a calculation based on its id.
func (c *CalculationStore) Get(ctx context.Context, id uuid.UUID) (*model.Calculation, error) {
	calculation := model.NewCalculationFromId(id)

	if err := c.getDB(ctx).WithContext(ctx).First(calculation).Error; err != nil {
		return nil, translateError(err)
	}

	return calculation, nil
}

// Delete removes a calculation. Deleting a missing row is not an error.
func (c *CalculationStore) Delete(ctx context.Context, id uuid.UUID) error {
	calculation := model.NewCalculationFromId(id)
	result := c.getDB(ctx).WithContext(ctx).Unscoped().Delete(calculation)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (c *CalculationStore) DeleteAll(ctx context.Context) error {
	result := c.getDB(ctx).WithContext(ctx).Unscoped().Exec("DELETE FROM calculations")
	return result.Error
}

func (c *CalculationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return c.db
}
