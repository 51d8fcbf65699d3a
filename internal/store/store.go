package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Calculation() Calculation
	Statistics(ctx context.Context) (model.CalculationStats, error)
	InitialMigration(ctx context.Context) error
	Close() error
}

type DataStore struct {
	calculation Calculation
	db          *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		calculation: NewCalculationStore(db),
		db:          db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Calculation() Calculation {
	return s.calculation
}

func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.calculation.InitialMigration(ctx)
}

func (s *DataStore) Statistics(ctx context.Context) (model.CalculationStats, error) {
	calculations, err := s.Calculation().List(ctx, nil, nil)
	if err != nil {
		return model.CalculationStats{}, err
	}
	return model.NewCalculationStats(calculations), nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
