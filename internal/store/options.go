package store

import (
	"gorm.io/gorm"
)

type SortOrder int

const (
	Unsorted SortOrder = iota
	SortByID
	SortByCreatedTime
	SortByCreatedTimeDesc
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type CalculationQueryFilter BaseQuerier

func NewCalculationQueryFilter() *CalculationQueryFilter {
	return &CalculationQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *CalculationQueryFilter) ByRule(rule string) *CalculationQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("rule = ?", rule)
	})
	return qf
}

func (qf *CalculationQueryFilter) ByFunctionKind(kind string) *CalculationQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("function_kind = ?", kind)
	})
	return qf
}

func (qf *CalculationQueryFilter) ByID(ids []string) *CalculationQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id IN ?", ids)
	})
	return qf
}

type CalculationQueryOptions BaseQuerier

func NewCalculationQueryOptions() *CalculationQueryOptions {
	return &CalculationQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *CalculationQueryOptions) WithSortOrder(sort SortOrder) *CalculationQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByID:
			return tx.Order("id")
		case SortByCreatedTime:
			return tx.Order("created_at")
		case SortByCreatedTimeDesc:
			return tx.Order("created_at DESC")
		default:
			return tx
		}
	})
	return o
}

func (o *CalculationQueryOptions) WithLimit(limit int) *CalculationQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *CalculationQueryOptions) WithOffset(offset int) *CalculationQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
