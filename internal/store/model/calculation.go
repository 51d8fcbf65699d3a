package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Calculation struct {
	gorm.Model
	ID           uuid.UUID `gorm:"primaryKey;"`
	FunctionKind string    `gorm:"not null"`
	Parameters   []byte    `gorm:"type:jsonb"`
	Lower        float64
	Upper        float64
	Rule         string `gorm:"index;not null"`
	Result       float64
}

type CalculationList []Calculation

func (c Calculation) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}

func NewCalculationFromId(id uuid.UUID) *Calculation {
	return &Calculation{ID: id}
}
