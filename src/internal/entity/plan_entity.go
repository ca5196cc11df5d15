package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PlanFeatures is a structured feature map stored as JSON. Values keep their
// JSON types, so numeric entries scan back as float64 and flags as bool.
type PlanFeatures map[string]any

func (f PlanFeatures) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

func (f *PlanFeatures) Scan(src interface{}) error {
	if src == nil {
		*f = PlanFeatures{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PlanFeatures", src)
	}
	if len(raw) == 0 {
		*f = PlanFeatures{}
		return nil
	}
	return json.Unmarshal(raw, f)
}

type Plan struct {
	ID          int64        `db:"id"`
	Name        string       `db:"name"`
	Price       float64      `db:"price"`
	AnnualPrice float64      `db:"annual_price"`
	MaxVehicles int          `db:"max_vehicles"`
	Features    PlanFeatures `db:"features"`
	IsActive    bool         `db:"is_active"`
}
