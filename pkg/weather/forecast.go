package weather

import (
	"time"

	"github.com/google/uuid"
)

// Field names reported in validation failures.
const (
	FieldDate         = "date"
	FieldTemperatureC = "temperature_c"
	FieldSummary      = "summary"
	FieldLocationID   = "location_id"
)

// Forecast is a single weather observation. Only the date part of Date is
// meaningful. A nil Summary means no summary was entered, which is different
// from an empty one.
type Forecast struct {
	Date         time.Time
	TemperatureC int
	Summary      *string
	LocationID   uuid.UUID
}

// TemperatureF converts TemperatureC to Fahrenheit, truncating toward zero.
// It is derived on every call and has no setter.
func (f Forecast) TemperatureF() int {
	return 32 + int(float64(f.TemperatureC)/0.5556)
}
