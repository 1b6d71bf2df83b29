package entities

import (
	"time"
)

// ExternalCourierKey - зарезервированный ключ колонки/видимости для курьеров не из ростера.
const ExternalCourierKey = "external"

type Courier struct {
	ID           int64
	Name         string
	Phone        string
	Status       CourierStatusType
	ServiceAreas []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key - стабильный ключ политики видимости (отображаемое имя).
func (c Courier) Key() string {
	return c.Name
}

type CourierStatusType string

const (
	CourierFree CourierStatusType = "free"
	CourierBusy CourierStatusType = "busy"
)

func (t CourierStatusType) String() string {
	return string(t)
}
