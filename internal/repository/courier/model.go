package courier

import "time"

type CourierDB struct {
	ID           int64
	Name         string
	Phone        string
	Status       string
	ServiceAreas []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
