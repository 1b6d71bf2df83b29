package courier

import (
	"bakeryops/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	serviceAreas := c.ServiceAreas
	if serviceAreas == nil {
		serviceAreas = []string{}
	}

	return &entities.Courier{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Status:       entities.CourierStatusType(c.Status),
		ServiceAreas: serviceAreas,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
