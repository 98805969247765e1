package repository

import (
	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBCustomerRepo struct {
	app pbCore.App
}

func NewCustomerRepo(app pbCore.App) domain.CustomerRepository {
	return &PBCustomerRepo{app: app}
}

func (r *PBCustomerRepo) RecentActive(limit int) ([]*domain.Customer, error) {
	records, err := r.app.FindRecordsByFilter(
		"customers",
		"disabled = false",
		"-updated",
		limit,
		0,
	)
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, &domain.Customer{
			ID:           rec.Id,
			CustomerName: rec.GetString("customer_name"),
			Image:        rec.GetString("image"),
		})
	}
	return customers, nil
}
