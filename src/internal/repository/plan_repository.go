package repository

import (
	"context"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
)

type PlanRepository struct {
	DB mysql.DBInterface
}

func NewPlanRepository(db mysql.DBInterface) *PlanRepository {
	return &PlanRepository{DB: db}
}

const planColumns = `id, name, price, annual_price, max_vehicles, features, is_active`

func (r *PlanRepository) ListActive(ctx context.Context, skip, limit int) ([]entity.Plan, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plans []entity.Plan
	query := `SELECT ` + planColumns + ` FROM plans WHERE is_active = 1 LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &plans, query, limit, skip); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id int64) (*entity.Plan, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plan entity.Plan
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	if err := db.GetContext(ctx, &plan, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &plan, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO plans (name, price, annual_price, max_vehicles, features, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query,
		plan.Name, plan.Price, plan.AnnualPrice, plan.MaxVehicles, plan.Features, plan.IsActive)
	if err != nil {
		return err
	}

	plan.ID, err = res.LastInsertId()
	return err
}

func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE plans
		SET name = ?, price = ?, annual_price = ?, max_vehicles = ?, features = ?, is_active = ?
		WHERE id = ?`
	res, err := db.ExecContext(ctx, query,
		plan.Name, plan.Price, plan.AnnualPrice, plan.MaxVehicles, plan.Features,
		plan.IsActive, plan.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// defaultPlans is the stock catalog inserted on first boot.
func defaultPlans() []entity.Plan {
	return []entity.Plan{
		{
			Name:        "Basic",
			Price:       9.99,
			AnnualPrice: 99.99,
			MaxVehicles: 2,
			Features: entity.PlanFeatures{
				"free_passes":      5,
				"discount":         0,
				"priority_support": false,
			},
			IsActive: true,
		},
		{
			Name:        "Premium",
			Price:       19.99,
			AnnualPrice: 199.99,
			MaxVehicles: 5,
			Features: entity.PlanFeatures{
				"free_passes":      10,
				"discount":         5,
				"priority_support": true,
			},
			IsActive: true,
		},
		{
			Name:        "Business",
			Price:       49.99,
			AnnualPrice: 499.99,
			MaxVehicles: 10,
			Features: entity.PlanFeatures{
				"free_passes":       20,
				"discount":          10,
				"priority_support":  true,
				"dedicated_manager": true,
			},
			IsActive: true,
		},
	}
}

// SeedDefaults inserts the starter plans on an empty table.
func (r *PlanRepository) SeedDefaults(ctx context.Context) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM plans`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := defaultPlans()
	for i := range defaults {
		if err := r.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
