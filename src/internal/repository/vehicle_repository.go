package repository

import (
	"context"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type VehicleRepository struct {
	DB mysql.DBInterface
}

func NewVehicleRepository(db mysql.DBInterface) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

const vehicleColumns = `
	id, user_id, license_plate, vehicle_type, make, model, year, color,
	transponder_id, is_active, created_at, updated_at`

func (r *VehicleRepository) FindByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicles []entity.Vehicle
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = ? LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &vehicles, query, userID, limit, skip); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM vehicles WHERE user_id = ?`, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicle entity.Vehicle
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`
	if err := db.GetContext(ctx, &vehicle, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	now := utils.ISTNow()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	query := `
		INSERT INTO vehicles (user_id, license_plate, vehicle_type, make, model,
			year, color, transponder_id, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query,
		vehicle.UserID, vehicle.LicensePlate, vehicle.VehicleType, vehicle.Make,
		vehicle.Model, vehicle.Year, vehicle.Color, vehicle.TransponderID,
		vehicle.IsActive, vehicle.CreatedAt, vehicle.UpdatedAt)
	if err != nil {
		return err
	}

	vehicle.ID, err = res.LastInsertId()
	return err
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	vehicle.UpdatedAt = utils.ISTNow()
	query := `
		UPDATE vehicles
		SET license_plate = ?, vehicle_type = ?, make = ?, model = ?, year = ?,
			color = ?, transponder_id = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	_, err = db.ExecContext(ctx, query,
		vehicle.LicensePlate, vehicle.VehicleType, vehicle.Make, vehicle.Model,
		vehicle.Year, vehicle.Color, vehicle.TransponderID, vehicle.IsActive,
		vehicle.UpdatedAt, vehicle.ID)
	return err
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
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
