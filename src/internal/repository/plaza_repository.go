package repository

import (
	"context"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/pkg/databases/mysql"
)

type PlazaRepository struct {
	DB mysql.DBInterface
}

func NewPlazaRepository(db mysql.DBInterface) *PlazaRepository {
	return &PlazaRepository{DB: db}
}

const plazaColumns = `
	id, name, location, address, base_price, current_price, busy_level,
	estimated_time, vehicles_per_hour`

func (r *PlazaRepository) List(ctx context.Context, skip, limit int) ([]entity.TollPlaza, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plazas []entity.TollPlaza
	query := `SELECT ` + plazaColumns + ` FROM toll_plazas LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &plazas, query, limit, skip); err != nil {
		return nil, err
	}
	return plazas, nil
}

func (r *PlazaRepository) FindByID(ctx context.Context, id int64) (*entity.TollPlaza, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var plaza entity.TollPlaza
	query := `SELECT ` + plazaColumns + ` FROM toll_plazas WHERE id = ?`
	if err := db.GetContext(ctx, &plaza, query, id); err != nil {
		return nil, translateNoRows(err)
	}
	return &plaza, nil
}

func (r *PlazaRepository) Create(ctx context.Context, plaza *entity.TollPlaza) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO toll_plazas (name, location, address, base_price, current_price,
			busy_level, estimated_time, vehicles_per_hour)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, query,
		plaza.Name, plaza.Location, plaza.Address, plaza.BasePrice,
		plaza.CurrentPrice, plaza.BusyLevel, plaza.EstimatedTime, plaza.VehiclesPerHour)
	if err != nil {
		return err
	}

	plaza.ID, err = res.LastInsertId()
	return err
}

// Update writes the static plaza attributes. Derived pricing fields are owned
// by the traffic ingestion path, not this method.
func (r *PlazaRepository) Update(ctx context.Context, plaza *entity.TollPlaza) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE toll_plazas
		SET name = ?, location = ?, address = ?, base_price = ?
		WHERE id = ?`
	res, err := db.ExecContext(ctx, query,
		plaza.Name, plaza.Location, plaza.Address, plaza.BasePrice, plaza.ID)
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

func (r *PlazaRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM toll_plazas WHERE id = ?`, id)
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
