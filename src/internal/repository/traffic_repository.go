package repository

import (
	"context"
	"fmt"

	"tolleasy-service/src/internal/entity"
	"tolleasy-service/src/internal/pricing"
	"tolleasy-service/src/pkg/databases/mysql"
	"tolleasy-service/src/pkg/utils"
)

type TrafficRepository struct {
	DB mysql.DBInterface
}

func NewTrafficRepository(db mysql.DBInterface) *TrafficRepository {
	return &TrafficRepository{DB: db}
}

func (r *TrafficRepository) FindByPlaza(ctx context.Context, plazaID int64, skip, limit int) ([]entity.TrafficData, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var samples []entity.TrafficData
	query := `
		SELECT id, toll_plaza_id, timestamp, vehicle_count, average_wait_time, price_multiplier
		FROM traffic_data WHERE toll_plaza_id = ? LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &samples, query, plazaID, limit, skip); err != nil {
		return nil, err
	}
	return samples, nil
}

// IngestSample appends the sample and recomputes the plaza's derived pricing
// fields in one database transaction. The plaza row is locked so concurrent
// samples for the same plaza serialize; the last committed sample wins.
// Returns the plaza as updated.
func (r *TrafficRepository) IngestSample(ctx context.Context, sample *entity.TrafficData) (*entity.TollPlaza, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	dbTx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	var plaza entity.TollPlaza
	err = dbTx.GetContext(ctx, &plaza,
		`SELECT `+plazaColumns+` FROM toll_plazas WHERE id = ? FOR UPDATE`, sample.TollPlazaID)
	if err != nil {
		return nil, translateNoRows(err)
	}

	sample.Timestamp = utils.ISTNow()
	res, err := dbTx.ExecContext(ctx, `
		INSERT INTO traffic_data (toll_plaza_id, timestamp, vehicle_count, average_wait_time, price_multiplier)
		VALUES (?, ?, ?, ?, ?)`,
		sample.TollPlazaID, sample.Timestamp, sample.VehicleCount,
		sample.AverageWaitTime, sample.PriceMultiplier)
	if err != nil {
		return nil, fmt.Errorf("failed to insert traffic data: %w", err)
	}
	if sample.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	pricing.Ingest(&plaza, pricing.Sample{
		VehicleCount:    sample.VehicleCount,
		AverageWaitTime: sample.AverageWaitTime,
		PriceMultiplier: sample.PriceMultiplier,
	})

	_, err = dbTx.ExecContext(ctx, `
		UPDATE toll_plazas
		SET current_price = ?, busy_level = ?, estimated_time = ?, vehicles_per_hour = ?
		WHERE id = ?`,
		plaza.CurrentPrice, plaza.BusyLevel, plaza.EstimatedTime,
		plaza.VehiclesPerHour, plaza.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update plaza pricing: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit traffic ingestion: %w", err)
	}
	return &plaza, nil
}
