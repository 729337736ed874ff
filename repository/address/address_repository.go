package address

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/omartarek/e-commerce-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AddressRepository interface {
	Create(ctx context.Context, req *model.AddressEntity) (*model.AddressEntity, error)
	Update(ctx context.Context, req *model.AddressEntity) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.AddressEntity, error)
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const (
	insertAddressQuery = `INSERT INTO user_address (user_id, governorate_id, address_line1, address_line2, postal_code) VALUES (?, ?, ?, ?, ?)`
	updateAddressQuery = `UPDATE user_address SET governorate_id = ?, address_line1 = ?, address_line2 = ?, postal_code = ? WHERE id = ? AND user_id = ?`
	listAddressQuery   = `SELECT id, user_id, governorate_id, address_line1, address_line2, postal_code FROM user_address WHERE user_id = ? ORDER BY id`
)

func (s *SQL) Create(ctx context.Context, data *model.AddressEntity) (*model.AddressEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAddressQuery, data.UserID, data.GovernorateID, data.AddressLine1, data.AddressLine2, data.PostalCode)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Update writes the address only when it belongs to the given user.
// Returns the number of matched rows so callers can distinguish a
// missing or foreign address from a successful write.
func (s *SQL) Update(ctx context.Context, data *model.AddressEntity) (int64, error) {
	result, err := s.conn.ExecContext(ctx, updateAddressQuery, data.GovernorateID, data.AddressLine1, data.AddressLine2, data.PostalCode, data.ID, data.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.AddressEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listAddressQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]model.AddressEntity, 0)
	for rows.Next() {
		var entity model.AddressEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		addresses = append(addresses, entity)
	}
	return addresses, rows.Err()
}
