package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/omartarek/e-commerce-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) (*model.UserEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (email, username, password, first_name, last_name, phone_number) VALUES (?, ?, ?, ?, ?, ?)`
	getUserBase     = `SELECT id, email, username, password, first_name, last_name, phone_number FROM user WHERE true`
	updateUserQuery = `UPDATE user SET email = ?, username = ?, password = ?, first_name = ?, last_name = ?, phone_number = ? WHERE id = ?`
)

func buildGetQuery(filter *model.UserFilter) (string, []any) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.ExcludeID != 0 {
		query += " AND id != ?"
		args = append(args, filter.ExcludeID)
	}

	return query, args
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildGetQuery(filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildGetQuery(filter)

	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := tx.ExecContext(ctx, insertUserQuery, data.Email, data.Username, data.Password, data.FirstName, data.LastName, data.PhoneNumber)
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

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, updateUserQuery, data.Email, data.Username, data.Password, data.FirstName, data.LastName, data.PhoneNumber, data.ID)
	return err
}
