package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	permeability "Darcy/internal/calc/permeability"
)

type UserRepository interface {
	CreateUser(ctx context.Context, login, email, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

// SavedWell is a named input snapshot. Estimates are recomputed on demand
// and never stored.
type SavedWell struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Input     permeability.Input `json:"input"`
	CreatedAt time.Time          `json:"created_at"`
}

type WellRepository interface {
	CreateWell(ctx context.Context, userID int, name string, in permeability.Input) (int, error)
	GetWell(ctx context.Context, userID, id int) (SavedWell, error)
	ListWells(ctx context.Context, userID int) ([]SavedWell, error)
	UpdateWell(ctx context.Context, userID, id int, name string, in permeability.Input) error
	DeleteWell(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenDB connects using DATABASE_URL, forcing sslmode when absent.
func OpenDB() (*sql.DB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr += "?sslmode=require"
		} else {
			connStr += " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, passwordHash).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string
	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreateWell(ctx context.Context, userID int, name string, in permeability.Input) (int, error) {
	params, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}
	var id int
	query := "INSERT INTO wells (user_id, name, params) VALUES ($1, $2, $3) RETURNING id"
	err = r.db.QueryRowContext(ctx, query, userID, name, string(params)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetWell(ctx context.Context, userID, id int) (SavedWell, error) {
	var well SavedWell
	var params []byte
	query := "SELECT id, name, params, created_at FROM wells WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&well.ID, &well.Name, &params, &well.CreatedAt)
	if err != nil {
		return SavedWell{}, err
	}
	if err := json.Unmarshal(params, &well.Input); err != nil {
		return SavedWell{}, err
	}
	return well, nil
}

func (r *PostgresRepository) ListWells(ctx context.Context, userID int) ([]SavedWell, error) {
	query := "SELECT id, name, params, created_at FROM wells WHERE user_id=$1 ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wells []SavedWell
	for rows.Next() {
		var well SavedWell
		var params []byte
		if err := rows.Scan(&well.ID, &well.Name, &params, &well.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(params, &well.Input); err != nil {
			return nil, err
		}
		wells = append(wells, well)
	}
	return wells, rows.Err()
}

func (r *PostgresRepository) UpdateWell(ctx context.Context, userID, id int, name string, in permeability.Input) error {
	params, err := json.Marshal(in)
	if err != nil {
		return err
	}
	query := "UPDATE wells SET name=$1, params=$2 WHERE id=$3 AND user_id=$4"
	res, err := r.db.ExecContext(ctx, query, name, string(params), id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) DeleteWell(ctx context.Context, userID, id int) error {
	query := "DELETE FROM wells WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
