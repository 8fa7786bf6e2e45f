package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var ErrDuplicateOrder = errors.New("order already archived")

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// Archive is an optional durable postgres copy of placed orders, written
// through after the adapter append. It is not the system of record for the
// running session.
type Archive struct {
	db *sql.DB
}

func NewArchive(cred *Credentials) (*Archive, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	return &Archive{db: db}, nil
}

func (a *Archive) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(a.db, &postgres.Config{
		MigrationsTable: "orders_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (a *Archive) SaveOrder(ctx context.Context, o Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `INSERT INTO orders (id, user_id, total, status, items, shipping_name, shipping_street, shipping_city, shipping_state, shipping_zip, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, insertErr := a.db.ExecContext(ctx, query,
		o.ID,
		o.UserID,
		o.Total.String(),
		o.Status.String(),
		itemsJSON,
		o.ShippingAddress.Name,
		o.ShippingAddress.Street,
		o.ShippingAddress.City,
		o.ShippingAddress.State,
		o.ShippingAddress.ZipCode,
		o.CreatedAt)

	if insertErr != nil {
		var pqErr *pq.Error
		if errors.As(insertErr, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", insertErr)
	}
	return nil
}

func (a *Archive) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	query := `SELECT id, user_id, total, status, items, shipping_name, shipping_street, shipping_city, shipping_state, shipping_zip, created_at
	          FROM orders WHERE user_id = $1 ORDER BY created_at`

	rows, err := a.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders by user id: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return orders, nil
}

func scanOrder(rows *sql.Rows) (Order, error) {
	var o Order
	var totalStr string
	var statusStr string
	var itemsJSON []byte
	if err := rows.Scan(
		&o.ID,
		&o.UserID,
		&totalStr,
		&statusStr,
		&itemsJSON,
		&o.ShippingAddress.Name,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.City,
		&o.ShippingAddress.State,
		&o.ShippingAddress.ZipCode,
		&o.CreatedAt,
	); err != nil {
		return Order{}, fmt.Errorf("scan order row: %w", err)
	}

	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		return Order{}, fmt.Errorf("parse order total %q: %w", totalStr, err)
	}
	o.Total = total
	o.Status = Status(statusStr)

	var items []cart.Line
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	o.Items = items
	return o, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}
