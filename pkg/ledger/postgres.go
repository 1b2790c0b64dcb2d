// Package ledger is an optional Postgres audit trail for created payment
// orders and verification outcomes. All writes are best-effort; the payment
// path never fails on a ledger error.
package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

type Ledger struct {
	db *sql.DB
}

func Open(connStr string) (*Ledger, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	l := &Ledger{db: db}
	if err := l.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure ledger schema: %w", err)
	}
	return l, nil
}

func (l *Ledger) ensureSchema() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS payment_orders (
			id           SERIAL PRIMARY KEY,
			order_id     TEXT NOT NULL,
			amount_paise BIGINT NOT NULL,
			currency     TEXT NOT NULL,
			receipt      TEXT NOT NULL,
			status       TEXT NOT NULL,
			mock         BOOLEAN NOT NULL,
			notes        JSONB,
			created_at   BIGINT NOT NULL
		)`)
	if err != nil {
		return err
	}
	_, err = l.db.Exec(`
		CREATE TABLE IF NOT EXISTS payment_verifications (
			id          SERIAL PRIMARY KEY,
			order_id    TEXT NOT NULL,
			payment_id  TEXT NOT NULL,
			verified    BOOLEAN NOT NULL,
			verified_at BIGINT NOT NULL
		)`)
	return err
}

func (l *Ledger) RecordOrder(order *models.PaymentOrder) error {
	var notes []byte
	if order.Notes != nil {
		notes, _ = json.Marshal(order.Notes)
	}
	_, err := l.db.Exec(
		`INSERT INTO payment_orders (order_id, amount_paise, currency, receipt, status, mock, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.AmountPaise, order.Currency, order.Receipt, order.Status, order.Mock, notes, order.CreatedAt)
	return err
}

func (l *Ledger) RecordVerification(orderID, paymentID string, verified bool) error {
	_, err := l.db.Exec(
		`INSERT INTO payment_verifications (order_id, payment_id, verified, verified_at)
		 VALUES ($1, $2, $3, $4)`,
		orderID, paymentID, verified, time.Now().Unix())
	return err
}

func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}
