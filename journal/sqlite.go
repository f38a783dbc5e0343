package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rustyeddy/intraday/calc"
	"go.uber.org/zap"
)

type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// a single connection keeps :memory: databases and seq assignment consistent
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db, log: log.With(zap.String("store", "sqlite"), zap.String("path", path))}, nil
}

func (j *SQLite) Append(ctx context.Context, e Entry) (Entry, error) {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, err
	}
	defer tx.Rollback()

	var last int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM entries`).Scan(&last); err != nil {
		return Entry{}, err
	}
	e = assignSeq(e, last)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Seq, e.CreatedAt.UTC(), e.Stock, string(e.Direction), e.EntryPrice, e.Quantity,
		nullPct(e.StopLossPercent), nullPct(e.TargetPercent),
		e.StopLossPrice, e.TargetPrice, e.PositionValue, e.RiskRewardRatio,
		e.ExitPrice, e.GrossPnl, e.NetPnl, e.TotalCharges, e.PnlPercent,
		e.Charges.Brokerage, e.Charges.SecuritiesTransactionTax, e.Charges.GoodsAndServicesTax,
		e.Charges.StampDuty, e.Charges.ExchangeFee,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, err
	}

	j.log.Debug("entry appended", zap.String("id", e.ID), zap.Int64("seq", e.Seq), zap.String("stock", e.Stock))
	return e, nil
}

func (j *SQLite) List(ctx context.Context) ([]Entry, error) {
	return j.query(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY seq ASC`)
}

// Get returns a single entry by ID.
func (j *SQLite) Get(ctx context.Context, entryID string) (Entry, error) {
	row := j.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, entryID)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, entryID)
		}
		return Entry{}, err
	}
	return e, nil
}

// ListCreatedBetween returns entries whose created_at is within [start, end).
func (j *SQLite) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]Entry, error) {
	return j.query(ctx, `
		SELECT `+entryColumns+` FROM entries
		WHERE created_at >= ? AND created_at < ?
		ORDER BY seq ASC`, start.UTC(), end.UTC())
}

func (j *SQLite) Clear(ctx context.Context) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	j.log.Info("history cleared", zap.Int64("removed", n))
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func (j *SQLite) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e         Entry
		direction string
		sl, tp    sql.NullFloat64
	)
	err := s.Scan(
		&e.ID, &e.Seq, &e.CreatedAt, &e.Stock, &direction, &e.EntryPrice, &e.Quantity,
		&sl, &tp, &e.StopLossPrice, &e.TargetPrice, &e.PositionValue, &e.RiskRewardRatio,
		&e.ExitPrice, &e.GrossPnl, &e.NetPnl, &e.TotalCharges, &e.PnlPercent,
		&e.Charges.Brokerage, &e.Charges.SecuritiesTransactionTax, &e.Charges.GoodsAndServicesTax,
		&e.Charges.StampDuty, &e.Charges.ExchangeFee,
	)
	if err != nil {
		return Entry{}, err
	}
	e.Direction = calc.Direction(direction)
	e.StopLossPercent = fromNull(sl)
	e.TargetPercent = fromNull(tp)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

func nullPct(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func fromNull(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
