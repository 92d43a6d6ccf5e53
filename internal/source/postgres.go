package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tmurov/reqdesk/internal/config"
	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

const (
	fetchRequisitionsSQL = `SELECT id, number, department, status, req_date, items, total, requested_by, approved_by
		FROM requisitions
		ORDER BY req_date;`

	updateRequisitionStatusSQL = `UPDATE requisitions
		SET status = $1
		WHERE id = $2;`
)

type postgresRecordSource struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewPostgresRecordSource constructs a [RecordSource] reading the warehouse
// PostgreSQL database directly via the pgx stdlib driver. The connection is
// verified with a ping bounded by cfg.RequestTimeout.
func NewPostgresRecordSource(ctx context.Context, cfg config.Source, log *logger.Logger) (RecordSource, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open remote requisition database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping remote requisition database: %w: %w", ErrConnectivity, err)
	}

	return &postgresRecordSource{db: db, logger: log}, nil
}

// FetchAll implements [RecordSource]. Rows whose columns cannot be scanned or
// mapped are logged and skipped; query-level failures wrap [ErrConnectivity].
func (p *postgresRecordSource) FetchAll(ctx context.Context) (models.Snapshot, error) {
	rows, err := p.db.QueryContext(ctx, fetchRequisitionsSQL)
	if err != nil {
		p.logQueryFailure("postgresRecordSource.FetchAll", err)
		return nil, fmt.Errorf("fetch requisitions: %w: %w", ErrConnectivity, err)
	}
	defer rows.Close()

	snapshot := make(models.Snapshot, 0, 50)
	for rows.Next() {
		req, scanErr := scanRequisition(rows)
		if scanErr != nil {
			p.logger.Warn().Err(scanErr).
				Str("func", "postgresRecordSource.FetchAll").
				Msg("requisition row failed scanning, skipping")
			continue
		}
		snapshot = append(snapshot, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch requisitions: %w: %w", ErrConnectivity, err)
	}

	return snapshot, nil
}

// UpdateStatus implements [RecordSource].
func (p *postgresRecordSource) UpdateStatus(ctx context.Context, recordID string, status models.Status) error {
	if _, err := p.db.ExecContext(ctx, updateRequisitionStatusSQL, string(status), recordID); err != nil {
		p.logQueryFailure("postgresRecordSource.UpdateStatus", err)
		return fmt.Errorf("update status of %s: %w: %w", recordID, ErrMutation, err)
	}
	return nil
}

// scanRequisition maps one database row into a typed Requisition with
// explicit defaults for NULLable columns. The items column holds a JSON
// array; an unreadable payload degrades to an empty item list rather than
// dropping the record.
func scanRequisition(rows *sql.Rows) (models.Requisition, error) {
	var (
		req         models.Requisition
		number      sql.NullString
		department  sql.NullString
		status      sql.NullString
		itemsJSON   sql.NullString
		total       sql.NullFloat64
		requestedBy sql.NullString
		approvedBy  sql.NullString
	)

	if err := rows.Scan(&req.ID, &number, &department, &status, &req.Date,
		&itemsJSON, &total, &requestedBy, &approvedBy); err != nil {
		return models.Requisition{}, fmt.Errorf("%w: %w", ErrRowInvalid, err)
	}
	if req.ID == "" {
		return models.Requisition{}, fmt.Errorf("%w: missing id", ErrRowInvalid)
	}

	req.Number = number.String
	req.Department = department.String
	req.Status = models.ParseStatus(status.String)
	req.Total = total.Float64
	req.RequestedBy = requestedBy.String
	req.ApprovedBy = approvedBy.String

	if itemsJSON.Valid && itemsJSON.String != "" {
		if err := json.Unmarshal([]byte(itemsJSON.String), &req.Items); err != nil {
			req.Items = nil
		}
	}

	return req, nil
}

// logQueryFailure distinguishes connection-class failures from query
// rejections in the log stream; both surface to callers as the same sentinel.
func (p *postgresRecordSource) logQueryFailure(fn string, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		event := p.logger.Err(err).Str("func", fn).Str("sqlstate", pgErr.Code)
		if pgerrcode.IsConnectionException(pgErr.Code) {
			event.Msg("remote requisition database unreachable")
		} else {
			event.Msg("remote requisition database rejected query")
		}
		return
	}

	p.logger.Err(err).Str("func", fn).Msg("remote requisition database call failed")
}
