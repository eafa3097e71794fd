package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
)

const sessionsTable = "sessions"

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type sessionRow struct {
	Title         string    `db:"title"`
	Meeting       []byte    `db:"meeting"`
	Attendees     []byte    `db:"attendees"`
	Capture       []byte    `db:"capture"`
	LiveConnector []byte    `db:"live_connector"`
	ExpiresAt     time.Time `db:"expires_at"`
}

func (r *Repository) Get(ctx context.Context, title string) (*model.Session, error) {
	query, args, err := selectSessions().
		Where(sq.Eq{"title": title}).
		Where(sq.Gt{"expires_at": time.Now()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row sessionRow
	err = r.connection.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", title, err)
	}

	return fromRow(row)
}

func (r *Repository) Put(ctx context.Context, session *model.Session) error {
	values, err := toValues(session)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(sessionsTable).
		Columns("title", "meeting", "attendees", "capture", "live_connector", "expires_at").
		Values(values...).
		Suffix(`ON CONFLICT (title) DO UPDATE SET
			meeting = EXCLUDED.meeting,
			attendees = EXCLUDED.attendees,
			capture = EXCLUDED.capture,
			live_connector = EXCLUDED.live_connector,
			expires_at = EXCLUDED.expires_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.Title, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, title string) error {
	query, args, err := sq.Delete(sessionsTable).
		Where(sq.Eq{"title": title}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", title, err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context, limit int) (model.SessionList, error) {
	queryBuilder := selectSessions().
		Where(sq.Gt{"expires_at": time.Now()}).
		OrderBy("title")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []sessionRow
	err = r.connection.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make(model.SessionList, 0, len(rows))
	for _, row := range rows {
		session, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	return sessions, nil
}

func (r *Repository) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := sq.Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged sessions: %w", err)
	}

	return int(purged), nil
}

func selectSessions() sq.SelectBuilder {
	return sq.Select(
		"title",
		"meeting",
		"attendees",
		"capture",
		"live_connector",
		"expires_at",
	).From(sessionsTable)
}

// toValues encodes the jsonb columns as strings, lib/pq sends []byte as bytea.
func toValues(session *model.Session) ([]interface{}, error) {
	meeting, err := json.Marshal(session.Meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal meeting: %w", err)
	}

	attendees := session.Attendees
	if attendees == nil {
		attendees = model.Roster{}
	}
	roster, err := json.Marshal(attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attendees: %w", err)
	}

	capture, err := pipelineValue(session.Capture)
	if err != nil {
		return nil, err
	}
	liveConnector, err := pipelineValue(session.LiveConnector)
	if err != nil {
		return nil, err
	}

	return []interface{}{session.Title, string(meeting), string(roster), capture, liveConnector, session.ExpiresAt}, nil
}

func pipelineValue(p *model.Pipeline) (interface{}, error) {
	if p == nil {
		return nil, nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pipeline: %w", err)
	}

	return string(data), nil
}

func fromRow(row sessionRow) (*model.Session, error) {
	session := &model.Session{
		Title:     row.Title,
		ExpiresAt: row.ExpiresAt,
	}

	if err := json.Unmarshal(row.Meeting, &session.Meeting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meeting for %s: %w", row.Title, err)
	}
	if len(row.Attendees) > 0 {
		if err := json.Unmarshal(row.Attendees, &session.Attendees); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attendees for %s: %w", row.Title, err)
		}
	}
	if len(row.Capture) > 0 {
		session.Capture = &model.Pipeline{}
		if err := json.Unmarshal(row.Capture, session.Capture); err != nil {
			return nil, fmt.Errorf("failed to unmarshal capture pipeline for %s: %w", row.Title, err)
		}
	}
	if len(row.LiveConnector) > 0 {
		session.LiveConnector = &model.Pipeline{}
		if err := json.Unmarshal(row.LiveConnector, session.LiveConnector); err != nil {
			return nil, fmt.Errorf("failed to unmarshal live connector pipeline for %s: %w", row.Title, err)
		}
	}

	return session, nil
}
