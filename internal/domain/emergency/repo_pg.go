package emergency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const checkinCols = `id, user_id, symptom_description, severity_level, symptom_start_time,
	getting_worse, medication_taken, wants_doctor_connection, ai_assessment, urgency_score, created_at`

func scanCheckin(row pgx.Row) (*Checkin, error) {
	var c Checkin
	err := row.Scan(&c.ID, &c.UserID, &c.SymptomDescription, &c.SeverityLevel, &c.SymptomStartTime,
		&c.GettingWorse, &c.MedicationTaken, &c.WantsDoctorConnection, &c.AIAssessment, &c.UrgencyScore, &c.CreatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Checkin) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO emergency_checkins (id, user_id, symptom_description, severity_level,
			symptom_start_time, getting_worse, medication_taken, wants_doctor_connection,
			ai_assessment, urgency_score)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.UserID, c.SymptomDescription, c.SeverityLevel,
		c.SymptomStartTime, c.GettingWorse, c.MedicationTaken, c.WantsDoctorConnection,
		c.AIAssessment, c.UrgencyScore)
	return err
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Checkin, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM emergency_checkins WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+checkinCols+` FROM emergency_checkins
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Checkin
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*Checkin, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+checkinCols+` FROM emergency_checkins
		WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at DESC LIMIT $3`, userID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Checkin
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
