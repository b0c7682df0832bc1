package medication

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const medicationCols = `id, user_id, medication_name, dosage, frequency, is_prescribed,
	start_date, end_date, notes, created_at, updated_at`

func scanMedication(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.MedicationName, &m.Dosage, &m.Frequency, &m.IsPrescribed,
		&m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medications (id, user_id, medication_name, dosage, frequency, is_prescribed,
			start_date, end_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		m.ID, m.UserID, m.MedicationName, m.Dosage, m.Frequency, m.IsPrescribed,
		m.StartDate, m.EndDate, m.Notes)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	return scanMedication(r.pool.QueryRow(ctx,
		`SELECT `+medicationCols+` FROM medications WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) Update(ctx context.Context, m *Medication) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medications SET medication_name=$3, dosage=$4, frequency=$5, is_prescribed=$6,
			start_date=$7, end_date=$8, notes=$9, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		m.ID, m.UserID, m.MedicationName, m.Dosage, m.Frequency, m.IsPrescribed,
		m.StartDate, m.EndDate, m.Notes)
	return err
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *repoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+medicationCols+` FROM medications
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListActive(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+medicationCols+` FROM medications
		WHERE user_id = $1 AND end_date IS NULL ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
