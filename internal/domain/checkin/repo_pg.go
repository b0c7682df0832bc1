package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// -- Health Tracking --

type trackingRepoPG struct{ pool *pgxpool.Pool }

func NewTrackingRepoPG(pool *pgxpool.Pool) TrackingRepository { return &trackingRepoPG{pool: pool} }

const trackingCols = `id, user_id, date, sleep_hours, mood, stress_level, exercise_done,
	exercise_intensity, medications_taken, menstrual_period_date, new_symptoms,
	pain_experienced, pain_location, appetite, bowel_movement, urine_changes,
	water_intake_cups, created_at, updated_at`

func scanTracking(row pgx.Row) (*HealthTracking, error) {
	var t HealthTracking
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.SleepHours, &t.Mood, &t.StressLevel, &t.ExerciseDone,
		&t.ExerciseIntensity, &t.MedicationsTaken, &t.MenstrualPeriodDate, &t.NewSymptoms,
		&t.PainExperienced, &t.PainLocation, &t.Appetite, &t.BowelMovement, &t.UrineChanges,
		&t.WaterIntakeCups, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *trackingRepoPG) Upsert(ctx context.Context, t *HealthTracking) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_tracking (id, user_id, date, sleep_hours, mood, stress_level, exercise_done,
			exercise_intensity, medications_taken, menstrual_period_date, new_symptoms,
			pain_experienced, pain_location, appetite, bowel_movement, urine_changes, water_intake_cups)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (user_id, date) DO UPDATE SET
			sleep_hours=EXCLUDED.sleep_hours, mood=EXCLUDED.mood, stress_level=EXCLUDED.stress_level,
			exercise_done=EXCLUDED.exercise_done, exercise_intensity=EXCLUDED.exercise_intensity,
			medications_taken=EXCLUDED.medications_taken, menstrual_period_date=EXCLUDED.menstrual_period_date,
			new_symptoms=EXCLUDED.new_symptoms, pain_experienced=EXCLUDED.pain_experienced,
			pain_location=EXCLUDED.pain_location, appetite=EXCLUDED.appetite,
			bowel_movement=EXCLUDED.bowel_movement, urine_changes=EXCLUDED.urine_changes,
			water_intake_cups=EXCLUDED.water_intake_cups, updated_at=NOW()`,
		t.ID, t.UserID, t.Date, t.SleepHours, t.Mood, t.StressLevel, t.ExerciseDone,
		t.ExerciseIntensity, t.MedicationsTaken, t.MenstrualPeriodDate, t.NewSymptoms,
		t.PainExperienced, t.PainLocation, t.Appetite, t.BowelMovement, t.UrineChanges, t.WaterIntakeCups)
	return err
}

func (r *trackingRepoPG) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*HealthTracking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+trackingCols+` FROM health_tracking
		WHERE user_id = $1 AND date >= $2 ORDER BY date DESC`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*HealthTracking
	for rows.Next() {
		t, err := scanTracking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *trackingRepoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthTracking, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_tracking WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+trackingCols+` FROM health_tracking
		WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HealthTracking
	for rows.Next() {
		t, err := scanTracking(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, rows.Err()
}

// -- Daily Questions --

type questionRepoPG struct{ pool *pgxpool.Pool }

func NewQuestionRepoPG(pool *pgxpool.Pool) QuestionRepository { return &questionRepoPG{pool: pool} }

const questionCols = `id, user_id, checkin_type, date, questions_shown, questions_answered, created_at`

func (r *questionRepoPG) Create(ctx context.Context, q *DailyQuestion) error {
	q.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_questions (id, user_id, checkin_type, date, questions_shown, questions_answered)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		q.ID, q.UserID, q.CheckinType, q.Date, q.QuestionsShown, q.QuestionsAnswered)
	return err
}

func (r *questionRepoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*DailyQuestion, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM daily_questions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionCols+` FROM daily_questions
		WHERE user_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*DailyQuestion
	for rows.Next() {
		var q DailyQuestion
		if err := rows.Scan(&q.ID, &q.UserID, &q.CheckinType, &q.Date, &q.QuestionsShown, &q.QuestionsAnswered, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &q)
	}
	return items, total, rows.Err()
}

// -- Weekly Check-ins --

type weeklyRepoPG struct{ pool *pgxpool.Pool }

func NewWeeklyRepoPG(pool *pgxpool.Pool) WeeklyRepository { return &weeklyRepoPG{pool: pool} }

const weeklyCols = `id, user_id, week_start_date, average_sleep_hours, exercise_frequency_per_week,
	stress_level, fruit_vegetable_frequency, smoking_drinking_frequency, lifestyle_changes,
	family_history_updates, completed_at, created_at`

func (r *weeklyRepoPG) Upsert(ctx context.Context, w *WeeklyCheckin) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO weekly_checkins (id, user_id, week_start_date, average_sleep_hours,
			exercise_frequency_per_week, stress_level, fruit_vegetable_frequency,
			smoking_drinking_frequency, lifestyle_changes, family_history_updates, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			average_sleep_hours=EXCLUDED.average_sleep_hours,
			exercise_frequency_per_week=EXCLUDED.exercise_frequency_per_week,
			stress_level=EXCLUDED.stress_level,
			fruit_vegetable_frequency=EXCLUDED.fruit_vegetable_frequency,
			smoking_drinking_frequency=EXCLUDED.smoking_drinking_frequency,
			lifestyle_changes=EXCLUDED.lifestyle_changes,
			family_history_updates=EXCLUDED.family_history_updates,
			completed_at=EXCLUDED.completed_at`,
		w.ID, w.UserID, w.WeekStartDate, w.AverageSleepHours,
		w.ExerciseFrequencyPerWeek, w.StressLevel, w.FruitVegetableFrequency,
		w.SmokingDrinkingFrequency, w.LifestyleChanges, w.FamilyHistoryUpdates, w.CompletedAt)
	return err
}

func (r *weeklyRepoPG) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*WeeklyCheckin, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM weekly_checkins WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+weeklyCols+` FROM weekly_checkins
		WHERE user_id = $1 ORDER BY week_start_date DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*WeeklyCheckin
	for rows.Next() {
		var w WeeklyCheckin
		if err := rows.Scan(&w.ID, &w.UserID, &w.WeekStartDate, &w.AverageSleepHours,
			&w.ExerciseFrequencyPerWeek, &w.StressLevel, &w.FruitVegetableFrequency,
			&w.SmokingDrinkingFrequency, &w.LifestyleChanges, &w.FamilyHistoryUpdates,
			&w.CompletedAt, &w.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &w)
	}
	return items, total, rows.Err()
}
