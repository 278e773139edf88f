// Package mysql contains the MySQL implementation of the remote store.
// Column names follow the remote snake_case convention; translation from
// the domain schema happens in the application's codec, so this adapter
// only maps record fields to columns.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/example/shiftledger/internal/ports/secondary"
)

// RemoteStorage implements secondary.RemoteStore over a remote MySQL
// database. All statements are idempotent upserts or keyed deletes.
type RemoteStorage struct {
	db *sql.DB
}

// New opens the remote connection. The DSN must enable parseTime so
// DATETIME columns scan into time.Time.
func New(dsn string) (*RemoteStorage, error) {
	const op = "adapters.mysql.New"

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RemoteStorage{db: db}, nil
}

// Close releases the connection pool.
func (s *RemoteStorage) Close() error {
	return s.db.Close()
}

const hospitalCols = "id, name, payment_model, fixed_rate, per_patient_rate, fixed_salary, item_rates, color, created_at, updated_at"

// UpsertHospital inserts or updates one hospital row keyed by id.
func (s *RemoteStorage) UpsertHospital(ctx context.Context, userID string, rec *secondary.RemoteHospitalRecord) error {
	const op = "adapters.mysql.UpsertHospital"

	itemRates, err := encodeItemRates(rec.ItemRates)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO hospitals (id, user_id, name, payment_model, fixed_rate, per_patient_rate, fixed_salary, item_rates, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
			name = VALUES(name), payment_model = VALUES(payment_model),
			fixed_rate = VALUES(fixed_rate), per_patient_rate = VALUES(per_patient_rate),
			fixed_salary = VALUES(fixed_salary), item_rates = VALUES(item_rates),
			color = VALUES(color), updated_at = VALUES(updated_at)`,
		rec.ID, userID, rec.Name, rec.PaymentModel, rec.FixedRate, rec.PerPatientRate,
		rec.FixedSalary, itemRates, rec.Color, toDBTime(rec.CreatedAt), toDBTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteHospital removes one hospital row. Shift rows referencing it are
// removed by the remote schema's ON DELETE CASCADE, not by the client.
func (s *RemoteStorage) DeleteHospital(ctx context.Context, userID, id string) error {
	const op = "adapters.mysql.DeleteHospital"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM hospitals WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SelectHospitals retrieves all hospital rows for the user.
func (s *RemoteStorage) SelectHospitals(ctx context.Context, userID string) ([]*secondary.RemoteHospitalRecord, error) {
	const op = "adapters.mysql.SelectHospitals"

	rows, err := s.db.QueryContext(ctx, "SELECT "+hospitalCols+" FROM hospitals WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []*secondary.RemoteHospitalRecord
	for rows.Next() {
		rec, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

const shiftCols = "id, hospital_id, date, start_time, end_time, cases_count, procedures_count, includes_outpatient, notes, custom_rate, item_counts, total_earnings, created_at, updated_at"

// UpsertShift inserts or updates one shift row keyed by id.
func (s *RemoteStorage) UpsertShift(ctx context.Context, userID string, rec *secondary.RemoteShiftRecord) error {
	const op = "adapters.mysql.UpsertShift"

	itemCounts, err := encodeItemCounts(rec.ItemCounts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO shifts (id, user_id, hospital_id, date, start_time, end_time, cases_count, procedures_count, includes_outpatient, notes, custom_rate, item_counts, total_earnings, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
			hospital_id = VALUES(hospital_id), date = VALUES(date),
			start_time = VALUES(start_time), end_time = VALUES(end_time),
			cases_count = VALUES(cases_count), procedures_count = VALUES(procedures_count),
			includes_outpatient = VALUES(includes_outpatient), notes = VALUES(notes),
			custom_rate = VALUES(custom_rate), item_counts = VALUES(item_counts),
			total_earnings = VALUES(total_earnings), updated_at = VALUES(updated_at)`,
		rec.ID, userID, rec.HospitalID, toDBTime(rec.Date), rec.StartTime, rec.EndTime,
		rec.CasesCount, rec.ProceduresCount, rec.IncludesOutpatient, nullString(rec.Notes),
		rec.CustomRate, itemCounts, rec.TotalEarnings, toDBTime(rec.CreatedAt), toDBTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteShift removes one shift row.
func (s *RemoteStorage) DeleteShift(ctx context.Context, userID, id string) error {
	const op = "adapters.mysql.DeleteShift"

	if _, err := s.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SelectShifts retrieves all shift rows for the user.
func (s *RemoteStorage) SelectShifts(ctx context.Context, userID string) ([]*secondary.RemoteShiftRecord, error) {
	const op = "adapters.mysql.SelectShifts"

	rows, err := s.db.QueryContext(ctx, "SELECT "+shiftCols+" FROM shifts WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []*secondary.RemoteShiftRecord
	for rows.Next() {
		rec, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

// UpsertProfile inserts or updates the user's profile row.
func (s *RemoteStorage) UpsertProfile(ctx context.Context, userID string, rec *secondary.RemoteProfileRecord) error {
	const op = "adapters.mysql.UpsertProfile"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, name, title, email, gender)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
			name = VALUES(name), title = VALUES(title), email = VALUES(email), gender = VALUES(gender)`,
		userID, rec.Name, rec.Title, rec.Email, rec.Gender,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SelectProfile retrieves the user's profile row, or (nil, nil) when none
// has been stored.
func (s *RemoteStorage) SelectProfile(ctx context.Context, userID string) (*secondary.RemoteProfileRecord, error) {
	const op = "adapters.mysql.SelectProfile"

	var rec secondary.RemoteProfileRecord
	err := s.db.QueryRowContext(ctx,
		"SELECT name, title, email, gender FROM profiles WHERE user_id = ?", userID,
	).Scan(&rec.Name, &rec.Title, &rec.Email, &rec.Gender)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rec, nil
}

// scanHospital scans a hospital row into a record.
func scanHospital(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RemoteHospitalRecord, error) {
	var (
		fixedSalary sql.NullFloat64
		itemRates   sql.NullString
		color       sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	rec := &secondary.RemoteHospitalRecord{}
	err := scanner.Scan(
		&rec.ID, &rec.Name, &rec.PaymentModel, &rec.FixedRate, &rec.PerPatientRate,
		&fixedSalary, &itemRates, &color, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.FixedSalary = fixedSalary.Float64
	rec.Color = color.String
	rec.CreatedAt = createdAt.Format(time.RFC3339Nano)
	rec.UpdatedAt = updatedAt.Format(time.RFC3339Nano)
	if itemRates.Valid && itemRates.String != "" {
		if err := json.Unmarshal([]byte(itemRates.String), &rec.ItemRates); err != nil {
			return nil, fmt.Errorf("decode item_rates: %w", err)
		}
	}
	return rec, nil
}

// scanShift scans a shift row into a record.
func scanShift(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RemoteShiftRecord, error) {
	var (
		date       time.Time
		notes      sql.NullString
		customRate sql.NullFloat64
		itemCounts sql.NullString
		createdAt  time.Time
		updatedAt  time.Time
	)

	rec := &secondary.RemoteShiftRecord{}
	err := scanner.Scan(
		&rec.ID, &rec.HospitalID, &date, &rec.StartTime, &rec.EndTime,
		&rec.CasesCount, &rec.ProceduresCount, &rec.IncludesOutpatient,
		&notes, &customRate, &itemCounts, &rec.TotalEarnings, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Date = date.Format(time.RFC3339Nano)
	rec.Notes = notes.String
	rec.CustomRate = customRate.Float64
	rec.CreatedAt = createdAt.Format(time.RFC3339Nano)
	rec.UpdatedAt = updatedAt.Format(time.RFC3339Nano)
	if itemCounts.Valid && itemCounts.String != "" {
		if err := json.Unmarshal([]byte(itemCounts.String), &rec.ItemCounts); err != nil {
			return nil, fmt.Errorf("decode item_counts: %w", err)
		}
	}
	return rec, nil
}

func encodeItemRates(items []secondary.ItemRateRecord) (sql.NullString, error) {
	if items == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode item_rates: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func encodeItemCounts(counts map[string]int) (sql.NullString, error) {
	if counts == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode item_counts: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// toDBTime converts the record's RFC 3339 timestamp for a DATETIME column.
// Unparseable values fall back to the zero time rather than failing the
// write; the application codec owns validation.
func toDBTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Ensure RemoteStorage implements the interface
var _ secondary.RemoteStore = (*RemoteStorage)(nil)
