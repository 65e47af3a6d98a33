package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// SaveCVFile saves CV file metadata and parsed text to database
func (db *DB) SaveCVFile(ctx context.Context, filename, filePath, fileType, parsedText string, fileSize int64) (int64, error) {
	var cvID int64
	query := `
        INSERT INTO cv_files (filename, file_path, file_type, file_size, parsed_text, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id
    `
	err := db.connection.QueryRowContext(ctx, query,
		filename, filePath, fileType, fileSize, parsedText,
	).Scan(&cvID)

	return cvID, err
}

// GetCVText returns the parsed text of a stored CV file.
func (db *DB) GetCVText(ctx context.Context, cvID int64) (string, error) {
	var text sql.NullString
	query := `SELECT parsed_text FROM cv_files WHERE id = $1`
	if err := db.connection.QueryRowContext(ctx, query, cvID).Scan(&text); err != nil {
		return "", err
	}
	return text.String, nil
}

// ListCVFiles returns metadata for stored CVs, most recent first.
func (db *DB) ListCVFiles(ctx context.Context, limit int) ([]CVFileInfo, error) {
	query := `
        SELECT id, filename, file_type, file_size, uploaded_at
        FROM cv_files
        ORDER BY uploaded_at DESC
        LIMIT $1
    `
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []CVFileInfo
	for rows.Next() {
		var f CVFileInfo
		if err := rows.Scan(&f.ID, &f.Filename, &f.FileType, &f.FileSize, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// SavePosition inserts one canonical employment record for a CV.
func (db *DB) SavePosition(ctx context.Context, p *StoredPosition) (int64, error) {
	var id int64
	query := `
        INSERT INTO positions (cv_file_id, job_title, employer, municipality, region,
                               start_date, end_date, start_year, start_month,
                               end_year, end_month, is_current, description,
                               employment_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
        RETURNING id
    `
	err := db.connection.QueryRowContext(ctx, query,
		p.CVFileID, p.JobTitle, p.Employer, p.Municipality, p.Region,
		p.StartDate, p.EndDate, p.StartYear, p.StartMonth,
		p.EndYear, p.EndMonth, p.IsCurrent, p.Description,
		p.EmploymentType,
	).Scan(&id)
	return id, err
}

// DeletePositionsForCV removes a CV's positions before re-extraction.
func (db *DB) DeletePositionsForCV(ctx context.Context, cvID int64) error {
	_, err := db.connection.ExecContext(ctx, `DELETE FROM positions WHERE cv_file_id = $1`, cvID)
	return err
}

// ListPositionsForCV returns a CV's stored positions in extraction order.
func (db *DB) ListPositionsForCV(ctx context.Context, cvID int64) ([]*StoredPosition, error) {
	query := `
        SELECT id, cv_file_id, job_title, employer, municipality, region,
               start_date, end_date, start_year, start_month,
               end_year, end_month, is_current, description, employment_type
        FROM positions
        WHERE cv_file_id = $1
        ORDER BY id
    `
	rows, err := db.connection.QueryContext(ctx, query, cvID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPositions(rows)
}

// SearchPositions returns stored positions matching the criteria using
// ILIKE partial matches.
func (db *DB) SearchPositions(ctx context.Context, criteria *PositionCriteria) ([]*StoredPosition, error) {
	base := `
        SELECT id, cv_file_id, job_title, employer, municipality, region,
               start_date, end_date, start_year, start_month,
               end_year, end_month, is_current, description, employment_type
        FROM positions
    `
	var where []string
	var args []interface{}
	i := 1

	if criteria == nil {
		criteria = &PositionCriteria{}
	}

	if criteria.Employer != "" {
		where = append(where, fmt.Sprintf("employer ILIKE $%d", i))
		args = append(args, "%"+criteria.Employer+"%")
		i++
	}
	if criteria.JobTitle != "" {
		where = append(where, fmt.Sprintf("job_title ILIKE $%d", i))
		args = append(args, "%"+criteria.JobTitle+"%")
		i++
	}
	if criteria.Location != "" {
		where = append(where, fmt.Sprintf("(municipality ILIKE $%d OR region ILIKE $%d)", i, i+1))
		args = append(args, "%"+criteria.Location+"%", "%"+criteria.Location+"%")
		i += 2
	}

	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " ORDER BY id DESC LIMIT 100"

	rows, err := db.connection.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPositions(rows)
}

func scanPositions(rows *sql.Rows) ([]*StoredPosition, error) {
	var res []*StoredPosition
	for rows.Next() {
		p := &StoredPosition{}
		if err := rows.Scan(&p.ID, &p.CVFileID, &p.JobTitle, &p.Employer,
			&p.Municipality, &p.Region, &p.StartDate, &p.EndDate,
			&p.StartYear, &p.StartMonth, &p.EndYear, &p.EndMonth,
			&p.IsCurrent, &p.Description, &p.EmploymentType); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// PopularEmployers returns the employers appearing on the most CVs.
func (db *DB) PopularEmployers(ctx context.Context, limit int) ([]EmployerStat, error) {
	query := `
        SELECT employer, COUNT(DISTINCT cv_file_id) AS cv_count
        FROM positions
        WHERE employer <> ''
        GROUP BY employer
        ORDER BY cv_count DESC, employer
        LIMIT $1
    `
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []EmployerStat
	for rows.Next() {
		var s EmployerStat
		if err := rows.Scan(&s.Employer, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// UpdateCVSummary stores the derived experience summary on the CV row.
func (db *DB) UpdateCVSummary(ctx context.Context, cvID int64, totalMonths int, currentRole string) error {
	query := `
        UPDATE cv_files
        SET total_experience_months = $2, current_job_role = $3
        WHERE id = $1
    `
	_, err := db.connection.ExecContext(ctx, query, cvID, totalMonths, currentRole)
	return err
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}
