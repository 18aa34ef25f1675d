package scholarships

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	commonerrors "scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/models"
)

var scholarshipColumns = []string{
	"id", "title_en", "title_ar", "university_en", "university_ar",
	"country_en", "country_ar", "deadline", "funding_type",
	"study_levels", "field_of_study",
}

func listActiveQuery() (string, []interface{}, error) {
	return sq.Select(scholarshipColumns...).
		From("scholarships").
		Where(sq.Eq{"is_active": true}).
		OrderBy("deadline ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// PostgresSource reads scholarships from the scholarships table.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) List(ctx context.Context) ([]models.Scholarship, error) {
	query, args, err := listActiveQuery()
	if err != nil {
		return nil, commonerrors.NewScholarshipSourceFailedError(s.Name(), err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(ctx, err)
	}
	defer rows.Close()

	var out []models.Scholarship
	for rows.Next() {
		var (
			sch                    models.Scholarship
			titleAR, universityAR  sql.NullString
			countryAR, fundingType sql.NullString
			levels                 pq.StringArray
		)
		if err := rows.Scan(
			&sch.ID, &sch.Title.EN, &titleAR,
			&sch.University.EN, &universityAR,
			&sch.Country.EN, &countryAR,
			&sch.Deadline, &fundingType,
			&levels, &sch.FieldOfStudy,
		); err != nil {
			return nil, s.wrap(ctx, err)
		}
		sch.Title.AR = titleAR.String
		sch.University.AR = universityAR.String
		sch.Country.AR = countryAR.String
		sch.FundingType = fundingType.String
		sch.StudyLevels = []string(levels)
		out = append(out, sch)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap(ctx, err)
	}
	return out, nil
}

func (s *PostgresSource) wrap(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return commonerrors.NewScholarshipSourceTimeoutError(s.Name())
	}
	if isConnectionError(err) {
		return commonerrors.NewDatabaseConnectionFailedError(err)
	}
	return commonerrors.NewScholarshipSourceFailedError(s.Name(), err)
}

// isConnectionError matches dropped connections and postgres class 08
// (connection exception) errors.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Class() == "08"
}
