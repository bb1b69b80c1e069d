package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
)

var testPool *pgxpool.Pool

// TestMain connects to the test database named by TEST_DATABASE_URL and
// applies the schema. Without the variable the integration tests skip.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), testDbUrl)
		if err != nil {
			log.Fatalf("connecting to the test database: %v", err)
		}
		applySchema(testPool)
	}

	// os.Exit skips deferred calls, so the pool is closed by hand.
	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("applying schema: %v", err)
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL is not set")
	}
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE dept_emp, salaries, titles, departments, employees RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)
}

// seedReferenceData loads the scenario the report behavior is pinned to:
// employee 10005 with two concurrent titles, one salary row and one
// department assignment, plus employee 10006 who has a title and an
// assignment but no salary row.
func seedReferenceData(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	exec := func(sql string, args ...any) {
		t.Helper()
		_, err := pool.Exec(ctx, sql, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO employees (emp_no, birth_date, first_name, last_name, gender, hire_date)
	      VALUES (10005, '1955-01-21', 'Kyoichi', 'Maliniak', 'M', '1989-09-12'),
	             (10006, '1953-04-20', 'Anneke', 'Preusig', 'F', '1989-06-02')`)
	exec(`INSERT INTO departments (dept_no, dept_name)
	      VALUES ('d003', 'Human Resources'), ('d005', 'Development')`)
	exec(`INSERT INTO titles (emp_no, title, from_date, to_date)
	      VALUES (10005, 'Senior Staff', '1996-09-12', NULL),
	             (10005, 'Staff', '1989-09-12', '1996-09-12'),
	             (10006, 'Senior Engineer', '1990-08-05', NULL)`)
	exec(`INSERT INTO salaries (emp_no, salary, from_date, to_date)
	      VALUES (10005, 78228, '1989-09-12', '1990-09-12')`)
	exec(`INSERT INTO dept_emp (emp_no, dept_no, from_date, to_date)
	      VALUES (10005, 'd003', '1989-09-12', NULL),
	             (10006, 'd005', '1990-08-05', NULL)`)
}

func TestReportRepository_Integration_UnfilteredJoin(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	seedReferenceData(t, testPool)
	repo := NewReportRepository(testPool)

	rows, total, err := repo.GetReport(context.Background(), entities.ReportFilter{})
	require.NoError(t, err)

	// Employee 10006 has no salary row, so the inner join drops them, and
	// 10005 expands into one row per title.
	require.EqualValues(t, 2, total)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.EqualValues(t, 10005, row.EmpNo)
		assert.Equal(t, "Kyoichi", row.FirstName)
		assert.Equal(t, "Maliniak", row.LastName)
		assert.Equal(t, "d003", row.DeptNo)
		assert.Equal(t, "Human Resources", row.DeptName)
		assert.Equal(t, "1989-09-12", row.FromDate.Format("2006-01-02"))
		assert.EqualValues(t, 78228, row.Salary)
	}
	assert.Equal(t, "Senior Staff", rows[0].Title)
	assert.Equal(t, "Staff", rows[1].Title)
}

func TestReportRepository_Integration_DepartmentFilter(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	seedReferenceData(t, testPool)
	repo := NewReportRepository(testPool)

	dept := "Human Resources"
	rows, total, err := repo.GetReport(context.Background(), entities.ReportFilter{DepartmentName: &dept})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, row := range rows {
		assert.Equal(t, "Human Resources", row.DeptName)
	}
}

func TestReportRepository_Integration_UnknownDepartmentIsEmpty(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	seedReferenceData(t, testPool)
	repo := NewReportRepository(testPool)

	dept := "Marketing"
	rows, total, err := repo.GetReport(context.Background(), entities.ReportFilter{DepartmentName: &dept})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, rows)
}

func TestReportRepository_Integration_FilterIsCaseSensitive(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	seedReferenceData(t, testPool)
	repo := NewReportRepository(testPool)

	dept := "human resources"
	rows, total, err := repo.GetReport(context.Background(), entities.ReportFilter{DepartmentName: &dept})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, rows)
}

func TestTitleRepository_Integration_RoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	seedReferenceData(t, testPool)
	repo := NewTitleRepository(testPool, zap.NewNop())

	titles, err := repo.ListByEmployee(context.Background(), 10005)
	require.NoError(t, err)
	require.Len(t, titles, 2)

	assert.Equal(t, "Staff", titles[0].Title)
	assert.Equal(t, "1989-09-12", titles[0].FromDate.Format("2006-01-02"))
	require.True(t, titles[0].ToDate.Valid)
	assert.Equal(t, "1996-09-12", titles[0].ToDate.Time.Format("2006-01-02"))

	assert.Equal(t, "Senior Staff", titles[1].Title)
	assert.False(t, titles[1].ToDate.Valid)
}

func TestReportRepository_Integration_QueryErrorClass(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)

	// A predicate referencing a column absent from the schema must surface
	// as a QueryError.
	_, err := testPool.Exec(context.Background(), `SELECT no_such_column FROM employees`)
	require.Error(t, err)

	var queryErr *apperrors.QueryError
	assert.ErrorAs(t, apperrors.Classify(err), &queryErr)
}
