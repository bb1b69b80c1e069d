package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	"hr-reports/pkg/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestEmployeeRepository_Integration_BulkInsertRoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	repo := NewEmployeeRepository(testPool, zap.NewNop())
	ctx := context.Background()

	employees := []entities.Employee{
		{EmpNo: 10005, BirthDate: date(1955, 1, 21), FirstName: "Kyoichi",
			LastName: "Maliniak", Gender: "M", HireDate: date(1989, 9, 12)},
		{EmpNo: 10006, BirthDate: date(1953, 4, 20), FirstName: "Anneke",
			LastName: "Preusig", Gender: "F", HireDate: date(1989, 6, 2)},
	}

	n, err := repo.BulkInsert(ctx, employees)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	listed, total, err := repo.GetEmployees(ctx, types.Filter{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, listed, 2)

	// Every attribute must survive the COPY encoding unchanged.
	got := listed[0]
	assert.EqualValues(t, 10005, got.EmpNo)
	assert.Equal(t, "Kyoichi", got.FirstName)
	assert.Equal(t, "Maliniak", got.LastName)
	assert.Equal(t, "M", got.Gender)
	assert.Equal(t, "1955-01-21", got.BirthDate.Format("2006-01-02"))
	assert.Equal(t, "1989-09-12", got.HireDate.Format("2006-01-02"))

	found, err := repo.FindEmployee(ctx, 10006)
	require.NoError(t, err)
	assert.Equal(t, "Anneke", found.FirstName)
	assert.Equal(t, "1989-06-02", found.HireDate.Format("2006-01-02"))
}

func TestTitleRepository_Integration_BulkInsertRoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	ctx := context.Background()

	_, err := NewEmployeeRepository(testPool, zap.NewNop()).BulkInsert(ctx, []entities.Employee{
		{EmpNo: 10005, BirthDate: date(1955, 1, 21), FirstName: "Kyoichi",
			LastName: "Maliniak", Gender: "M", HireDate: date(1989, 9, 12)},
	})
	require.NoError(t, err)

	repo := NewTitleRepository(testPool, zap.NewNop())
	n, err := repo.BulkInsert(ctx, []entities.Title{
		{EmpNo: 10005, Title: "Staff", FromDate: date(1989, 9, 12),
			ToDate: null.TimeFrom(date(1996, 9, 12))},
		{EmpNo: 10005, Title: "Senior Staff", FromDate: date(1996, 9, 12)},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	titles, err := repo.ListByEmployee(ctx, 10005)
	require.NoError(t, err)
	require.Len(t, titles, 2)

	// The closed interval keeps its end date and the open one stays NULL.
	assert.Equal(t, "Staff", titles[0].Title)
	require.True(t, titles[0].ToDate.Valid)
	assert.Equal(t, "1996-09-12", titles[0].ToDate.Time.Format("2006-01-02"))
	assert.Equal(t, "Senior Staff", titles[1].Title)
	assert.False(t, titles[1].ToDate.Valid)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestSalaryRepository_Integration_BulkInsertRoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	ctx := context.Background()

	_, err := NewEmployeeRepository(testPool, zap.NewNop()).BulkInsert(ctx, []entities.Employee{
		{EmpNo: 10005, BirthDate: date(1955, 1, 21), FirstName: "Kyoichi",
			LastName: "Maliniak", Gender: "M", HireDate: date(1989, 9, 12)},
	})
	require.NoError(t, err)

	repo := NewSalaryRepository(testPool, zap.NewNop())
	n, err := repo.BulkInsert(ctx, []entities.Salary{
		{EmpNo: 10005, Salary: 78228, FromDate: date(1989, 9, 12)},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	salaries, err := repo.ListByEmployee(ctx, 10005)
	require.NoError(t, err)
	require.Len(t, salaries, 1)
	assert.EqualValues(t, 78228, salaries[0].Salary)
	assert.Equal(t, "1989-09-12", salaries[0].FromDate.Format("2006-01-02"))
	assert.False(t, salaries[0].ToDate.Valid)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestAssignmentRepository_Integration_BulkInsertRoundTrip(t *testing.T) {
	requireDB(t)
	cleanupTables(t, testPool)
	ctx := context.Background()

	_, err := NewEmployeeRepository(testPool, zap.NewNop()).BulkInsert(ctx, []entities.Employee{
		{EmpNo: 10005, BirthDate: date(1955, 1, 21), FirstName: "Kyoichi",
			LastName: "Maliniak", Gender: "M", HireDate: date(1989, 9, 12)},
	})
	require.NoError(t, err)
	_, err = NewDepartmentRepository(testPool, zap.NewNop()).BulkInsert(ctx, []entities.Department{
		{DeptNo: "d003", DeptName: "Human Resources"},
	})
	require.NoError(t, err)

	repo := NewAssignmentRepository(testPool, zap.NewNop())
	n, err := repo.BulkInsert(ctx, []entities.DeptAssignment{
		{EmpNo: 10005, DeptNo: "d003", FromDate: date(1989, 9, 12)},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	assignments, err := repo.ListByDepartment(ctx, "d003")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.EqualValues(t, 10005, assignments[0].EmpNo)
	assert.False(t, assignments[0].ToDate.Valid)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
