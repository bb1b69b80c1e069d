package seeders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
	apperrors "hr-reports/pkg/errors"
)

const defaultPreviewLimit = 10

// PreviewReport prints the first limit rows of the denormalized report as an
// aligned table. A filtered preview first checks the department exists, so a
// typo is reported instead of an empty table.
func PreviewReport(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger, w io.Writer, department string, limit int) error {
	if limit < 1 {
		limit = defaultPreviewLimit
	}

	filter := entities.ReportFilter{Page: 1, PerPage: limit}
	if department != "" {
		deptRepo := repositories.NewDepartmentRepository(db, logger)
		if _, err := deptRepo.FindDepartmentByName(ctx, department); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				fmt.Fprintf(w, "department %q does not exist\n", department)
				return nil
			}
			return err
		}
		filter.DepartmentName = &department
	}

	rows, total, err := repositories.NewReportRepository(db).GetReport(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMP_NO\tFIRST_NAME\tLAST_NAME\tTITLE\tDEPT_NO\tDEPT_NAME\tFROM_DATE\tSALARY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.EmpNo, r.FirstName, r.LastName, r.Title,
			r.DeptNo, r.DeptName, r.FromDate.Format("2006-01-02"), r.Salary,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d of %d rows\n", len(rows), total)
	return nil
}
