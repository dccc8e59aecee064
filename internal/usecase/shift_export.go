package usecase

import (
	"context"
	"fmt"
	"io"

	"turnos-api/internal/delivery/dto"
	"turnos-api/internal/domain/entity"

	"github.com/xuri/excelize/v2"
)

const (
	ExportSheetName = "Turnos"

	// Rows fetched per query while walking the filtered shifts
	exportBatchSize = 500
)

var exportHeader = []interface{}{
	"ID", "Date", "Start", "End", "Duration (min)", "Reason",
	"Status", "Analyst ID", "Project ID", "Notes", "Active",
}

// Export writes every shift matching query, in list order and without
// paging, as an XLSX workbook to w.
func (u *shiftUsecase) Export(ctx context.Context, query *dto.ShiftFilterQuery, w io.Writer) error {
	q := NormalizeFilter(query)
	filter := toShiftFilter(&q)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return fmt.Errorf("prepare workbook: %w", err)
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	offset := 0
	for {
		shifts, total, err := u.shiftRepo.FindAll(ctx, u.db, filter, exportBatchSize, offset)
		if err != nil {
			u.log.Warnf("Failed to export shifts at offset %d: %+v", offset, err)
			return fmt.Errorf("%w: export shifts: %w", ErrOperationFailed, err)
		}

		for i := range shifts {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("locate row %d: %w", row, err)
			}
			values := exportRow(&shifts[i])
			if err := f.SetSheetRow(ExportSheetName, cell, &values); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}

		offset += len(shifts)
		if len(shifts) == 0 || int64(offset) >= total {
			break
		}

		// Respect context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	u.log.Infof("Exported %d shifts", row-2)

	return f.Write(w)
}

func exportRow(s *entity.Shift) []interface{} {
	var projectID interface{} = ""
	if s.ProjectID != nil {
		projectID = *s.ProjectID
	}
	notes := ""
	if s.Notes != nil {
		notes = *s.Notes
	}
	return []interface{}{
		s.ID,
		s.Date.Format(entity.DateLayout),
		s.StartTime,
		s.EndTime,
		s.DurationMinutes,
		s.Reason,
		string(s.Status),
		s.AnalystID,
		projectID,
		notes,
		s.IsActive,
	}
}
