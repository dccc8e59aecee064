package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"turnos-api/internal/converter"
	"turnos-api/internal/delivery/dto"
	"turnos-api/internal/domain/entity"
	"turnos-api/internal/domain/repository"
	"turnos-api/internal/infrastructure/database"
	"turnos-api/internal/metrics"
	"turnos-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ShiftUsecase interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	List(ctx context.Context, query *dto.ShiftFilterQuery) (*dto.ShiftListResponse, error)
	Get(ctx context.Context, shiftID int) (*dto.ShiftResponse, error)
	Export(ctx context.Context, query *dto.ShiftFilterQuery, w io.Writer) error
}

type shiftUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	shiftRepo    repository.ShiftRepository
	analystRepo  repository.AnalystRepository
	projectRepo  repository.ProjectRepository
	auditService service.AuditService
	listCache    service.ShiftListCache
}

func NewShiftUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	shiftRepo repository.ShiftRepository,
	analystRepo repository.AnalystRepository,
	projectRepo repository.ProjectRepository,
	auditService service.AuditService,
	listCache service.ShiftListCache,
) ShiftUsecase {
	return &shiftUsecase{
		db:           db,
		log:          log,
		shiftRepo:    shiftRepo,
		analystRepo:  analystRepo,
		projectRepo:  projectRepo,
		auditService: auditService,
		listCache:    listCache,
	}
}

// Create validates req against every shift rule and persists it only when no
// rule is violated. Violations come back together as a *ValidationError.
func (u *shiftUsecase) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	verr := newValidationError(MsgCreateShiftFailed)

	// 1-2) Analyst and project
	if err := u.checkReferences(ctx, req.AnalystID, req.ProjectID, verr); err != nil {
		return nil, err
	}

	// Request shape, for callers that skipped the handler's validator
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		verr.add(InvalidFormat, MsgInvalidDate)
	}
	start, errStart := entity.ParseClock(req.StartTime)
	if errStart != nil {
		verr.add(InvalidFormat, MsgInvalidStartTime)
	}
	end, errEnd := entity.ParseClock(req.EndTime)
	if errEnd != nil {
		verr.add(InvalidFormat, MsgInvalidEndTime)
	}
	if strings.TrimSpace(req.Reason) == "" {
		verr.add(InvalidFormat, MsgReasonRequired)
	}

	status := req.Status
	if status == "" {
		status = entity.ShiftStatusPending
	}
	if !status.IsValid() {
		verr.add(InvalidFormat, MsgInvalidStatus)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	// 3-4) Time range and duration. A reversed range is reported once; the
	// duration check still catches ranges shorter than a whole minute.
	var duration int
	if errStart == nil && errEnd == nil {
		if end <= start {
			verr.add(InvalidTimeRange, MsgEndNotAfterStart)
		} else {
			duration = int((end - start) / time.Minute)
			if duration <= 0 {
				verr.add(InvalidDuration, MsgInvalidDuration)
			}
		}
	}

	// 5) Status
	if status == entity.ShiftStatusCancelled && active {
		verr.add(InconsistentStatus, MsgCancelledMustBeActive)
	}

	if !verr.empty() {
		recordViolations(verr)
		return nil, verr
	}

	shift := &entity.Shift{
		Date:            entity.DateOnly(date),
		StartTime:       entity.FormatClock(start),
		EndTime:         entity.FormatClock(end),
		DurationMinutes: duration,
		Reason:          req.Reason,
		Status:          status,
		AnalystID:       req.AnalystID,
		ProjectID:       req.ProjectID,
		Notes:           req.Notes,
		IsActive:        active,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.shiftRepo.Create(ctx, tx, shift); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionShiftCreate, shift.TableName(), shift.ID, converter.ShiftToResponse(shift))
	})
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			// A reference disappeared after the pre-check.
			gone := newValidationError(MsgCreateShiftFailed)
			if checkErr := u.checkReferences(ctx, req.AnalystID, req.ProjectID, gone); checkErr == nil && !gone.empty() {
				recordViolations(gone)
				return nil, gone
			}
		}
		u.log.Warnf("Failed to create shift: %+v", err)
		return nil, fmt.Errorf("%w: create shift: %w", ErrOperationFailed, err)
	}

	u.listCache.Invalidate(ctx)
	metrics.ShiftsCreatedTotal.Inc()
	u.log.WithFields(logrus.Fields{
		"shift_id":   shift.ID,
		"analyst_id": shift.AnalystID,
		"status":     shift.Status,
	}).Info("Shift created")

	return converter.ShiftToResponse(shift), nil
}

// checkReferences looks the analyst and, when given, the project up
// concurrently and records their violations in verr, analyst first.
// A non-nil error means storage failed.
func (u *shiftUsecase) checkReferences(ctx context.Context, analystID int, projectID *int, verr *ValidationError) error {
	var (
		analyst *entity.Analyst
		project *entity.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analyst, err = u.analystRepo.FindByID(gctx, u.db, analystID)
		return err
	})
	if projectID != nil {
		g.Go(func() error {
			var err error
			project, err = u.projectRepo.FindByID(gctx, u.db, *projectID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to look up shift references: %+v", err)
		return fmt.Errorf("%w: look up references: %w", ErrOperationFailed, err)
	}

	if analyst == nil {
		verr.add(ReferenceNotFound, MsgAnalystNotFound)
	} else if !analyst.IsActive {
		verr.add(ReferenceInactive, MsgAnalystInactive)
	}

	if projectID != nil {
		if project == nil {
			verr.add(ReferenceNotFound, MsgProjectNotFound)
		} else if !project.IsActive {
			verr.add(ReferenceInactive, MsgProjectInactive)
		}
	}

	return nil
}

func recordViolations(verr *ValidationError) {
	for _, v := range verr.Violations {
		metrics.ShiftValidationFailuresTotal.WithLabelValues(string(v.Kind)).Inc()
	}
}

// List never reports validation errors: paging input is clamped and absent
// filters do not constrain the query.
func (u *shiftUsecase) List(ctx context.Context, query *dto.ShiftFilterQuery) (*dto.ShiftListResponse, error) {
	q := NormalizeFilter(query)

	cached, cacheKey, ok := u.listCache.Get(ctx, &q)
	if ok {
		return cached, nil
	}

	offset := (q.Page - 1) * q.PageSize
	shifts, total, err := u.shiftRepo.FindAll(ctx, u.db, toShiftFilter(&q), q.PageSize, offset)
	if err != nil {
		u.log.Warnf("Failed to list shifts: %+v", err)
		return nil, fmt.Errorf("%w: list shifts: %w", ErrOperationFailed, err)
	}

	result := &dto.ShiftListResponse{
		Shifts:     converter.ShiftsToResponses(shifts),
		Pagination: dto.NewPagination(q.Page, q.PageSize, total),
	}

	u.listCache.Set(ctx, cacheKey, result)

	return result, nil
}

func (u *shiftUsecase) Get(ctx context.Context, shiftID int) (*dto.ShiftResponse, error) {
	shift, err := u.shiftRepo.FindByID(ctx, u.db, shiftID)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return nil, fmt.Errorf("%w: find shift: %w", ErrOperationFailed, err)
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	return converter.ShiftToResponse(shift), nil
}

// NormalizeFilter returns a copy of query with paging clamped: page below 1
// becomes 1, page size below 1 becomes DefaultPageSize and page size above
// MaxPageSize becomes MaxPageSize.
func NormalizeFilter(query *dto.ShiftFilterQuery) dto.ShiftFilterQuery {
	var q dto.ShiftFilterQuery
	if query != nil {
		q = *query
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

func toShiftFilter(q *dto.ShiftFilterQuery) *entity.ShiftFilter {
	return &entity.ShiftFilter{
		AnalystID: q.AnalystID,
		ProjectID: q.ProjectID,
		Status:    q.Status,
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
	}
}

// IsValidationError reports whether err carries business-rule violations.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
