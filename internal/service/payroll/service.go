package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestionobras/obras-backend-go/internal/domain/payroll"
	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/pkg/database"
	"github.com/gestionobras/obras-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

func (s *PayrollServiceImpl) actorFromContext(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	actor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if !actor.Active {
		return user.User{}, user.ErrUserInactive
	}
	return actor, nil
}

func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !user.Allowed(actor, user.PermissionManagePayroll) {
		return payroll.PayrollResponse{}, user.ErrInsufficientPermissions
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payroll.PayrollResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollResponse{}, err
	}

	overtimePay, total, err := payroll.ComputeTotal(req.BaseSalary, req.OvertimeHours, req.Bonuses, req.Deductions)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record := payroll.PayrollRecord{
		EmployeeID:       req.EmployeeID,
		Period:           req.Period,
		DaysWorked:       req.DaysWorked,
		BaseSalary:       req.BaseSalary,
		OvertimeHours:    req.OvertimeHours,
		Bonuses:          req.Bonuses,
		Deductions:       req.Deductions,
		OvertimePay:      overtimePay,
		Total:            total,
		State:            payroll.StatePending,
		Comment:          req.Comment,
		LastModifiedByID: &actor.ID,
	}

	var created payroll.PayrollRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.payrollRepo.ExistsByEmployeePeriod(txCtx, req.EmployeeID, req.Period)
		if err != nil {
			return err
		}
		if exists {
			return payroll.ErrPayrollAlreadyExists
		}

		created, err = s.payrollRepo.Create(txCtx, record)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(created), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Workers may only see their own payroll.
	if !user.AllowedOnRecord(actor, record.EmployeeID) {
		return payroll.PayrollResponse{}, user.ErrInsufficientPermissions
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	// Workers are scoped to their own records regardless of the filter.
	if !actor.IsArchitect() && !actor.IsSupervisor() {
		filter.EmployeeID = &actor.ID
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	resp := payroll.ListPayrollResponse{
		Data:       make([]payroll.PayrollResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, r := range records {
		resp.Data = append(resp.Data, payroll.ToResponse(r))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !user.Allowed(actor, user.PermissionManagePayroll) {
		return payroll.PayrollResponse{}, user.ErrInsufficientPermissions
	}

	var updated payroll.PayrollRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		// Field edits are state transitions to the same state.
		if ok, reason := payroll.CanTransition(record.State, record.State, actor); !ok {
			return &payroll.TransitionError{Reason: reason}
		}

		if req.DaysWorked != nil {
			record.DaysWorked = *req.DaysWorked
		}
		if req.BaseSalary != nil {
			record.BaseSalary = *req.BaseSalary
		}
		if req.OvertimeHours != nil {
			record.OvertimeHours = *req.OvertimeHours
		}
		if req.Bonuses != nil {
			record.Bonuses = *req.Bonuses
		}
		if req.Deductions != nil {
			record.Deductions = *req.Deductions
		}
		if req.Comment != nil {
			record.Comment = req.Comment
		}

		if err := payroll.ValidateFields(record.Period, record.DaysWorked, record.BaseSalary,
			record.OvertimeHours, record.Bonuses, record.Deductions); err != nil {
			return err
		}

		// Totals are always recomputed server-side after an edit.
		record.OvertimePay, record.Total, err = payroll.ComputeTotal(
			record.BaseSalary, record.OvertimeHours, record.Bonuses, record.Deductions)
		if err != nil {
			return err
		}
		record.LastModifiedByID = &actor.ID
		record.UpdatedAt = time.Now()

		updated, err = s.payrollRepo.Update(txCtx, record)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}

// Process marks a pending record as paid.
func (s *PayrollServiceImpl) Process(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, payroll.StatePaid)
}

// Cancel marks a pending record as cancelled.
func (s *PayrollServiceImpl) Cancel(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.transition(ctx, id, payroll.StateCancelled)
}

func (s *PayrollServiceImpl) transition(ctx context.Context, id string, target payroll.State) (payroll.PayrollResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	var record payroll.PayrollRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err = s.payrollRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if ok, reason := payroll.CanTransition(record.State, target, actor); !ok {
			return &payroll.TransitionError{Reason: reason}
		}

		record, err = s.payrollRepo.UpdateState(txCtx, id, target, actor.ID)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.Allowed(actor, user.PermissionManagePayroll) {
		return user.ErrInsufficientPermissions
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.State != payroll.StatePending {
		return &payroll.TransitionError{Reason: "only pending records can be deleted"}
	}

	return s.payrollRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) Statistics(ctx context.Context) (payroll.StatisticsResponse, error) {
	actor, err := s.actorFromContext(ctx)
	if err != nil {
		return payroll.StatisticsResponse{}, err
	}
	if !user.Allowed(actor, user.PermissionViewReports) {
		return payroll.StatisticsResponse{}, user.ErrInsufficientPermissions
	}

	currentPeriod := time.Now().Format("2006-01")
	return s.payrollRepo.Statistics(ctx, currentPeriod)
}
