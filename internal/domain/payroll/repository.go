package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	ExistsByEmployeePeriod(ctx context.Context, employeeID, period string) (bool, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	UpdateState(ctx context.Context, id string, state State, modifiedBy string) (PayrollRecord, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context, currentPeriod string) (StatisticsResponse, error)
}
