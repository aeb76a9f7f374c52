package payroll

import "context"

type PayrollService interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	Update(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	Process(ctx context.Context, id string) (PayrollResponse, error)
	Cancel(ctx context.Context, id string) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (StatisticsResponse, error)
}
