package payroll

import "context"

type PayrollRepository interface {
	// UpsertRecord inserts or replaces the record for its
	// (employee, period label) pair; re-running a period overwrites the
	// previous draft.
	UpsertRecord(ctx context.Context, record Record) (Record, error)

	// ListRecordsByPeriod returns stored records for a period label with
	// employee name and job title joined in.
	ListRecordsByPeriod(ctx context.Context, companyID string, periodLabel string) ([]Record, error)

	// MarkRecordPaid transitions a draft record to paid. It fails with
	// ErrRecordAlreadyPaid when the record was already paid and with
	// ErrRecordNotFound when it does not exist for the company.
	MarkRecordPaid(ctx context.Context, recordID string, companyID string) (Record, error)
}

type PayrollService interface {
	// Calculate computes the fortnight's payroll from the employee and
	// attendance snapshots, persists the resulting records, and returns
	// the run with localized currency formatting.
	Calculate(ctx context.Context, companyID string, req CalculateRequest) (RunResponse, error)

	// GetRecords returns the stored payroll records for a period.
	GetRecords(ctx context.Context, companyID string, req CalculateRequest) ([]RecordResponse, error)

	// Sheet renders the period's payroll as a landscape PDF table.
	Sheet(ctx context.Context, companyID string, req CalculateRequest) ([]byte, error)

	// MarkPaid transitions one stored record from draft to paid.
	MarkPaid(ctx context.Context, companyID string, recordID string) (RecordResponse, error)
}
