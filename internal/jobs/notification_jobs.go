package jobs

import (
	"context"

	"toolrent-backend/internal/logger"
)

// SendDebtReminders emails every customer with outstanding fines, damage
// charges, or an overdue loan still out. Read-only: loan and customer state is
// never touched here.
func (jr *JobRunner) SendDebtReminders() {
	jr.runWithRecovery("SendDebtReminders", func() {
		ctx := context.Background()

		debtors, err := jr.services.Reports.CustomersWithDebt(ctx)
		if err != nil {
			logger.Error("Failed to query customers with debt", "error", err)
			return
		}

		count := 0
		for _, d := range debtors {
			if d.Email == "" {
				continue
			}

			err := jr.services.Email.SendDebtReminder(ctx, d.Email, d.Name, d.TotalDebt, d.HasOverdueLoan)
			if err != nil {
				logger.Error("Failed to send debt reminder email",
					"customer_id", d.CustomerID,
					"email", d.Email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent debt reminder",
				"customer_id", d.CustomerID,
				"email", d.Email,
				"total_debt", d.TotalDebt.String())
		}

		logger.Info("Debt reminders sent", "count", count, "debtors", len(debtors))
	})
}
