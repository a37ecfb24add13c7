package jobs

import (
	"context"
	"time"

	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/utils"
)

// ReportOverdueOrders logs every open order that started more than
// OverdueAfterDays ago together with the amount it would close at now.
func (jr *JobRunner) ReportOverdueOrders() {
	jr.runWithRecovery("ReportOverdueOrders", jr.reportOverdueOrders)
}

func (jr *JobRunner) reportOverdueOrders(ctx context.Context) error {
	threshold := time.Duration(jr.config.OverdueAfterDays) * 24 * time.Hour
	orders, err := jr.orders.ListOverdue(ctx, threshold)
	if err != nil {
		return err
	}

	now := jr.now()
	for _, o := range orders {
		days, err := utils.ElapsedWholeDays(o.StartDate, now)
		if err != nil {
			logger.Warn("Skipping order with start date in the future", "orderID", o.ID, "startDate", o.StartDate)
			continue
		}
		accrued, _ := utils.CalculatePaymentForDays(o.StartDate, now, o.Price)
		logger.Info("Overdue open order",
			"orderID", o.ID,
			"client", o.ClientName,
			"phone", o.ClientPhoneNumber,
			"tool", o.ToolName(),
			"days", days,
			"accrued", accrued.StringFixed(2),
		)
	}

	jr.metrics.SetOverdueOrders(len(orders))
	logger.Info("Overdue orders reported", "count", len(orders), "olderThanDays", jr.config.OverdueAfterDays)
	return nil
}
