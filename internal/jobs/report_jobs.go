package jobs

import (
	"context"
	"fmt"
	"time"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/logger"
	"skyledger-backend/internal/metrics"
)

// SendMonthlyReports emails every aircraft owner a summary of the previous
// calendar month: costs, hours, cost per hour, and rental profit if the
// aircraft earned income. Runs on the 1st of each month.
func (jr *JobRunner) SendMonthlyReports() {
	jr.runWithRecovery("SendMonthlyReports", func() {
		ctx := context.Background()

		// Previous month, in UTC like everything else date-shaped.
		prev := time.Now().UTC().AddDate(0, -1, 0)
		period := metrics.Month(prev.Year(), prev.Month())

		aircraft, err := jr.store.AircraftRepository.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list aircraft for monthly reports", "error", err)
			return
		}

		sent := 0
		for _, a := range aircraft {
			if err := jr.sendAircraftReport(ctx, a, prev, period); err != nil {
				logger.Error("Failed to send monthly report",
					"aircraft_id", a.ID, "tail_number", a.TailNumber, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Monthly reports sent", "aircraft", len(aircraft), "sent", sent)
	})
}

func (jr *JobRunner) sendAircraftReport(ctx context.Context, a domain.Aircraft, month time.Time, period metrics.Range) error {
	owner, err := jr.store.UserRepository.GetByID(ctx, a.OwnerID)
	if err != nil {
		return fmt.Errorf("load owner: %w", err)
	}

	costs, err := jr.services.Report.CostSummary(ctx, a.OwnerID, a.ID, period)
	if err != nil {
		return fmt.Errorf("cost summary: %w", err)
	}
	rental, err := jr.services.Report.RentalSummary(ctx, a.OwnerID, a.ID, period)
	if err != nil {
		return fmt.Errorf("rental summary: %w", err)
	}

	body := monthlyReportBody(a, month, costs.Total, costs.HoursFlown, costs.CostPerHour, rental.Revenue, rental.Profit, rental.Count)

	recipients := map[int32]bool{a.OwnerID: true}
	if err := jr.services.Email.SendMonthlyReport(ctx, owner.Email, owner.Name, a.TailNumber, body); err != nil {
		return err
	}

	// Co-owners get the same report; viewers do not.
	shares, err := jr.store.ShareRepository.ListByAircraft(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("list shares: %w", err)
	}
	for _, s := range shares {
		if !s.Role.CanWrite() || recipients[s.UserID] {
			continue
		}
		user, err := jr.store.UserRepository.GetByID(ctx, s.UserID)
		if err != nil {
			logger.Error("Failed to load co-owner for monthly report", "user_id", s.UserID, "error", err)
			continue
		}
		if err := jr.services.Email.SendMonthlyReport(ctx, user.Email, user.Name, a.TailNumber, body); err != nil {
			logger.Error("Failed to email co-owner", "user_id", s.UserID, "error", err)
			continue
		}
		recipients[s.UserID] = true
	}
	return nil
}

func monthlyReportBody(a domain.Aircraft, month time.Time, total, hours float64, perHour *float64, revenue, profit float64, rentals int) string {
	body := fmt.Sprintf(
		"Here is the %s ownership summary for %s.\n\n"+
			"Total costs: %s\n"+
			"Hours flown: %.1f\n"+
			"Cost per hour: %s\n",
		month.Format("January 2006"), a.TailNumber,
		metrics.FormatMoney(total),
		hours,
		metrics.FormatPerHour(perHour),
	)
	if rentals > 0 {
		body += fmt.Sprintf(
			"\nRental income: %s\nRental profit: %s (%d rentals)\n",
			metrics.FormatMoney(revenue),
			metrics.FormatMoney(profit),
			rentals,
		)
	}
	return body
}
