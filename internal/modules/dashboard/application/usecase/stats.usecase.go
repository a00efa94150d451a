package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"restaurantBackoffice/internal/modules/dashboard/domain"
	orders "restaurantBackoffice/internal/modules/orders/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/shared/money"
)

const dateLayout = "2006-01-02"

// StatsUseCase recomputes dashboard figures from the whole document on
// every call.
type StatsUseCase struct {
	store docstore.Store
	now   func() time.Time
}

func NewStatsUseCase(store docstore.Store) *StatsUseCase {
	return &StatsUseCase{store: store, now: time.Now}
}

// Stats counts records and sums order totals. Bookings count as today's
// when their date equals the current local date; orders when their createdAt
// falls on that date in the same zone.
func (uc *StatsUseCase) Stats(ctx context.Context) (domain.Stats, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	now := uc.now()
	today := now.Format(dateLayout)

	stats := domain.Stats{
		TotalBookings:  len(doc.Bookings),
		TotalOrders:    len(doc.Orders),
		TotalTables:    len(doc.Tables),
		TotalCustomers: len(doc.Customers),
		TotalMenuItems: len(doc.Menu),
		TotalStaff:     len(doc.Staff),
	}

	for _, b := range doc.Bookings {
		if b.Date == today {
			stats.TodayBookings++
		}
	}

	total, todayTotal := decimal.Zero, decimal.Zero
	for _, o := range doc.Orders {
		total = total.Add(o.Total)
		if localDate(o.CreatedAt, now.Location()) == today {
			stats.TodayOrders++
			todayTotal = todayTotal.Add(o.Total)
		}
		if o.Status == orders.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	stats.TotalRevenue = money.Round(total)
	stats.TodayRevenue = money.Round(todayTotal)

	for _, t := range doc.Tables {
		if t.Status == tables.TableStatusAvailable {
			stats.AvailableTables++
		}
	}
	return stats, nil
}

// localDate returns the calendar date of a stored timestamp in loc. Values
// that do not parse keep their leading date as written.
func localDate(createdAt string, loc *time.Location) string {
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		if len(createdAt) >= len(dateLayout) {
			return createdAt[:len(dateLayout)]
		}
		return createdAt
	}
	return ts.In(loc).Format(dateLayout)
}
