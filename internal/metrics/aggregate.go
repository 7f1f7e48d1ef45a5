// Package metrics reduces raw entity collections into the dashboard snapshot.
//
// Aggregate is a pure function of its collections, rules and now: it never
// mutates its inputs and reads no clock of its own.
package metrics

import (
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/threshold"
)

// Aggregate computes the dashboard snapshot at now. Single-collection metrics
// are computed first; cross-collection ratios read only their finished results.
func Aggregate(c models.Collections, rules RuleSet, now time.Time) Snapshot {
	s := Snapshot{GeneratedAt: now}

	s.Orders = aggregateOrders(c.Get(models.CollectionOrders), rules.Orders, now)
	s.Operations = aggregateOperations(c, rules, now)
	s.Inventory = aggregateInventory(c.Get(models.CollectionInventory), rules.Stock, now)
	s.Rental = aggregateRental(c.Get(models.CollectionEquipment), c.Get(models.CollectionRentals), rules.Rental)
	s.Finance = aggregateFinance(c.Get(models.CollectionTransactions), rules.Finance)
	s.HR = aggregateHR(c.Get(models.CollectionEmployees), c.Get(models.CollectionAttendance), rules.HR, now)
	s.CRM = aggregateCRM(c.Get(models.CollectionCustomers), rules.CRM, now)

	// Cross-collection metrics
	s.Rental.UtilizationPct = Percentage(s.Rental.ActiveRentals, s.Rental.TotalEquipment)
	s.HR.AttendanceRatePct = Percentage(s.HR.PresentToday, s.HR.ActiveEmployees)

	return s
}

func aggregateOrders(orders []models.Record, rules OrderRules, now time.Time) OrderMetrics {
	m := OrderMetrics{Total: len(orders)}

	for _, o := range orders {
		status := o.String(rules.StatusField)
		if threshold.InSet(status, rules.ActiveStatuses) {
			m.Active++
		}
		if threshold.InSet(status, []string{rules.CompletedStatus}) && InMonth(o, rules.DateField, now) {
			m.CompletedThisMonth++
		}
	}
	m.ByStatus = CountBy(orders, rules.StatusField)

	return m
}

func aggregateOperations(c models.Collections, rules RuleSet, now time.Time) OperationsMetrics {
	m := OperationsMetrics{}

	m.MaintenanceDue = CountStatus(c.Get(models.CollectionMaintenance), rules.Maintenance, now, threshold.StatusDue)
	m.ConsumablesDue = CountStatus(c.Get(models.CollectionConsumables), rules.Consumables, now, threshold.StatusDue)

	alerts := c.Get(models.CollectionAlerts)
	for _, a := range alerts {
		if rules.Alerts.IsOpen(a) {
			m.OpenAlerts++
		}
	}
	m.CriticalAlerts = CountStatus(alerts, rules.Alerts, now, threshold.StatusCritical)

	return m
}

func aggregateInventory(items []models.Record, rule threshold.StockRule, now time.Time) InventoryMetrics {
	m := InventoryMetrics{
		TotalItems: len(items),
		ByStatus: map[string]int{
			string(threshold.StatusNormal): 0,
			string(threshold.StatusLow):    0,
			string(threshold.StatusOut):    0,
		},
	}

	for _, item := range items {
		status := rule.Classify(item, now)
		m.ByStatus[string(status)]++
		switch status {
		case threshold.StatusLow:
			m.LowStock++
		case threshold.StatusOut:
			m.OutOfStock++
		}
		m.TotalValue += rule.Value(item)
	}

	return m
}

func aggregateRental(equipment, rentals []models.Record, rules RentalRules) RentalMetrics {
	m := RentalMetrics{TotalEquipment: len(equipment)}

	for _, r := range rentals {
		if threshold.InSet(r.String(rules.StatusField), rules.ActiveStatuses) {
			m.ActiveRentals++
		}
	}
	m.EquipmentByStatus = CountBy(equipment, rules.EquipmentStatusField)

	return m
}

func aggregateFinance(transactions []models.Record, rules FinanceRules) FinanceMetrics {
	m := FinanceMetrics{}

	for _, t := range transactions {
		kind := t.String(rules.TypeField)
		switch {
		case threshold.InSet(kind, rules.IncomeTypes):
			m.Income += t.Number(rules.AmountField)
		case threshold.InSet(kind, rules.ExpenseTypes):
			m.Expenses += t.Number(rules.AmountField)
		}
	}
	m.Net = m.Income - m.Expenses

	return m
}

func aggregateHR(employees, attendance []models.Record, rules HRRules, now time.Time) HRMetrics {
	m := HRMetrics{TotalEmployees: len(employees)}

	for _, e := range employees {
		if threshold.InSet(e.String(rules.StatusField), rules.ActiveStatuses) {
			m.ActiveEmployees++
		}
	}
	for _, a := range attendance {
		if OnDay(a, rules.DateField, now) && rules.Presence.Classify(a, now) == threshold.StatusPresent {
			m.PresentToday++
		}
	}

	return m
}

func aggregateCRM(customers []models.Record, rules CRMRules, now time.Time) CRMMetrics {
	m := CRMMetrics{TotalCustomers: len(customers)}

	for _, c := range customers {
		if threshold.InSet(c.String(rules.StatusField), rules.ActiveStatuses) {
			m.ActiveCustomers++
		}
		if InMonth(c, rules.DateField, now) {
			m.NewThisMonth++
		}
	}

	return m
}
