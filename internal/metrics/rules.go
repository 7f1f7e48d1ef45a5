package metrics

import (
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/threshold"
)

// RuleSet is the static configuration of an aggregation pass.
type RuleSet struct {
	Orders      OrderRules             `yaml:"orders"`
	Stock       threshold.StockRule    `yaml:"stock"`
	Maintenance threshold.WindowRule   `yaml:"maintenance"`
	Consumables threshold.WindowRule   `yaml:"consumables"`
	Alerts      threshold.SeverityRule `yaml:"alerts"`
	Rental      RentalRules            `yaml:"rental"`
	Finance     FinanceRules           `yaml:"finance"`
	HR          HRRules                `yaml:"hr"`
	CRM         CRMRules               `yaml:"crm"`
}

type OrderRules struct {
	StatusField     string   `yaml:"status_field"`
	ActiveStatuses  []string `yaml:"active_statuses"`
	CompletedStatus string   `yaml:"completed_status"`
	DateField       string   `yaml:"date_field"`
}

type RentalRules struct {
	StatusField          string   `yaml:"status_field"`
	ActiveStatuses       []string `yaml:"active_statuses"`
	EquipmentStatusField string   `yaml:"equipment_status_field"`
}

type FinanceRules struct {
	TypeField    string   `yaml:"type_field"`
	AmountField  string   `yaml:"amount_field"`
	IncomeTypes  []string `yaml:"income_types"`
	ExpenseTypes []string `yaml:"expense_types"`
}

type HRRules struct {
	StatusField    string                 `yaml:"status_field"`
	ActiveStatuses []string               `yaml:"active_statuses"`
	Presence       threshold.PresenceRule `yaml:"presence"`
	DateField      string                 `yaml:"date_field"`
}

type CRMRules struct {
	StatusField    string   `yaml:"status_field"`
	ActiveStatuses []string `yaml:"active_statuses"`
	DateField      string   `yaml:"date_field"`
}

// DefaultRules returns the thresholds and windows used by the dashboard pages.
func DefaultRules() RuleSet {
	return RuleSet{
		Orders: OrderRules{
			StatusField:     "status",
			ActiveStatuses:  []string{"PENDING", "IN_PROGRESS"},
			CompletedStatus: "COMPLETED",
			DateField:       "createdAt",
		},
		Stock: threshold.DefaultStockRule(),
		Maintenance: threshold.WindowRule{
			DateField:  "nextMaintenanceDate",
			WindowDays: threshold.DefaultWindowDays,
		},
		Consumables: threshold.WindowRule{
			DateField:  "nextRestockDate",
			WindowDays: threshold.DefaultWindowDays,
		},
		Alerts: threshold.SeverityRule{
			PriorityField: "priority",
			Critical:      "CRITICAL",
			StatusField:   "status",
			OpenStatuses:  []string{"OPEN", "IN_PROGRESS"},
		},
		Rental: RentalRules{
			StatusField:          "status",
			ActiveStatuses:       []string{"active"},
			EquipmentStatusField: "status",
		},
		Finance: FinanceRules{
			TypeField:    "type",
			AmountField:  "amount",
			IncomeTypes:  []string{"income"},
			ExpenseTypes: []string{"expense"},
		},
		HR: HRRules{
			StatusField:    "status",
			ActiveStatuses: []string{"active"},
			Presence: threshold.PresenceRule{
				StatusField:   "status",
				PresentValues: []string{"present", "late"},
			},
			DateField: "date",
		},
		CRM: CRMRules{
			StatusField:    "status",
			ActiveStatuses: []string{"active"},
			DateField:      "createdAt",
		},
	}
}

// ClassifierFor returns the per-record classifier used to badge a collection's rows.
func (rs RuleSet) ClassifierFor(collection string) (threshold.Classifier, bool) {
	switch collection {
	case models.CollectionInventory:
		return rs.Stock, true
	case models.CollectionMaintenance:
		return rs.Maintenance, true
	case models.CollectionConsumables:
		return rs.Consumables, true
	case models.CollectionAlerts:
		return rs.Alerts, true
	case models.CollectionAttendance:
		return rs.HR.Presence, true
	}
	return nil, false
}
