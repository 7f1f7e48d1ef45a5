package metrics

import "time"

// Snapshot is the namespaced set of dashboard metrics computed at one instant.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Orders      OrderMetrics      `json:"orders"`
	Operations  OperationsMetrics `json:"operations"`
	Inventory   InventoryMetrics  `json:"inventory"`
	Rental      RentalMetrics     `json:"rental"`
	Finance     FinanceMetrics    `json:"finance"`
	HR          HRMetrics         `json:"hr"`
	CRM         CRMMetrics        `json:"crm"`
}

type OrderMetrics struct {
	Total              int            `json:"total"`
	Active             int            `json:"active"`
	CompletedThisMonth int            `json:"completed_this_month"`
	ByStatus           map[string]int `json:"by_status"`
}

type OperationsMetrics struct {
	MaintenanceDue int `json:"maintenance_due"`
	ConsumablesDue int `json:"consumables_due"`
	OpenAlerts     int `json:"open_alerts"`
	CriticalAlerts int `json:"critical_alerts"`
}

type InventoryMetrics struct {
	TotalItems int            `json:"total_items"`
	LowStock   int            `json:"low_stock"`
	OutOfStock int            `json:"out_of_stock"`
	TotalValue float64        `json:"total_value"`
	ByStatus   map[string]int `json:"by_status"`
}

type RentalMetrics struct {
	TotalEquipment    int            `json:"total_equipment"`
	ActiveRentals     int            `json:"active_rentals"`
	UtilizationPct    float64        `json:"utilization_pct"`
	EquipmentByStatus map[string]int `json:"equipment_by_status"`
}

type FinanceMetrics struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type HRMetrics struct {
	TotalEmployees    int     `json:"total_employees"`
	ActiveEmployees   int     `json:"active_employees"`
	PresentToday      int     `json:"present_today"`
	AttendanceRatePct float64 `json:"attendance_rate_pct"`
}

type CRMMetrics struct {
	TotalCustomers  int `json:"total_customers"`
	ActiveCustomers int `json:"active_customers"`
	NewThisMonth    int `json:"new_this_month"`
}

// Clone returns a deep copy so callers may not alias a memoized snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Orders.ByStatus = cloneCounts(s.Orders.ByStatus)
	out.Inventory.ByStatus = cloneCounts(s.Inventory.ByStatus)
	out.Rental.EquipmentByStatus = cloneCounts(s.Rental.EquipmentByStatus)
	return out
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
