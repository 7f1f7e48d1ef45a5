package models

// Collection names served by the data layer.
const (
	CollectionOrders       = "orders"
	CollectionEquipment    = "equipment"
	CollectionRentals      = "rentals"
	CollectionInventory    = "inventory"
	CollectionMaintenance  = "maintenance"
	CollectionConsumables  = "consumables"
	CollectionAlerts       = "alerts"
	CollectionTransactions = "transactions"
	CollectionEmployees    = "employees"
	CollectionAttendance   = "attendance"
	CollectionCustomers    = "customers"
)

// CollectionNames lists every known collection in dashboard order.
var CollectionNames = []string{
	CollectionOrders,
	CollectionEquipment,
	CollectionRentals,
	CollectionInventory,
	CollectionMaintenance,
	CollectionConsumables,
	CollectionAlerts,
	CollectionTransactions,
	CollectionEmployees,
	CollectionAttendance,
	CollectionCustomers,
}

// IsCollection reports whether name is a known collection.
func IsCollection(name string) bool {
	for _, n := range CollectionNames {
		if n == name {
			return true
		}
	}
	return false
}
