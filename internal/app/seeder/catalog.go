package seeder

import (
	"github.com/shopspring/decimal"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

type itemSpec struct {
	name, category, unit, supplier string
	stock, minStock, maxStock      int
	cost                           string
	// expiresIn is days from today; nil means no expiry.
	expiresIn *int
}

type memberSpec struct {
	name, email, phone string
	role               domain.StaffRole
	status             domain.StaffStatus
	joinedDaysAgo      int
	evening            bool
}

func days(n int) *int { return &n }

// demoInventory covers every stock band: in stock, low, out and expired.
var demoInventory = []itemSpec{
	{name: "Tomatoes", category: "Vegetables", unit: "kg", supplier: "Green Valley Farms", stock: 25, minStock: 10, maxStock: 50, cost: "2.40", expiresIn: days(6)},
	{name: "Onions", category: "Vegetables", unit: "kg", supplier: "Green Valley Farms", stock: 8, minStock: 10, maxStock: 40, cost: "1.10"},
	{name: "Chicken Breast", category: "Meat", unit: "kg", supplier: "Prime Meats Co.", stock: 18, minStock: 8, maxStock: 30, cost: "7.90", expiresIn: days(3)},
	{name: "Beef Mince", category: "Meat", unit: "kg", supplier: "Prime Meats Co.", stock: 0, minStock: 5, maxStock: 20, cost: "9.50"},
	{name: "Salmon Fillet", category: "Seafood", unit: "kg", supplier: "Harbour Fresh", stock: 6, minStock: 4, maxStock: 12, cost: "18.00", expiresIn: days(0)},
	{name: "Prawns", category: "Seafood", unit: "kg", supplier: "Harbour Fresh", stock: 3, minStock: 2, maxStock: 8, cost: "21.50", expiresIn: days(-2)},
	{name: "Whole Milk", category: "Dairy", unit: "L", supplier: "Dairy Direct", stock: 30, minStock: 12, maxStock: 48, cost: "0.95", expiresIn: days(5)},
	{name: "Parmesan", category: "Dairy", unit: "kg", supplier: "Dairy Direct", stock: 2, minStock: 3, maxStock: 6, cost: "24.00"},
	{name: "Olive Oil", category: "Condiments", unit: "bottles", supplier: "Mediterraneo Imports", stock: 14, minStock: 6, maxStock: 24, cost: "8.75"},
	{name: "Basil", category: "Herbs", unit: "bunches", supplier: "Green Valley Farms", stock: 12, minStock: 5, maxStock: 20, cost: "1.20", expiresIn: days(2)},
	{name: "Arborio Rice", category: "Dry Goods", unit: "kg", supplier: "Pantry Wholesale", stock: 20, minStock: 8, maxStock: 30, cost: "3.30"},
	{name: "Sparkling Water", category: "Beverages", unit: "cans", supplier: "Pantry Wholesale", stock: 96, minStock: 48, maxStock: 192, cost: "0.45"},
}

var demoStaff = []memberSpec{
	{name: "Maria Rossi", email: "maria@platrr.app", phone: "+44 7700 900101", role: domain.StaffRoleHeadChef, status: domain.StaffStatusActive, joinedDaysAgo: 720},
	{name: "Tom Becker", email: "tom@platrr.app", phone: "+44 7700 900102", role: domain.StaffRoleCook, status: domain.StaffStatusActive, joinedDaysAgo: 410},
	{name: "Aisha Khan", email: "aisha@platrr.app", phone: "+44 7700 900103", role: domain.StaffRoleCook, status: domain.StaffStatusActive, joinedDaysAgo: 160, evening: true},
	{name: "Leo Martins", email: "leo@platrr.app", phone: "+44 7700 900104", role: domain.StaffRoleServer, status: domain.StaffStatusActive, joinedDaysAgo: 300},
	{name: "Sofia Nowak", email: "sofia@platrr.app", phone: "+44 7700 900105", role: domain.StaffRoleServer, status: domain.StaffStatusOnBreak, joinedDaysAgo: 95, evening: true},
	{name: "James Okafor", email: "james@platrr.app", phone: "+44 7700 900106", role: domain.StaffRoleManager, status: domain.StaffStatusActive, joinedDaysAgo: 900},
	{name: "Ana Silva", email: "ana@platrr.app", phone: "+44 7700 900107", role: domain.StaffRoleCleaner, status: domain.StaffStatusActive, joinedDaysAgo: 60, evening: true},
	{name: "Ben Clarke", email: "ben@platrr.app", phone: "+44 7700 900108", role: domain.StaffRoleServer, status: domain.StaffStatusInactive, joinedDaysAgo: 500},
}

var (
	morningShift = [2]domain.ClockTime{{Hour: 8}, {Hour: 16}}
	eveningShift = [2]domain.ClockTime{{Hour: 15}, {Hour: 23}}
)

func (m memberSpec) shift() [2]domain.ClockTime {
	if m.evening {
		return eveningShift
	}
	return morningShift
}

func (s itemSpec) costPerUnit() decimal.Decimal { return decimal.RequireFromString(s.cost) }
