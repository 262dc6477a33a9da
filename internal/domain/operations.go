package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityKind classifies an activity feed entry.
type ActivityKind string

const (
	ActivityInventory  ActivityKind = "inventory"
	ActivityStaff      ActivityKind = "staff"
	ActivityAttendance ActivityKind = "attendance"
	ActivityOrder      ActivityKind = "order"
	ActivityShift      ActivityKind = "shift"
)

func (k ActivityKind) String() string { return string(k) }

// Activity is one line of an account's recent-activity feed.
type Activity struct {
	ID         uuid.UUID    `json:"id"`
	OwnerID    uuid.UUID    `json:"-"`
	Kind       ActivityKind `json:"kind"`
	Message    string       `json:"message"`
	EntityID   string       `json:"entityId,omitempty"`
	OccurredAt time.Time    `json:"timestamp"`
}

// NewActivity builds an activity stamped now.
func NewActivity(ownerID uuid.UUID, kind ActivityKind, entityID, message string, now time.Time) Activity {
	return Activity{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Kind:       kind,
		Message:    message,
		EntityID:   entityID,
		OccurredAt: now.UTC(),
	}
}

// Order is a completed sale used for revenue figures.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"-"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PlacedAt    time.Time       `json:"placedAt"`
	Note        string          `json:"note,omitempty"`
}

// Shift is a scheduled working slot for a staff member.
type Shift struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"-"`
	StaffName string    `json:"staffName"`
	Role      StaffRole `json:"role"`
	Date      Date      `json:"date"`
	Start     ClockTime `json:"start"`
	End       ClockTime `json:"end"`
}

// OrderTotals is the count and revenue of orders in a time window.
type OrderTotals struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
