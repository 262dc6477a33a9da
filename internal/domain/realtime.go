package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection names an owner-scoped record set that can be subscribed to.
type Collection string

const (
	CollectionInventory  Collection = "inventory"
	CollectionStaff      Collection = "staff"
	CollectionAttendance Collection = "attendance"
	CollectionActivity   Collection = "activity"
	CollectionShifts     Collection = "shifts"
	CollectionOrders     Collection = "orders"
)

func (c Collection) String() string { return string(c) }

func (c Collection) IsValid() bool {
	switch c {
	case CollectionInventory, CollectionStaff, CollectionAttendance,
		CollectionActivity, CollectionShifts, CollectionOrders:
		return true
	}
	return false
}

// Change announces that a collection of one owner was written.
type Change struct {
	Collection Collection `json:"collection"`
	OwnerID    uuid.UUID  `json:"ownerId"`
}

// Snapshot is the full ordered content of a collection at one moment.
// Each snapshot replaces the previous one; it is never a diff.
type Snapshot struct {
	Collection Collection `json:"collection"`
	OwnerID    uuid.UUID  `json:"-"`
	Items      any        `json:"items"`
	At         time.Time  `json:"at"`
}

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a fire-and-forget, toast-style message for the owner's screens.
// OwnerID is the owner account, or the guest session for guest writes. A zero
// OwnerID addresses nobody in particular (e.g. an unauthenticated terminal).
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Title   string      `json:"title"`
	Detail  string      `json:"detail,omitempty"`
	OwnerID uuid.UUID   `json:"-"`
}

// SuccessNotice builds a success notice.
func SuccessNotice(ownerID uuid.UUID, title, detail string) Notice {
	return Notice{Level: NoticeSuccess, Title: title, Detail: detail, OwnerID: ownerID}
}

// ErrorNotice builds an error notice; detail is usually err.Error().
func ErrorNotice(ownerID uuid.UUID, title, detail string) Notice {
	return Notice{Level: NoticeError, Title: title, Detail: detail, OwnerID: ownerID}
}
