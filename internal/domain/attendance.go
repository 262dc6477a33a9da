package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the clock state of an employee for one day.
// Transitions are monotonic: not-started, clocked-in, clocked-out.
type AttendanceStatus string

const (
	AttendanceNotStarted AttendanceStatus = "not-started"
	AttendanceClockedIn  AttendanceStatus = "clocked-in"
	AttendanceClockedOut AttendanceStatus = "clocked-out"
)

func (s AttendanceStatus) String() string { return string(s) }

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceNotStarted, AttendanceClockedIn, AttendanceClockedOut:
		return true
	}
	return false
}

// AttendanceAction is a control the dashboard may offer for a record.
type AttendanceAction string

const (
	AttendanceActionClockIn  AttendanceAction = "clock-in"
	AttendanceActionClockOut AttendanceAction = "clock-out"
)

// Transition names what a state machine step did.
type Transition string

const (
	TransitionNone     Transition = "none"
	TransitionClockIn  Transition = "clock-in"
	TransitionClockOut Transition = "clock-out"
)

// ErrInvalidTransition is returned for a transition the current state does not allow.
var ErrInvalidTransition = fmt.Errorf("invalid attendance transition: %w", ErrConflict)

// AttendanceRecord is one employee's attendance for one calendar day.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	OwnerID     uuid.UUID        `json:"-"`
	EmployeeID  string           `json:"employeeId"`
	Name        string           `json:"name"`
	Date        Date             `json:"date"`
	ClockIn     *ClockTime       `json:"clockIn"`
	ClockOut    *ClockTime       `json:"clockOut"`
	Status      AttendanceStatus `json:"status"`
	HoursWorked *string          `json:"hoursWorked"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// AttendanceKey is the deterministic record key for an employee and day.
func AttendanceKey(employeeID string, day Date) string {
	return employeeID + "_" + day.String()
}

// NewAttendanceRecord returns the not-started record for the member on day.
func NewAttendanceRecord(member StaffMember, day Date) AttendanceRecord {
	return AttendanceRecord{
		ID:         AttendanceKey(member.EmployeeID, day),
		OwnerID:    member.OwnerID,
		EmployeeID: member.EmployeeID,
		Name:       member.Name,
		Date:       day,
		Status:     AttendanceNotStarted,
	}
}

// Actions lists the controls available in the current state.
func (r AttendanceRecord) Actions() []AttendanceAction {
	switch r.Status {
	case AttendanceNotStarted:
		return []AttendanceAction{AttendanceActionClockIn}
	case AttendanceClockedIn:
		return []AttendanceAction{AttendanceActionClockOut}
	}
	return nil
}

// ClockInAt stamps the clock-in time. Only valid from not-started.
func (r AttendanceRecord) ClockInAt(at ClockTime) (AttendanceRecord, error) {
	if r.Status != AttendanceNotStarted {
		return r, fmt.Errorf("clock in from %s: %w", r.Status, ErrInvalidTransition)
	}
	r.ClockIn = &at
	r.ClockOut = nil
	r.HoursWorked = nil
	r.Status = AttendanceClockedIn
	return r, nil
}

// ClockOutAt stamps the clock-out time and computes hours worked.
// Only valid from clocked-in.
func (r AttendanceRecord) ClockOutAt(at ClockTime) (AttendanceRecord, error) {
	if r.Status != AttendanceClockedIn {
		return r, fmt.Errorf("clock out from %s: %w", r.Status, ErrInvalidTransition)
	}
	r.ClockOut = &at
	r.HoursWorked = HoursWorked(r.ClockIn, r.ClockOut)
	r.Status = AttendanceClockedOut
	return r, nil
}

// Toggle advances the record one step: not-started clocks in, clocked-in
// clocks out, clocked-out is returned unchanged.
func (r AttendanceRecord) Toggle(at ClockTime) (AttendanceRecord, Transition) {
	switch r.Status {
	case AttendanceNotStarted:
		next, _ := r.ClockInAt(at)
		return next, TransitionClockIn
	case AttendanceClockedIn:
		next, _ := r.ClockOutAt(at)
		return next, TransitionClockOut
	}
	return r, TransitionNone
}

// HoursWorked renders the span between two clock times as "Hh Mm".
// It returns nil unless both times are present.
func HoursWorked(clockIn, clockOut *ClockTime) *string {
	mins, ok := MinutesWorked(clockIn, clockOut)
	if !ok {
		return nil
	}
	s := FormatMinutes(mins)
	return &s
}

// MinutesWorked is the span between two clock times in minutes. A clock-out
// earlier than the clock-in is a shift across midnight and counts the hours
// up to the next day.
func MinutesWorked(clockIn, clockOut *ClockTime) (int, bool) {
	if clockIn == nil || clockOut == nil {
		return 0, false
	}
	diff := clockOut.Minutes() - clockIn.Minutes()
	if diff < 0 {
		diff += 24 * 60
	}
	return diff, true
}

// FormatMinutes renders a duration in minutes as "Hh Mm".
func FormatMinutes(mins int) string {
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
