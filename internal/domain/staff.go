package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StaffRole is the job of a staff member.
type StaffRole string

const (
	StaffRoleHeadChef StaffRole = "Head Chef"
	StaffRoleCook     StaffRole = "Cook"
	StaffRoleServer   StaffRole = "Server"
	StaffRoleManager  StaffRole = "Manager"
	StaffRoleCleaner  StaffRole = "Cleaner"
)

// StaffRoles lists roles in the order the dashboard offers them.
var StaffRoles = []StaffRole{
	StaffRoleHeadChef, StaffRoleCook, StaffRoleServer, StaffRoleManager, StaffRoleCleaner,
}

func (r StaffRole) String() string { return string(r) }

func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleHeadChef, StaffRoleCook, StaffRoleServer, StaffRoleManager, StaffRoleCleaner:
		return true
	}
	return false
}

// StaffStatus is the employment status of a staff member.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
	StaffStatusOnBreak  StaffStatus = "on-break"
)

func (s StaffStatus) String() string { return string(s) }

func (s StaffStatus) IsValid() bool {
	switch s {
	case StaffStatusActive, StaffStatusInactive, StaffStatusOnBreak:
		return true
	}
	return false
}

// StaffMember is an employee of one account.
type StaffMember struct {
	ID         uuid.UUID   `json:"id"`
	OwnerID    uuid.UUID   `json:"-"`
	EmployeeID string      `json:"employeeId"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Role       StaffRole   `json:"role"`
	Address    string      `json:"address"`
	Status     StaffStatus `json:"status"`
	JoinDate   Date        `json:"joinDate"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// IsActive reports whether the member counts toward the active headcount.
func (m StaffMember) IsActive() bool { return m.Status == StaffStatusActive }

// StaffFilter narrows a staff list.
type StaffFilter struct {
	Search string
	Role   StaffRole
	Status StaffStatus
}

// FilterStaff applies f, keeping the incoming order. Search matches name,
// email, role or employee ID case-insensitively.
func FilterStaff(members []StaffMember, f StaffFilter) []StaffMember {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]StaffMember, 0, len(members))
	for _, m := range members {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Email), search) &&
			!strings.Contains(strings.ToLower(string(m.Role)), search) &&
			!strings.Contains(strings.ToLower(m.EmployeeID), search) {
			continue
		}
		if f.Role != "" && m.Role != f.Role {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ---------------------------------------------------------------------------
// Employee ID generation
// ---------------------------------------------------------------------------

const (
	DefaultEmployeeIDPrefix = "PLA"
	employeeIDMaxAttempts   = 1000
	employeeIDMin           = 10000
	employeeIDMax           = 99999
)

// EmployeeIDGenerator produces prefix + 5 digit IDs that do not collide with
// a known set. IDs it hands out are added to the set, so one generator can
// mint a batch of distinct IDs.
type EmployeeIDGenerator struct {
	prefix string
	taken  map[string]struct{}
	intN   func(n int) int
	now    func() time.Time
}

// NewEmployeeIDGenerator creates a generator seeded with the existing IDs.
// An empty prefix falls back to DefaultEmployeeIDPrefix.
func NewEmployeeIDGenerator(prefix string, existing []string) *EmployeeIDGenerator {
	if prefix == "" {
		prefix = DefaultEmployeeIDPrefix
	}
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}
	return &EmployeeIDGenerator{
		prefix: prefix,
		taken:  taken,
		intN:   rand.IntN,
		now:    time.Now,
	}
}

// Next returns an unused ID. After 1000 colliding draws it falls back to the
// prefix plus the last five digits of the current Unix millisecond clock.
func (g *EmployeeIDGenerator) Next() string {
	for range employeeIDMaxAttempts {
		candidate := fmt.Sprintf("%s%d", g.prefix, employeeIDMin+g.intN(employeeIDMax-employeeIDMin+1))
		if _, ok := g.taken[candidate]; !ok {
			g.taken[candidate] = struct{}{}
			return candidate
		}
	}

	fallback := fmt.Sprintf("%s%05d", g.prefix, g.now().UnixMilli()%100000)
	g.taken[fallback] = struct{}{}
	return fallback
}

// GenerateEmployeeID is a one-shot convenience around EmployeeIDGenerator.
func GenerateEmployeeID(prefix string, existing []string) string {
	return NewEmployeeIDGenerator(prefix, existing).Next()
}
