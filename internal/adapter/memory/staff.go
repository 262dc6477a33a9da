package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// StaffStore is the guest-mode staff store. The owner key is the guest
// session ID.
type StaffStore struct {
	*Store[domain.StaffMember]
}

// NewStaffStore creates an empty guest staff store.
func NewStaffStore() *StaffStore {
	return &StaffStore{
		Store: NewStore("staff_member", func(m domain.StaffMember) uuid.UUID { return m.ID }),
	}
}

// List returns the session's staff ordered by join date.
func (s *StaffStore) List(_ context.Context, session uuid.UUID) ([]domain.StaffMember, error) {
	members := s.Store.List(session)
	slices.SortStableFunc(members, func(a, b domain.StaffMember) int {
		return a.JoinDate.Compare(b.JoinDate)
	})
	return members, nil
}

func (s *StaffStore) Get(_ context.Context, session, id uuid.UUID) (domain.StaffMember, error) {
	return s.Store.Get(session, id)
}

func (s *StaffStore) Create(_ context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	if err := s.Insert(m.OwnerID, m); err != nil {
		return domain.StaffMember{}, err
	}
	return m, nil
}

// Update keeps the stored employee ID.
func (s *StaffStore) Update(_ context.Context, m domain.StaffMember) (domain.StaffMember, error) {
	return s.Modify(m.OwnerID, m.ID, func(old domain.StaffMember) domain.StaffMember {
		m.EmployeeID = old.EmployeeID
		m.CreatedAt = old.CreatedAt
		return m
	})
}

func (s *StaffStore) Delete(_ context.Context, session, id uuid.UUID) error {
	return s.Store.Delete(session, id)
}

// EmployeeIDs returns the IDs used in the session.
func (s *StaffStore) EmployeeIDs(_ context.Context, session uuid.UUID) ([]string, error) {
	members := s.Store.List(session)
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.EmployeeID
	}
	return ids, nil
}
