package staff

import (
	"strings"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// MemberFields holds the editable fields of a staff member.
type MemberFields struct {
	Name     string
	Email    string
	Phone    string
	Role     domain.StaffRole
	Address  string
	Status   domain.StaffStatus // empty = active
	JoinDate *domain.Date       // nil = today on add, unchanged on update
}

func (f MemberFields) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	}
	if f.Role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	} else if !f.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if f.Status != "" && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	return errs
}

func (f MemberFields) apply(m domain.StaffMember) domain.StaffMember {
	m.Name = strings.TrimSpace(f.Name)
	m.Email = strings.TrimSpace(f.Email)
	m.Phone = strings.TrimSpace(f.Phone)
	m.Role = f.Role
	m.Address = strings.TrimSpace(f.Address)
	m.Status = f.Status
	if m.Status == "" {
		m.Status = domain.StaffStatusActive
	}
	if f.JoinDate != nil && !f.JoinDate.IsZero() {
		m.JoinDate = *f.JoinDate
	}
	return m
}

// AddMemberInput holds the parameters for adding a staff member. The
// employee ID is always generated.
type AddMemberInput struct {
	MemberFields
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMemberInput replaces the editable fields. The employee ID is kept.
type UpdateMemberInput struct {
	ID uuid.UUID
	MemberFields
}

// Validate checks all fields and collects all errors.
func (i UpdateMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.validate()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteMemberInput holds the parameters for removing a staff member.
type DeleteMemberInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteMemberInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ListMembersInput narrows the staff list.
type ListMembersInput struct {
	Search string
	Role   domain.StaffRole
	Status domain.StaffStatus
}

// Validate checks all fields and collects all errors.
func (i ListMembersInput) Validate() error {
	var errs []domain.FieldError
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
