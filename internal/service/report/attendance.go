package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

// EmployeeHours totals one employee's attendance in the report window.
type EmployeeHours struct {
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	DaysPresent int    `json:"daysPresent"`
	OpenDays    int    `json:"openDays"`
	Minutes     int    `json:"minutes"`
	HoursWorked string `json:"hoursWorked"`
}

// AttendanceReport sums hours worked per employee over [From, To].
type AttendanceReport struct {
	From         domain.Date     `json:"from"`
	To           domain.Date     `json:"to"`
	Employees    []EmployeeHours `json:"employees"`
	TotalMinutes int             `json:"totalMinutes"`
	TotalHours   string          `json:"totalHours"`
}

// AttendanceInput selects the report window. A zero To means today; a zero
// From means seven days before To.
type AttendanceInput struct {
	From domain.Date
	To   domain.Date
}

func (s *Service) window(in AttendanceInput) (domain.Date, domain.Date, error) {
	to := in.To
	if to.IsZero() {
		to = s.today()
	}
	from := in.From
	if from.IsZero() {
		from = to.AddDays(-6)
	}

	var errs []domain.FieldError
	if from.After(to) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	} else if from.AddDays(MaxRangeDays).Before(to) {
		errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("range exceeds %d days", MaxRangeDays)})
	}
	if len(errs) > 0 {
		return domain.Date{}, domain.Date{}, &domain.ValidationError{Errors: errs}
	}
	return from, to, nil
}

// Attendance builds the hours report. Days with a clock-in but no clock-out
// count as open days and add no minutes.
func (s *Service) Attendance(ctx context.Context, in AttendanceInput) (AttendanceReport, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return AttendanceReport{}, err
	}
	from, to, err := s.window(in)
	if err != nil {
		return AttendanceReport{}, err
	}

	records, err := s.attendance.ListRange(ctx, ownerID, from, to)
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("list attendance: %w", err)
	}

	byEmployee := make(map[string]*EmployeeHours)
	for _, rec := range records {
		eh, ok := byEmployee[rec.EmployeeID]
		if !ok {
			eh = &EmployeeHours{EmployeeID: rec.EmployeeID, Name: rec.Name}
			byEmployee[rec.EmployeeID] = eh
		}
		switch rec.Status {
		case domain.AttendanceClockedOut:
			eh.DaysPresent++
			if mins, ok := domain.MinutesWorked(rec.ClockIn, rec.ClockOut); ok {
				eh.Minutes += mins
			}
		case domain.AttendanceClockedIn:
			eh.DaysPresent++
			eh.OpenDays++
		}
	}

	rep := AttendanceReport{From: from, To: to, Employees: make([]EmployeeHours, 0, len(byEmployee))}
	for _, eh := range byEmployee {
		eh.HoursWorked = domain.FormatMinutes(eh.Minutes)
		rep.TotalMinutes += eh.Minutes
		rep.Employees = append(rep.Employees, *eh)
	}
	slices.SortFunc(rep.Employees, func(a, b EmployeeHours) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.EmployeeID, b.EmployeeID))
	})
	rep.TotalHours = domain.FormatMinutes(rep.TotalMinutes)

	return rep, nil
}
