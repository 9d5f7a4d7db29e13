package calendar

import (
	"context"

	domainRequest "control-horas/internal/domain/request"
)

type Entry struct {
	Name  string
	Hours float64
}

// DayGroup is one calendar date with its approved absences. Groups are
// ordered by first appearance in the sheet, not chronologically.
type DayGroup struct {
	Date    string
	Entries []Entry
}

type Usecase struct {
	requests domainRequest.Repository
}

func NewUsecase(requests domainRequest.Repository) *Usecase {
	return &Usecase{requests: requests}
}

// ApprovedByDate scans the full request table and groups Aprobado rows by
// requested date, preserving insertion order of dates and of entries
// within a date.
func (u *Usecase) ApprovedByDate(ctx context.Context) ([]DayGroup, error) {
	all, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, req := range all {
		if req.Status != domainRequest.StatusApproved {
			continue
		}
		i, ok := index[req.Date]
		if !ok {
			i = len(groups)
			index[req.Date] = i
			groups = append(groups, DayGroup{Date: req.Date})
		}
		groups[i].Entries = append(groups[i].Entries, Entry{Name: req.Employee, Hours: req.Hours})
	}
	return groups, nil
}
