package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/domain/notification"
)

// anomalyWindowDays is how far back the absence scan looks.
const anomalyWindowDays = 3

// anomalyThreshold is the absence count that makes the feed at all;
// highPriorityThreshold escalates the item.
const (
	anomalyThreshold      = 2
	highPriorityThreshold = 3
)

type Service struct {
	notification.ReadStateRepository
	attendance.AttendanceRepository
	leave.ApplicationRepository

	now func() time.Time
}

func NewService(readStateRepository notification.ReadStateRepository, attendanceRepository attendance.AttendanceRepository, applicationRepository leave.ApplicationRepository) *Service {
	return &Service{
		ReadStateRepository:   readStateRepository,
		AttendanceRepository:  attendanceRepository,
		ApplicationRepository: applicationRepository,
		now:                   time.Now,
	}
}

// Feed derives the admin notification list on every read: repeated absences
// over the last few days plus any leave applications still pending. Nothing
// pushes into this feed; deciding a leave simply makes its item disappear on
// the next pull.
func (s *Service) Feed(ctx context.Context) ([]notification.Notification, error) {
	now := s.now()
	since := now.AddDate(0, 0, -(anomalyWindowDays - 1)).Format("2006-01-02")

	absences, err := s.AttendanceRepository.AbsenceCounts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load absence counts: %w", err)
	}

	pending, err := s.ApplicationRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending leaves: %w", err)
	}

	readIDs, err := s.ReadStateRepository.ReadIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load read state: %w", err)
	}

	var feed []notification.Notification

	for _, a := range absences {
		if a.Count < anomalyThreshold {
			continue
		}
		priority := notification.PriorityMedium
		if a.Count >= highPriorityThreshold {
			priority = notification.PriorityHigh
		}
		id := fmt.Sprintf("absence-%s-%s", a.EmployeeID, since)
		feed = append(feed, notification.Notification{
			ID:           id,
			Type:         notification.TypeAttendanceAnomaly,
			Title:        "Repeated absences",
			Message:      fmt.Sprintf("%s was absent %d of the last %d days", a.EmployeeName, a.Count, anomalyWindowDays),
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			Priority:     priority,
			Read:         readIDs[id],
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for _, app := range pending {
		feed = append(feed, notification.Notification{
			ID:   app.ID,
			Type: notification.TypeLeaveRequest,
			Title: fmt.Sprintf("Leave request from %s",
				app.EmployeeName),
			Message: fmt.Sprintf("%s requested %s leave from %s to %s",
				app.EmployeeName, app.Type,
				app.StartDate.Format("2006-01-02"), app.EndDate.Format("2006-01-02")),
			EmployeeID:   app.EmployeeID,
			EmployeeName: app.EmployeeName,
			Priority:     notification.PriorityMedium,
			Read:         readIDs[app.ID],
			CreatedAt:    app.CreatedAt,
			UpdatedAt:    app.UpdatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if feed[i].Priority.Rank() != feed[j].Priority.Rank() {
			return feed[i].Priority.Rank() > feed[j].Priority.Rank()
		}
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	return feed, nil
}

func (s *Service) MarkRead(ctx context.Context, req notification.MarkReadRequest) error {
	if req.NotificationID == "" {
		return notification.ErrNotificationNotFound
	}
	if err := s.ReadStateRepository.MarkRead(ctx, req.NotificationID, req.Read); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
