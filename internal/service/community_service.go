package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cuiconnect/cuiconnect/internal/auditlog"
	"github.com/cuiconnect/cuiconnect/internal/directory"
	"github.com/cuiconnect/cuiconnect/internal/domain"
	"github.com/cuiconnect/cuiconnect/internal/notify"
	"github.com/cuiconnect/cuiconnect/internal/store"
)

// CommunityService creates societies, groups, and events, and fans
// announcements out to the affected inboxes.
type CommunityService struct {
	dir      *directory.Directory
	notifier *notify.Notifier
	audit    *auditlog.Log
	logger   *slog.Logger
}

// NewCommunityService creates a CommunityService.
func NewCommunityService(dir *directory.Directory, notifier *notify.Notifier, audit *auditlog.Log, logger *slog.Logger) *CommunityService {
	return &CommunityService{
		dir:      dir,
		notifier: notifier,
		audit:    audit,
		logger:   logger.With("component", "community_service"),
	}
}

// CreateSociety registers a new society owned by the given admin.
// Returns store.ErrNameExists if a society with that name already exists
// (case-insensitive).
func (s *CommunityService) CreateSociety(admin *domain.User, name, description, category string) (*domain.Society, error) {
	if s.dir.FindSocietyByName(name) != nil {
		return nil, store.ErrNameExists
	}
	soc, err := domain.NewSociety(name, description, category, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to create society: %w", err)
	}
	admin.SocietyAdmin.ManagedSocieties = append(admin.SocietyAdmin.ManagedSocieties, soc)
	s.dir.AddSociety(soc)
	s.logger.Info("society created", "society", soc.Name, "admin_id", admin.ID)
	s.audit.Record(fmt.Sprintf("%s created society: %s", admin.Name, soc.Name))
	return soc, nil
}

// CreateGroup registers a new study group with the creator as its first
// member. Returns store.ErrNameExists if a group with that name already
// exists (case-insensitive).
func (s *CommunityService) CreateGroup(creator *domain.User, name, description, category string) (*domain.Group, error) {
	if s.dir.FindGroupByName(name) != nil {
		return nil, store.ErrNameExists
	}
	g, err := domain.NewGroup(name, description, category, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	creator.Student.JoinedGroups = append(creator.Student.JoinedGroups, g)
	s.dir.AddGroup(g)
	s.logger.Info("group created", "group", g.Name, "creator_id", creator.ID)
	s.audit.Record(fmt.Sprintf("%s created group: %s", creator.Name, g.Name))
	return g, nil
}

// CreateSocietyEvent creates an event organized by the society, records
// it on the society and in the directory, and publishes an event
// announcement to the society's members.
func (s *CommunityService) CreateSocietyEvent(soc *domain.Society, title, description string, date time.Time, venue string) (*domain.Event, error) {
	e, err := domain.NewEvent(title, description, date, venue, soc.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	soc.Events = append(soc.Events, e)
	s.dir.AddEvent(e)

	ann := domain.NewAnnouncement(domain.AnnouncementEvent, "New Event: "+title,
		fmt.Sprintf("%s\nDate: %s\nVenue: %s", description, date.Format("2006-01-02"), venue),
		soc.Admin.ID)
	ann.Event = e
	s.PostAnnouncement(soc, ann)

	s.logger.Info("event created", "event", e.Title, "society", soc.Name)
	s.audit.Record(fmt.Sprintf("%s created event: %s for society %s", soc.Admin.Name, title, soc.Name))
	return e, nil
}

// CreateDepartmentEvent creates an event organized by the rep's
// department and notifies every student of that department.
func (s *CommunityService) CreateDepartmentEvent(rep *domain.User, title, description string, date time.Time, venue string) (*domain.Event, error) {
	if rep.DepartmentRep == nil {
		return nil, domain.ErrNotDepartmentRep
	}
	e, err := domain.NewEvent(title, description, date, venue, rep.DepartmentRep.Department+" Department")
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	s.dir.AddEvent(e)
	for _, student := range s.departmentStudents(rep.DepartmentRep.Department) {
		s.notifier.Send(student, "New department event: "+title)
	}
	s.logger.Info("department event created", "event", e.Title, "department", rep.DepartmentRep.Department)
	s.audit.Record(fmt.Sprintf("%s created department event: %s", rep.Name, title))
	return e, nil
}

// PostAnnouncement publishes the announcement, attaches it to the
// society, and notifies every member.
func (s *CommunityService) PostAnnouncement(soc *domain.Society, ann *domain.Announcement) {
	ann.Publish()
	soc.Announcements = append(soc.Announcements, ann)
	for _, member := range soc.Members {
		s.notifier.Send(member, fmt.Sprintf("New announcement from %s: %s", soc.Name, ann.Title))
	}
	s.logger.Info("announcement posted", "society", soc.Name, "title", ann.Title)
	s.audit.Record(fmt.Sprintf("Announcement posted: %s in society %s", ann.Title, soc.Name))
}

// BroadcastToDepartment notifies every student of the rep's department
// and returns how many were notified.
func (s *CommunityService) BroadcastToDepartment(rep *domain.User, title string) (int, error) {
	if rep.DepartmentRep == nil {
		return 0, domain.ErrNotDepartmentRep
	}
	students := s.departmentStudents(rep.DepartmentRep.Department)
	for _, student := range students {
		s.notifier.Send(student, "New department announcement: "+title)
	}
	s.logger.Info("department broadcast", "department", rep.DepartmentRep.Department, "recipients", len(students))
	s.audit.Record(fmt.Sprintf("%s posted department announcement: %s", rep.Name, title))
	return len(students), nil
}

// PostGroupMessage appends a chat message to the group. The sender must
// be a member.
func (s *CommunityService) PostGroupMessage(sender *domain.User, g *domain.Group, content string) (*domain.Message, error) {
	if !g.HasMember(sender) {
		return nil, ErrNotGroupMember
	}
	msg := domain.NewMessage(content, sender)
	g.Messages = append(g.Messages, msg)
	s.audit.Record(fmt.Sprintf("%s posted message in group: %s", sender.Name, g.Name))
	return msg, nil
}

// SearchStudentsBySkill returns students holding the given skill
// (case-insensitive), excluding the searcher.
func (s *CommunityService) SearchStudentsBySkill(skill string, searcher *domain.User) []*domain.User {
	var matches []*domain.User
	for _, student := range s.dir.Students() {
		if student != searcher && student.HasSkill(skill) {
			matches = append(matches, student)
		}
	}
	return matches
}

// UpcomingEvents returns the events whose date is not before now, in
// insertion order.
func (s *CommunityService) UpcomingEvents(now time.Time) []*domain.Event {
	var upcoming []*domain.Event
	for _, e := range s.dir.Events() {
		if !e.Date.Before(now) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming
}

// departmentStudents returns students of the given department,
// case-insensitive.
func (s *CommunityService) departmentStudents(department string) []*domain.User {
	var students []*domain.User
	for _, u := range s.dir.Students() {
		if strings.EqualFold(u.Student.Department, department) {
			students = append(students, u)
		}
	}
	return students
}
