package service

import (
	"fmt"
	"log/slog"

	"github.com/cuiconnect/cuiconnect/internal/auditlog"
	"github.com/cuiconnect/cuiconnect/internal/domain"
	"github.com/cuiconnect/cuiconnect/internal/notify"
)

// MembershipService implements the join/approve/reject/leave state
// machines for societies, groups, and event RSVPs.
//
// Society membership, per (society, student) pair:
//
//	NONE --RequestJoinSociety--> PENDING --ApproveRequest--> MEMBER --LeaveSociety--> NONE
//	PENDING --RejectRequest--> NONE
//
// There is no direct NONE->MEMBER transition and no MEMBER->PENDING
// transition. Group membership and event registration have no pending
// stage; join and RSVP are immediate and idempotent.
//
// All methods return false for state-conflict no-ops and mutate nothing
// in that case.
type MembershipService struct {
	notifier *notify.Notifier
	audit    *auditlog.Log
	logger   *slog.Logger
}

// NewMembershipService creates a MembershipService.
func NewMembershipService(notifier *notify.Notifier, audit *auditlog.Log, logger *slog.Logger) *MembershipService {
	return &MembershipService{
		notifier: notifier,
		audit:    audit,
		logger:   logger.With("component", "membership_service"),
	}
}

// RequestJoinSociety files a join application. It fails if the student is
// already a member or already pending; on success the society's admin is
// notified. Approval is a separate, later step.
func (s *MembershipService) RequestJoinSociety(student *domain.User, soc *domain.Society) bool {
	if student.Student == nil {
		return false
	}
	if soc.HasMember(student) || soc.HasPending(student) {
		return false
	}
	soc.PendingRequests = append(soc.PendingRequests, student)
	s.notifier.Send(soc.Admin, fmt.Sprintf("New join request for %s from %s", soc.Name, student.Name))
	s.logger.Info("join request filed", "society", soc.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("%s requested to join society: %s", student.Name, soc.Name))
	return true
}

// ApproveRequest moves a pending applicant into the member list and
// mirrors the membership on the student's joined-societies list. Valid
// only while the student is pending.
func (s *MembershipService) ApproveRequest(soc *domain.Society, student *domain.User) bool {
	if !soc.RemovePending(student) {
		return false
	}
	soc.Members = append(soc.Members, student)
	student.Student.JoinedSocieties = append(student.Student.JoinedSocieties, soc)
	s.notifier.Send(student, fmt.Sprintf("Your request to join %s has been APPROVED!", soc.Name))
	s.logger.Info("join request approved", "society", soc.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("Approved %s for %s", student.Name, soc.Name))
	return true
}

// RejectRequest removes a pending applicant without touching the member
// list. Valid only while the student is pending.
func (s *MembershipService) RejectRequest(soc *domain.Society, student *domain.User) bool {
	if !soc.RemovePending(student) {
		return false
	}
	s.notifier.Send(student, fmt.Sprintf("Your request to join %s was declined.", soc.Name))
	s.logger.Info("join request rejected", "society", soc.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("Rejected %s for %s", student.Name, soc.Name))
	return true
}

// LeaveSociety removes the student from the member list and mirrors the
// removal on the student's joined-societies list. Pending requests are
// unaffected; a pending student cannot "leave".
func (s *MembershipService) LeaveSociety(student *domain.User, soc *domain.Society) bool {
	if !soc.RemoveMember(student) {
		return false
	}
	if student.Student != nil {
		for i, joined := range student.Student.JoinedSocieties {
			if joined == soc {
				student.Student.JoinedSocieties = append(
					student.Student.JoinedSocieties[:i],
					student.Student.JoinedSocieties[i+1:]...)
				break
			}
		}
	}
	s.logger.Info("member left society", "society", soc.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("%s left society: %s", student.Name, soc.Name))
	return true
}

// JoinGroup adds the student to the group immediately; there is no
// pending stage. Joining twice is a no-op returning false.
func (s *MembershipService) JoinGroup(student *domain.User, g *domain.Group) bool {
	if student.Student == nil {
		return false
	}
	if g.HasMember(student) {
		return false
	}
	g.Members = append(g.Members, student)
	student.Student.JoinedGroups = append(student.Student.JoinedGroups, g)
	s.logger.Info("student joined group", "group", g.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("%s joined group: %s", student.Name, g.Name))
	return true
}

// LeaveGroup removes the student from the group and from the student's
// joined-groups list. Returns false if the student was not a member.
func (s *MembershipService) LeaveGroup(student *domain.User, g *domain.Group) bool {
	if !g.RemoveMember(student) {
		return false
	}
	if student.Student != nil {
		for i, joined := range student.Student.JoinedGroups {
			if joined == g {
				student.Student.JoinedGroups = append(
					student.Student.JoinedGroups[:i],
					student.Student.JoinedGroups[i+1:]...)
				break
			}
		}
	}
	s.logger.Info("student left group", "group", g.Name, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("%s left group: %s", student.Name, g.Name))
	return true
}

// RSVPEvent registers the student as an attendee and records the event in
// the student's personal RSVP list. Idempotent per student; on success the
// student receives a confirmation notification.
func (s *MembershipService) RSVPEvent(student *domain.User, e *domain.Event) bool {
	if student.Student == nil {
		return false
	}
	if e.HasAttendee(student) {
		return false
	}
	e.Attendees = append(e.Attendees, student)
	student.Student.EventRSVPs = append(student.Student.EventRSVPs, e)
	s.notifier.Send(student, "RSVP confirmed for: "+e.Title)
	s.logger.Info("rsvp recorded", "event", e.Title, "student_id", student.ID)
	s.audit.Record(fmt.Sprintf("%s RSVP'd to event: %s", student.Name, e.Title))
	return true
}
