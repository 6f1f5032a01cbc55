package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
	"hrportal/internal/utils"
)

// MeetingGateway is the slice of the HR backend the meeting screens use.
type MeetingGateway interface {
	CreateMeeting(ctx context.Context, in models.MeetingInput) (models.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, patch models.MeetingPatch) (models.Meeting, error)
	ShowMeeting(ctx context.Context, id string) (models.Meeting, error)
	StartMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error)
	EndMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error)
	InviteToMeeting(ctx context.Context, id string, in models.InviteInput) (models.Meeting, error)
	ListMeetings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.Meeting], error)
}

// meetingSortable whitelists the sort fields forwarded to the backend.
var meetingSortable = map[string]bool{
	"title":        true,
	"scheduled_at": true,
	"status":       true,
	"created_at":   true,
}

type MeetingService struct {
	Gateway   MeetingGateway
	RequestID string
}

func (s MeetingService) Create(ctx context.Context, in models.MeetingInput) (models.Meeting, error) {
	in.Title = utils.NormalizeSpace(in.Title)
	if err := in.Validate(); err != nil {
		return models.Meeting{}, err
	}
	m, err := s.Gateway.CreateMeeting(ctx, in)
	if err != nil {
		utils.LogError(s.RequestID, "meeting", "create", err)
		return models.Meeting{}, err
	}
	utils.LogEvent(s.RequestID, "meeting", "create", "meeting created", zap.String("meeting_id", m.ID))
	return m, nil
}

func (s MeetingService) Update(ctx context.Context, id string, patch models.MeetingPatch) (models.Meeting, error) {
	if err := requireID("meeting_id", id); err != nil {
		return models.Meeting{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Meeting{}, err
	}
	m, err := s.Gateway.UpdateMeeting(ctx, id, patch)
	if err != nil {
		utils.LogError(s.RequestID, "meeting", "update", err, zap.String("meeting_id", id))
		return models.Meeting{}, err
	}
	return m, nil
}

func (s MeetingService) Show(ctx context.Context, id string) (models.Meeting, error) {
	if err := requireID("meeting_id", id); err != nil {
		return models.Meeting{}, err
	}
	return s.Gateway.ShowMeeting(ctx, id)
}

// Start starts a meeting. Starting one that already started is not an error:
// the current meeting is refetched and returned unchanged with a notice.
func (s MeetingService) Start(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	return s.transition(ctx, "start", id, s.Gateway.StartMeeting)
}

// End mirrors Start for the end transition.
func (s MeetingService) End(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	return s.transition(ctx, "end", id, s.Gateway.EndMeeting)
}

func (s MeetingService) transition(
	ctx context.Context,
	action, id string,
	call func(context.Context, string) (domain.ActionResult[models.Meeting], error),
) (domain.ActionResult[models.Meeting], error) {
	if err := requireID("meeting_id", id); err != nil {
		return domain.ActionResult[models.Meeting]{}, err
	}
	res, err := call(ctx, id)
	if err != nil {
		utils.LogError(s.RequestID, "meeting", action, err, zap.String("meeting_id", id))
		return domain.ActionResult[models.Meeting]{}, err
	}
	switch res.Status {
	case domain.ActionAlreadyDone:
		utils.LogEvent(s.RequestID, "meeting", action, "transition already applied", zap.String("meeting_id", id))
		current, err := s.Gateway.ShowMeeting(ctx, id)
		if err != nil {
			return domain.ActionResult[models.Meeting]{}, err
		}
		res.Data = &current
	case domain.ActionError:
		utils.LogEvent(s.RequestID, "meeting", action, "transition refused", zap.String("meeting_id", id), zap.String("reason", res.Message))
	default:
		utils.LogEvent(s.RequestID, "meeting", action, "transition applied", zap.String("meeting_id", id))
	}
	return res, nil
}

func (s MeetingService) Invite(ctx context.Context, id string, in models.InviteInput) (models.Meeting, error) {
	if err := requireID("meeting_id", id); err != nil {
		return models.Meeting{}, err
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return models.Meeting{}, err
	}
	m, err := s.Gateway.InviteToMeeting(ctx, id, in)
	if err != nil {
		utils.LogError(s.RequestID, "meeting", "invite", err, zap.String("meeting_id", id))
		return models.Meeting{}, err
	}
	return m, nil
}

// List forwards paging and sort; the sort field must be whitelisted.
func (s MeetingService) List(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.Meeting], error) {
	if p.Sort != "" && !meetingSortable[p.Sort] {
		return domain.PageEnvelope[models.Meeting]{}, domain.ValidationError{Field: "sort", Msg: "unsupported sort field " + p.Sort}
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return s.Gateway.ListMeetings(ctx, p)
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: field, Msg: "is required"}
	}
	return nil
}
