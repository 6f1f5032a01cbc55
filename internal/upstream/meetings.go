package upstream

import (
	"context"
	"net/http"

	"hrportal/internal/domain"
	"hrportal/internal/domain/models"
)

// Sentinels the backend puts in the "error" field of a 200 response.
const (
	SentinelAlreadyStarted = "already_started"
	SentinelAlreadyEnded   = "already_ended"
)

func (c *Client) CreateMeeting(ctx context.Context, in models.MeetingInput) (models.Meeting, error) {
	var m models.Meeting
	err := c.sendJSON(ctx, http.MethodPost, "/meetings", in, &m)
	return m, err
}

func (c *Client) UpdateMeeting(ctx context.Context, id string, patch models.MeetingPatch) (models.Meeting, error) {
	var m models.Meeting
	err := c.sendJSON(ctx, http.MethodPatch, "/meetings/"+escape(id), patch, &m)
	return m, err
}

func (c *Client) ShowMeeting(ctx context.Context, id string) (models.Meeting, error) {
	var m models.Meeting
	err := c.getJSON(ctx, "/meetings/"+escape(id), nil, &m)
	return m, err
}

func (c *Client) StartMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	raw, err := c.do(ctx, http.MethodPost, "/meetings/"+escape(id)+"/start", nil, nil)
	if err != nil {
		return domain.ActionResult[models.Meeting]{}, err
	}
	return decodeAction[models.Meeting](raw, SentinelAlreadyStarted, "Meeting has already started")
}

func (c *Client) EndMeeting(ctx context.Context, id string) (domain.ActionResult[models.Meeting], error) {
	raw, err := c.do(ctx, http.MethodPost, "/meetings/"+escape(id)+"/end", nil, nil)
	if err != nil {
		return domain.ActionResult[models.Meeting]{}, err
	}
	return decodeAction[models.Meeting](raw, SentinelAlreadyEnded, "Meeting has already ended")
}

func (c *Client) InviteToMeeting(ctx context.Context, id string, in models.InviteInput) (models.Meeting, error) {
	var m models.Meeting
	err := c.sendJSON(ctx, http.MethodPost, "/meetings/"+escape(id)+"/invite", in, &m)
	return m, err
}

func (c *Client) ListMeetings(ctx context.Context, p domain.ListParams) (domain.PageEnvelope[models.Meeting], error) {
	return listPage[models.Meeting](ctx, c, "/meetings", p)
}
