package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// ListMentorshipRequests returns the requests principalID takes part in.
// An empty principalID returns every request.
func (g *Gateway) ListMentorshipRequests(ctx context.Context, principalID string) (dto.Result[[]*models.MentorshipRequest], error) {
	return call(ctx, g, OpListMentorship, func(ctx context.Context) ([]*models.MentorshipRequest, string, error) {
		reqs, err := g.services.Mentorship.ListRequests(ctx, principalID)
		return reqs, "", err
	})
}

// CreateMentorshipRequest submits a new request.
func (g *Gateway) CreateMentorshipRequest(ctx context.Context, draft models.MentorshipDraft) (dto.Result[*models.MentorshipRequest], error) {
	return call(ctx, g, OpCreateMentorship, func(ctx context.Context) (*models.MentorshipRequest, string, error) {
		req, err := g.services.Mentorship.CreateRequest(ctx, draft)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.MentorshipRequested, req.StudentID, req.ID, map[string]string{
			"mentorId": req.MentorID,
			"subject":  req.Subject,
		})
		return req, "Mentorship request submitted successfully", nil
	})
}

// UpdateMentorshipRequest moves a request to a new status on behalf of actorID.
// An empty actorID attributes the change to the mentor.
func (g *Gateway) UpdateMentorshipRequest(ctx context.Context, actorID, id string, patch models.MentorshipPatch) (dto.Result[*models.MentorshipRequest], error) {
	return call(ctx, g, OpUpdateMentorship, func(ctx context.Context) (*models.MentorshipRequest, string, error) {
		req, err := g.services.Mentorship.UpdateRequest(ctx, id, patch)
		if err != nil {
			return nil, "", err
		}
		if actorID == "" {
			actorID = req.MentorID
		}
		g.publish(ctx, activity.MentorshipUpdated, actorID, req.ID, map[string]string{
			"status":    string(req.Status),
			"studentId": req.StudentID,
		})
		return req, "Mentorship request updated successfully", nil
	})
}
