package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// ListAlumni returns the alumni matching criteria in directory order.
func (g *Gateway) ListAlumni(ctx context.Context, criteria filters.AlumniCriteria) (dto.Result[[]*models.User], error) {
	return call(ctx, g, OpListAlumni, func(ctx context.Context) ([]*models.User, string, error) {
		users, err := g.services.Alumni.ListAlumni(ctx)
		if err != nil {
			return nil, "", err
		}
		return filters.Alumni(users, criteria), "", nil
	})
}

// GetAlumni returns one principal.
func (g *Gateway) GetAlumni(ctx context.Context, id string) (dto.Result[*models.User], error) {
	return call(ctx, g, OpGetAlumni, func(ctx context.Context) (*models.User, string, error) {
		user, err := g.services.Alumni.GetAlumni(ctx, id)
		return user, "", err
	})
}

// UpdateProfile merges patch into the profile of userID.
func (g *Gateway) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (dto.Result[*models.User], error) {
	return call(ctx, g, OpUpdateProfile, func(ctx context.Context) (*models.User, string, error) {
		user, err := g.services.Alumni.UpdateProfile(ctx, userID, patch)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.ProfileUpdated, userID, userID, nil)
		return user, "Profile updated successfully", nil
	})
}

// ListEvents returns every event.
func (g *Gateway) ListEvents(ctx context.Context) (dto.Result[[]*models.Event], error) {
	return call(ctx, g, OpListEvents, func(ctx context.Context) ([]*models.Event, string, error) {
		events, err := g.services.Event.ListEvents(ctx)
		return events, "", err
	})
}

// RegisterForEvent takes a seat at eventID for userID.
func (g *Gateway) RegisterForEvent(ctx context.Context, eventID, userID string) (dto.Result[*models.Event], error) {
	return call(ctx, g, OpRegisterForEvent, func(ctx context.Context) (*models.Event, string, error) {
		event, err := g.services.Event.RegisterForEvent(ctx, eventID, userID)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.EventRegistered, userID, eventID, nil)
		return event, "Successfully registered for event", nil
	})
}
