package gateway

import (
	"context"

	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// Login authenticates email and password and returns the principal with a fresh token.
func (g *Gateway) Login(ctx context.Context, email, password string) (dto.Result[*dto.AuthPayload], error) {
	return call(ctx, g, OpLogin, func(ctx context.Context) (*dto.AuthPayload, string, error) {
		payload, err := g.services.Auth.Login(ctx, email, password)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.UserLoggedIn, payload.User.ID, payload.User.ID, nil)
		return payload, "Login successful", nil
	})
}

// Register creates a principal and signs it in.
func (g *Gateway) Register(ctx context.Context, draft models.ProfileDraft, password string) (dto.Result[*dto.AuthPayload], error) {
	return call(ctx, g, OpRegister, func(ctx context.Context) (*dto.AuthPayload, string, error) {
		payload, err := g.services.Auth.Register(ctx, draft, password)
		if err != nil {
			return nil, "", err
		}
		g.publish(ctx, activity.UserRegistered, payload.User.ID, payload.User.ID,
			map[string]string{"role": string(payload.User.Role)})
		return payload, "Registration successful", nil
	})
}

// Logout revokes token.
func (g *Gateway) Logout(ctx context.Context, token string) (dto.Result[struct{}], error) {
	return call(ctx, g, OpLogout, func(ctx context.Context) (struct{}, string, error) {
		actor := ""
		if claims, err := g.services.Auth.Authenticate(ctx, token); err == nil {
			actor = claims.UserID
		}
		if err := g.services.Auth.Logout(ctx, token); err != nil {
			return struct{}{}, "", err
		}
		if actor != "" {
			g.publish(ctx, activity.UserLoggedOut, actor, actor, nil)
		}
		return struct{}{}, "Logged out", nil
	})
}
