package handler

import (
	"context"

	"github.com/NeerajSh-16/ai-mock-interviews/internal/auth"
	"github.com/NeerajSh-16/ai-mock-interviews/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier checks a bearer credential against the identity provider.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// QuestionGenerator is the text-generation collaborator: prompt in, raw text out.
type QuestionGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// InterviewStore is the document store for interview records.
type InterviewStore interface {
	Upsert(ctx context.Context, iv *model.Interview) error
	GetByID(ctx context.Context, interviewID string) (*model.Interview, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Interview, int, error)
	Latest(ctx context.Context, excludeUserID string, limit int) ([]model.Interview, error)
}

// LatestCache is an optional read cache for the latest-interviews listing.
type LatestCache interface {
	GetLatest(ctx context.Context, userID string) ([]model.Interview, bool)
	SetLatest(ctx context.Context, userID string, items []model.Interview)
	Invalidate(ctx context.Context)
}

// Application bundles the collaborators every handler needs. All of them are
// constructed once at process start and injected here, never reached through
// package globals.
type Application struct {
	Logger     *zap.Logger
	Tokens     TokenVerifier
	Generator  QuestionGenerator
	Interviews InterviewStore
	Cache      LatestCache // nil disables caching
}

const claimsKey = "claims"

// ClaimsFromContext retrieves the verified claims set by RequireAuth.
func (app *Application) ClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
