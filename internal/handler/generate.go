package handler

import (
	"net/http"
	"time"

	"github.com/NeerajSh-16/ai-mock-interviews/internal/question"
	"github.com/NeerajSh-16/ai-mock-interviews/pkg/model"
	"github.com/NeerajSh-16/ai-mock-interviews/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateInterview runs the full request pipeline: the caller is already
// authenticated by RequireAuth, the body is validated, a prompt is built,
// the generator is called and its output parsed, and the record is upserted
// under a fresh id.
func (app *Application) GenerateInterview(c *gin.Context) {
	claims := app.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req model.GenerateInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("malformed request body", "err", err)
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	prompt := question.BuildPrompt(req.Role, req.Level, req.Techstack, req.Type, req.Amount.String())

	text, err := app.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		app.Logger.Sugar().Errorw("question generation failed", "err", err)
		response.Internal(c, "question generation failed")
		return
	}

	questions, ok := question.Parse(text)
	if !ok {
		// Degrade rather than fail: persist the record with no questions
		// and keep the raw text around for diagnosis.
		app.Logger.Sugar().Warnw("unparsable generation output", "raw", text)
	}

	iv := &model.Interview{
		InterviewID: uuid.NewString(),
		Role:        req.Role,
		Type:        req.Type,
		Level:       req.Level,
		Techstack:   model.SplitTechstack(req.Techstack),
		Questions:   questions,
		UserID:      claims.UserID,
		Finalized:   true,
		CoverImage:  model.RandomCover(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := app.Interviews.Upsert(ctx, iv); err != nil {
		app.Logger.Sugar().Errorw("failed to save interview", "interview_id", iv.InterviewID, "err", err)
		response.Internal(c, "failed to save interview")
		return
	}

	if app.Cache != nil {
		app.Cache.Invalidate(ctx)
	}

	response.OK(c, gin.H{"interview_id": iv.InterviewID})
}

// CheckAuth validates the bearer credential and echoes the resolved subject.
func (app *Application) CheckAuth(c *gin.Context) {
	claims := app.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": claims.UserID})
}
