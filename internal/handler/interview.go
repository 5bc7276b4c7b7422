package handler

import (
	"errors"
	"strconv"

	"github.com/NeerajSh-16/ai-mock-interviews/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const latestLimit = 20

func (app *Application) GetInterview(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "missing id")
		return
	}

	iv, err := app.Interviews.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "interview not found")
			return
		}
		app.Logger.Sugar().Errorw("failed to get interview", "id", id, "err", err)
		response.Internal(c, "internal error")
		return
	}

	response.OK(c, gin.H{"interview": iv})
}

func (app *Application) ListInterviews(c *gin.Context) {
	claims := app.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := max((page-1)*pageSize, 0)

	interviews, total, err := app.Interviews.ListByUser(c.Request.Context(), claims.UserID, pageSize, offset)
	if err != nil {
		app.Logger.Sugar().Errorw("failed to list interviews", "user_id", claims.UserID, "err", err)
		response.Internal(c, "internal error")
		return
	}

	response.OK(c, gin.H{
		"interviews": interviews,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}

// LatestInterviews returns recent finalized interviews from other users,
// through the redis cache when one is configured.
func (app *Application) LatestInterviews(c *gin.Context) {
	claims := app.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	ctx := c.Request.Context()
	if app.Cache != nil {
		if cached, ok := app.Cache.GetLatest(ctx, claims.UserID); ok {
			response.OK(c, gin.H{"interviews": cached})
			return
		}
	}

	interviews, err := app.Interviews.Latest(ctx, claims.UserID, latestLimit)
	if err != nil {
		app.Logger.Sugar().Errorw("failed to list latest interviews", "err", err)
		response.Internal(c, "internal error")
		return
	}

	if app.Cache != nil {
		app.Cache.SetLatest(ctx, claims.UserID, interviews)
	}

	response.OK(c, gin.H{"interviews": interviews})
}
