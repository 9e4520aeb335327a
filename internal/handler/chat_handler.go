package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/answer"
	"github.com/nadeen-odeh/dept-assistant-api/internal/dto"
	"github.com/nadeen-odeh/dept-assistant-api/internal/middleware"
	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/response"
)

// ChatHandler exposes the question answering and autocomplete endpoints.
type ChatHandler struct {
	chat    *service.ChatService
	courses *service.CourseService
	cache   *service.CacheService
	logger  *zap.Logger
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(chat *service.ChatService, courses *service.CourseService, cache *service.CacheService, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{chat: chat, courses: courses, cache: cache, logger: logger}
}

// Ask godoc
// @Summary Answer a free-text question
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Router /ask [post]
//
// The contract is chat-shaped: anything the student can act on comes back
// as status 200 with an HTML answer. Only missing fields and processing
// failures surface as HTTP errors, still carrying displayable HTML.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AskResponse{HTML: answer.MissingFields()})
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.YearbookID) == "" {
		c.JSON(http.StatusBadRequest, dto.AskResponse{HTML: answer.MissingFields()})
		return
	}

	html, err := h.chat.Ask(c.Request.Context(), req.YearbookID, req.Question)
	if err != nil {
		h.logger.Error("ask failed",
			zap.String("yearbook_id", req.YearbookID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.AskResponse{HTML: answer.ServerError()})
		return
	}
	c.JSON(http.StatusOK, dto.AskResponse{HTML: html})
}

// Suggest godoc
// @Summary Autocomplete course names and codes
// @Tags Chat
// @Produce json
// @Param yearbookId query string true "Yearbook"
// @Param q query string true "Partial query"
// @Success 200 {object} response.Envelope
// @Router /courses/suggest [get]
func (h *ChatHandler) Suggest(c *gin.Context) {
	yearbookID := strings.TrimSpace(c.Query("yearbookId"))
	query := strings.TrimSpace(c.Query("q"))
	if yearbookID == "" || query == "" {
		response.Error(c, errMissingParams("yearbookId", "q"))
		return
	}

	cacheKey := fmt.Sprintf("suggest:%s:%s", yearbookID, query)
	var cached dto.SuggestResponse
	if hit, _ := h.cache.Get(c.Request.Context(), cacheKey, &cached); hit {
		middleware.SetCacheHit(c, true)
		response.JSON(c, http.StatusOK, cached, middleware.ExtractMeta(c))
		return
	}

	suggestions, err := h.courses.Suggest(c.Request.Context(), yearbookID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := dto.SuggestResponse{Suggestions: suggestions}
	_ = h.cache.Set(c.Request.Context(), cacheKey, payload, 0)
	middleware.SetCacheHit(c, false)
	response.JSON(c, http.StatusOK, payload, middleware.ExtractMeta(c))
}
