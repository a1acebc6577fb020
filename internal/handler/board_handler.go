package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bboard-api/internal/service"
)

// BoardHandler serves the HTML front of the bulletin board
type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// Index renders the announcement list, newest first
func (h *BoardHandler) Index(c *gin.Context) {
	announcements, err := h.boardService.ListAnnouncements(c.Request.Context())
	if err != nil {
		h.renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Announcements": announcements,
	})
}

// ShowAddForm renders the announcement submission form
func (h *BoardHandler) ShowAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_announcement.html", gin.H{})
}

// SubmitAnnouncement handles a posted announcement. Accepted
// submissions redirect to the list; rejected ones re-render the form
// with the rejection message and preserve no entered data
func (h *BoardHandler) SubmitAnnouncement(c *gin.Context) {
	req := &service.CreateAnnouncementRequest{
		Author: c.PostForm("author"),
		Title:  c.PostForm("title"),
		Text:   c.PostForm("text"),
	}

	_, err := h.boardService.CreateAnnouncement(c.Request.Context(), req)
	if err != nil {
		if isValidation(err) {
			c.HTML(http.StatusBadRequest, "add_announcement.html", gin.H{
				"FormError": userMessage(err),
			})
			return
		}
		h.renderServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowAnnouncement renders the detail view with comments, newest
// first. An unknown or malformed id redirects to the list
func (h *BoardHandler) ShowAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	announcement, err := h.boardService.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "announcement.html", gin.H{
		"Announcement": announcement,
	})
}

// SubmitComment handles a posted comment. Accepted submissions
// redirect back to the detail view; rejected ones re-render the detail
// view with the rejection message, still showing the announcement and
// its comments
func (h *BoardHandler) SubmitComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	req := &service.AddCommentRequest{
		Author: c.PostForm("author"),
		Text:   c.PostForm("text"),
	}

	_, err = h.boardService.AddComment(c.Request.Context(), id, req)
	if err == nil {
		c.Redirect(http.StatusFound, "/announcement/"+id.String()+"/")
		return
	}

	if !isValidation(err) {
		h.renderServerError(c, err)
		return
	}

	// The detail view's own lookup decides what happens when the
	// announcement itself is gone
	announcement, lookupErr := h.boardService.GetAnnouncement(c.Request.Context(), id)
	if lookupErr != nil {
		if isNotFound(lookupErr) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.renderServerError(c, lookupErr)
		return
	}

	c.HTML(http.StatusBadRequest, "announcement.html", gin.H{
		"Announcement": announcement,
		"FormError":    userMessage(err),
	})
}

// Delete removes an announcement and redirects to the list. Deleting
// an unknown id is not an error
func (h *BoardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.boardService.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		h.renderServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// NotFound renders the 404 page for unmatched routes
func (h *BoardHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}

// renderServerError logs the fault and renders the error page without
// leaking internal detail
func (h *BoardHandler) renderServerError(c *gin.Context, err error) {
	h.logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)

	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Server error",
		"Message": "Something went wrong. Please try again later.",
	})
}
