package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jeffstark223/vvu-src-senate/internal/model"
	"github.com/Jeffstark223/vvu-src-senate/pkg/mail"

	"github.com/gin-gonic/gin"
)

type MailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

type ContactHandler struct {
	mailer  MailSender
	options mail.ContactOptions
}

func NewContactHandler(mailer MailSender, options mail.ContactOptions) *ContactHandler {
	return &ContactHandler{mailer: mailer, options: options}
}

type contactRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	StudentID string `json:"studentId" form:"studentId"`
	Subject   string `json:"subject" form:"subject"`
	Message   string `json:"message" form:"message"`
}

func (h *ContactHandler) PostContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("invalid contact request", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
		return
	}

	submission := model.ContactSubmission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if !submission.Complete() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
		return
	}

	msg := mail.ComposeContact(submission, h.options)
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		slog.Error("error sending contact email", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send message. Try again later."})
		return
	}

	slog.Info("contact email sent", "request_id", requestID(c), "student_id", submission.StudentID)
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Message sent successfully!"})
}
