// internal/handler/http/comment_handler.go
package http

import "github.com/labstack/echo/v4"

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

func (h *CommentHandler) GetCommentIDs(c echo.Context) error {
	return errNotImplemented
}
