package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for product comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type createCommentRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// List returns a product's comments, newest first.
func (h *CommentHandler) List(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid product ID")
	}

	comments, err := h.uc.ListComments(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// Create adds a comment to a product.
func (h *CommentHandler) Create(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid product ID")
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Content:   req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}
