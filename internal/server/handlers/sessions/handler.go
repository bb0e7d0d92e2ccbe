package sessions

import (
	"errors"
	"fmt"

	"github.com/careersim/gitcoach/internal/server/validation"
	"github.com/careersim/gitcoach/internal/sessions"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	sessionsSvc *sessions.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(sessionsSvc *sessions.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		sessionsSvc: sessionsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/sessions")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Delete("/:id", h.delete)
	r.Post("/:id/commands", validation.DecorateWithBodyEx(h.validator, h.command))
	r.Post("/:id/edits", validation.DecorateWithBodyEx(h.validator, h.edits))
}

//	@Summary		Create a practice session
//	@Description	Create a workspace with a fresh repository, optionally seeded with files and ticket context
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			session	body		POSTRequest	true	"Session creation request"
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/sessions [post]
//
// Create a session.
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	draft := sessions.SessionDraft{
		Title:       req.Title,
		TicketKey:   req.TicketKey,
		TicketTitle: req.TicketTitle,
		TicketType:  req.TicketType,
		Files:       req.Files,
	}

	session, err := h.sessionsSvc.Create(c.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newSessionResponse(session))
}

//	@Summary		List sessions
//	@Description	List practice sessions, newest first
//	@Tags			sessions
//	@Produce		json
//	@Success		200	{array}	SummaryResponse
//	@Router			/sessions [get]
//
// List sessions.
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.sessionsSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	return c.JSON(lo.Map(items, func(s sessions.Session, _ int) SummaryResponse { return newSummaryResponse(&s) }))
}

//	@Summary		Get a session
//	@Description	Get a session with its repository state and transcript
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	SessionResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/sessions/{id} [get]
//
// Get a session.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getSessionID(c)
	if err != nil {
		return err
	}

	session, err := h.sessionsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return c.JSON(newSessionResponse(session))
}

//	@Summary		Delete a session
//	@Tags			sessions
//	@Param			id	path	string	true	"Session ID"
//	@Success		204
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/sessions/{id} [delete]
//
// Delete a session.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getSessionID(c)
	if err != nil {
		return err
	}

	if delErr := h.sessionsSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete session: %w", delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

//	@Summary		Run a command
//	@Description	Run one terminal line against the session repository. Failed commands are returned with 200 and success=false
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			command	body		CommandRequest	true	"Terminal input"
//	@Success		200		{object}	ExecutionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/sessions/{id}/commands [post]
//
// Run a command.
func (h *Handler) command(c *fiber.Ctx, req *CommandRequest) error {
	id, err := getSessionID(c)
	if err != nil {
		return err
	}

	exec, err := h.sessionsSvc.Execute(c.Context(), id, req.Input)
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	return c.JSON(ExecutionResponse{
		IsCommand: exec.Command,
		Result:    exec.Result,
		State:     exec.Session.State,
	})
}

//	@Summary		Record file edits
//	@Description	Mark files as saved in the editor so they show up as modified or untracked
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Session ID"
//	@Param			edits	body		EditsRequest	true	"Edited paths"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/sessions/{id}/edits [post]
//
// Record file edits.
func (h *Handler) edits(c *fiber.Ctx, req *EditsRequest) error {
	id, err := getSessionID(c)
	if err != nil {
		return err
	}

	session, err := h.sessionsSvc.RecordEdits(c.Context(), id, req.Paths)
	if err != nil {
		return fmt.Errorf("failed to record edits: %w", err)
	}

	return c.JSON(newSessionResponse(session))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, sessions.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, sessions.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func getSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
