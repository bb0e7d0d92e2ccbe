package coach

import (
	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/careersim/gitcoach/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler serves the stateless advisory endpoints.
type Handler struct {
	validator *validator.Validate
}

func NewHandler(validator *validator.Validate) handler.Handler {
	return &Handler{
		validator: validator,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/coach")

	r.Get("/tips", h.tips)
	r.Get("/tips/:command", h.tip)
	r.Get("/conventions", h.conventions)
	r.Post("/validate/branch", validation.DecorateWithBodyEx(h.validator, h.validateBranch))
	r.Post("/validate/commit", validation.DecorateWithBodyEx(h.validator, h.validateCommit))
	r.Post("/suggestions", validation.DecorateWithBodyEx(h.validator, h.suggestions))
}

//	@Summary		List command tips
//	@Tags			coach
//	@Produce		json
//	@Success		200	{array}	gitsim.Tip
//	@Router			/coach/tips [get]
func (h *Handler) tips(c *fiber.Ctx) error {
	return c.JSON(gitsim.Tips())
}

//	@Summary		Get a command tip
//	@Tags			coach
//	@Produce		json
//	@Param			command	path		string	true	"Command name, e.g. commit"
//	@Success		200		{object}	gitsim.Tip
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/coach/tips/{command} [get]
func (h *Handler) tip(c *fiber.Ctx) error {
	tip, ok := gitsim.GetTip(gitsim.CommandKind(c.Params("command")))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown command")
	}

	return c.JSON(tip)
}

//	@Summary		Naming conventions
//	@Description	Branch prefixes and conventional commit types with best practices
//	@Tags			coach
//	@Produce		json
//	@Success		200	{object}	ConventionsResponse
//	@Router			/coach/conventions [get]
func (h *Handler) conventions(c *fiber.Ctx) error {
	return c.JSON(ConventionsResponse{
		Branches: gitsim.BranchNamingGuide(),
		Commits:  gitsim.CommitMessageGuide(),
	})
}

//	@Summary		Validate a branch name
//	@Tags			coach
//	@Accept			json
//	@Produce		json
//	@Param			branch	body		BranchRequest	true	"Branch name"
//	@Success		200		{object}	gitsim.Validation
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/coach/validate/branch [post]
func (h *Handler) validateBranch(c *fiber.Ctx, req *BranchRequest) error {
	return c.JSON(gitsim.ValidateBranchName(req.Name))
}

//	@Summary		Validate a commit message
//	@Tags			coach
//	@Accept			json
//	@Produce		json
//	@Param			commit	body		CommitRequest	true	"Commit message"
//	@Success		200		{object}	gitsim.Validation
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/coach/validate/commit [post]
func (h *Handler) validateCommit(c *fiber.Ctx, req *CommitRequest) error {
	return c.JSON(gitsim.ValidateCommitMessage(req.Message))
}

//	@Summary		Suggest names from a ticket
//	@Tags			coach
//	@Accept			json
//	@Produce		json
//	@Param			ticket	body		SuggestionRequest	true	"Ticket context"
//	@Success		200		{object}	SuggestionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/coach/suggestions [post]
func (h *Handler) suggestions(c *fiber.Ctx, req *SuggestionRequest) error {
	description := req.ChangeDescription
	if description == "" {
		description = req.TicketTitle
	}

	return c.JSON(SuggestionResponse{
		Branch: gitsim.SuggestBranchName(req.TicketKey, req.TicketTitle, req.TicketType),
		Commit: gitsim.SuggestCommitMessage(req.TicketKey, description, req.TicketType),
	})
}
