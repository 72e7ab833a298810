// Package contact handles the public contact form.
//
// A submission is answered in one of two modes, picked by ResolveOrigin:
// JSON for the page script, redirect or re-rendered form for plain posts.
package contact

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/controller/submission"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/session"
)

const (
	// Path is the path of the contact form.
	Path = handler.RootPath + "contact/"

	// SuccessPath is the confirmation page after a plain form post.
	SuccessPath = Path + "success/"

	// TemplateName is the name of the contact form template.
	TemplateName = "core/contact"

	// TemplateSuccess is the name of the confirmation template.
	TemplateSuccess = "core/contact_success"

	// MsgThankYou confirms a stored submission.
	MsgThankYou = "Thank you for your message! I'll get back to you soon."

	// MsgFailed is shown when a valid submission could not be stored.
	MsgFailed = "Sorry, your message could not be sent. Please try again later."
)

// Response is the JSON answer to script driven submissions.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

var submissions = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "devfolio_contact_submissions_total",
		Help: "Number of contact form submissions, by origin and result.",
	},
	[]string{"origin", "result"},
)

// outcome of one submission attempt.
type outcome struct {
	status  int
	success bool
	message string
	input   submission.Input
}

// Service is the contact handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
	app.Get(SuccessPath, s.Success)

	return nil
}

// Get renders the empty contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := handler.PageData(c, s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		return handler.RenderError(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	data["Form"] = submission.Input{}

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Post stores the submitted message.
func (s *Service) Post(c *fiber.Ctx) error {
	origin := ResolveOrigin(c)

	var in submission.Input
	if err := c.BodyParser(&in); err != nil {
		log.Debug().Err(err).Msg("failed to parse contact form")
	}

	_, err := submission.Submit(s.db, in)

	// the re-rendered form shows the trimmed values
	in.Trim()

	var result outcome

	switch {
	case err == nil:
		result = outcome{status: fiber.StatusOK, success: true, message: MsgThankYou}
	case errors.Is(err, submission.ErrValidation):
		result = outcome{status: fiber.StatusOK, message: submission.ErrValidation.Error(), input: in}
	default:
		log.Error().Err(err).Msg("failed to store contact submission")

		result = outcome{status: fiber.StatusInternalServerError, message: MsgFailed, input: in}
	}

	return s.respond(c, origin, result)
}

// respond writes the outcome in the mode the origin asks for.
func (s *Service) respond(c *fiber.Ctx, origin Origin, result outcome) error {
	label := "invalid"

	switch {
	case result.success:
		label = "stored"
	case result.status >= fiber.StatusInternalServerError:
		label = "failed"
	}

	submissions.WithLabelValues(origin.String(), label).Inc()

	if origin == OriginScript {
		resp := Response{Success: result.success}
		if result.success {
			resp.Message = result.message
		} else {
			resp.Error = result.message
		}

		return c.Status(result.status).JSON(resp)
	}

	if result.success {
		if err := session.AddFlash(c, session.FlashSuccess, result.message); err != nil {
			log.Error().Err(err).Msg("failed to store flash message")
		}

		return c.Redirect(SuccessPath)
	}

	data, err := handler.PageData(c, s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		data = fiber.Map{}
	}

	data["Form"] = result.input
	data["Flashes"] = append(flashesOf(data), session.Flash{Kind: session.FlashError, Message: result.message})
	data["Error"] = result.message

	return c.Status(result.status).Render(TemplateName, data, handler.BaseLayout)
}

// Success renders the confirmation page.
func (s *Service) Success(c *fiber.Ctx) error {
	data, err := handler.PageData(c, s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		return handler.RenderError(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	return c.Render(TemplateSuccess, data, handler.BaseLayout)
}

func flashesOf(data fiber.Map) []session.Flash {
	flashes, _ := data["Flashes"].([]session.Flash)

	return flashes
}
