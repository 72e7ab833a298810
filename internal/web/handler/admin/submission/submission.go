// Package submission provides the admin inbox of contact form submissions.
package submission

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	controller "github.com/devfolio/devfolio/internal/db/controller/submission"
	"github.com/devfolio/devfolio/internal/db/models"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/navigation"
	"github.com/devfolio/devfolio/internal/web/session"
)

const (
	// Path is the path to the submission inbox.
	Path = handler.AdminPath + "/submissions"

	// TemplateList is the name of the inbox template.
	TemplateList = "admin/submissions/list"

	// TemplateDetail is the name of the single submission template.
	TemplateDetail = "admin/submissions/detail"

	// MsgDeleted confirms a deleted submission.
	MsgDeleted = "Submission deleted."
)

// Service is the submission inbox handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the submission inbox handler.
var Handler = Service{}

// Init initializes the submission inbox handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Detail)
	app.Post(Path+"/:id/read", s.MarkRead)
	app.Post(Path+"/:id/delete", s.Delete)

	return nil
}

// DetailPath is the detail view of the submission with the given id.
func DetailPath(id uint64) string {
	return Path + "/" + strconv.FormatUint(id, 10)
}

// List renders the inbox, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	params := handler.ParseListParams(c)
	read := handler.QueryBool(c, "is_read")

	flashes, err := session.Flashes(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash messages")
	}

	nav := navigation.NewAdminContext("Contact Submissions", navigation.SectionSubmissions, "list").
		AddBreadcrumb("Contact Submissions", Path, true)

	result, err := controller.List(s.db, controller.Query{
		Search:   params.Search,
		IsRead:   read,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list submissions")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load submissions",
			"Search":     params.Search,
			"Filter":     c.Query("is_read"),
		}, handler.AdminLayout)
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation":  nav,
		"Flashes":     flashes,
		"Submissions": result.Items,
		"Pagination":  result.Page,
		"Search":      params.Search,
		"Filter":      c.Query("is_read"),
	}, handler.AdminLayout)
}

// Detail renders one submission.
func (s *Service) Detail(c *fiber.Ctx) error {
	sub, ok, err := s.load(c)
	if !ok {
		return err
	}

	flashes, err := session.Flashes(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash messages")
	}

	nav := navigation.NewAdminContext(sub.Subject, navigation.SectionSubmissions, "detail").
		AddBreadcrumb("Contact Submissions", Path, false).
		AddBreadcrumb(sub.Subject, DetailPath(sub.ID), true)

	return c.Render(TemplateDetail, fiber.Map{
		"Navigation": nav,
		"Flashes":    flashes,
		"Submission": sub,
	}, handler.AdminLayout)
}

// MarkRead sets the read flag from the "read" form field and returns to the detail view.
func (s *Service) MarkRead(c *fiber.Ctx) error {
	sub, ok, err := s.load(c)
	if !ok {
		return err
	}

	read, err := strconv.ParseBool(c.FormValue("read"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid read value")
	}

	if _, err = controller.MarkRead(s.db, sub.ID, read); err != nil {
		log.Error().Err(err).Uint64("id", sub.ID).Msg("failed to mark submission")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save submission")
	}

	log.Debug().Uint64("id", sub.ID).Bool("read", read).Msg("submission marked")

	return c.Redirect(DetailPath(sub.ID))
}

// Delete removes a submission and returns to the inbox.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, valid := handler.ParamID(c)
	if !valid {
		return handler.RenderNotFound(c)
	}

	err := controller.Delete(s.db, id)

	switch {
	case err == nil:
		log.Info().Uint64("id", id).Msg("submission deleted")

		if err = session.AddFlash(c, session.FlashSuccess, MsgDeleted); err != nil {
			log.Error().Err(err).Msg("failed to store flash message")
		}

		return c.Redirect(Path)
	case errors.Is(err, controller.ErrNotFound):
		return handler.RenderNotFound(c)
	default:
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete submission")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete submission")
	}
}

// load fetches the :id submission. ok is false when a response was already written.
func (s *Service) load(c *fiber.Ctx) (*models.ContactSubmission, bool, error) {
	id, valid := handler.ParamID(c)
	if !valid {
		return nil, false, handler.RenderNotFound(c)
	}

	sub, err := controller.Get(s.db, id)
	if errors.Is(err, controller.ErrNotFound) {
		return nil, false, handler.RenderNotFound(c)
	}

	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to load submission")

		return nil, false, c.Status(fiber.StatusInternalServerError).SendString("Failed to load submission")
	}

	return sub, true, nil
}
