// Package homepage provides the admin views of the home page content records.
package homepage

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	controller "github.com/devfolio/devfolio/internal/db/controller/homepage"
	"github.com/devfolio/devfolio/internal/db/models"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/navigation"
	"github.com/devfolio/devfolio/internal/web/session"
)

const (
	// Path is the path to the home page list.
	Path = handler.AdminPath + "/homepage"

	// TemplateList is the name of the list template.
	TemplateList = "admin/homepage/list"

	// TemplateForm is the name of the edit template.
	TemplateForm = "admin/homepage/form"

	// MsgSaved confirms a stored form.
	MsgSaved = "Home page content saved."
)

// Service is the home page admin handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home page admin handler.
var Handler = Service{}

// Init initializes the home page admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
	app.Get(Path+"/:id/edit", s.Edit)
	app.Post(Path+"/:id", s.Update)
	app.Post(Path+"/:id/active", s.SetActive)

	return nil
}

// EditPath is the edit form of the record with the given id.
func EditPath(id uint64) string {
	return Path + "/" + strconv.FormatUint(id, 10) + "/edit"
}

func listNav() *navigation.Context {
	return navigation.NewAdminContext("Home Page", navigation.SectionHomePage, "list").
		AddBreadcrumb("Home Page", Path, true)
}

func editNav(page *models.HomePage) *navigation.Context {
	return navigation.NewAdminContext("Edit Home Page", navigation.SectionHomePage, "edit").
		AddBreadcrumb("Home Page", Path, false).
		AddBreadcrumb(page.HeroTitle, EditPath(page.ID), true)
}

// List renders the records with hero title, active flag and modification time.
func (s *Service) List(c *fiber.Ctx) error {
	params := handler.ParseListParams(c)
	active := handler.QueryBool(c, "is_active")

	flashes, err := session.Flashes(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash messages")
	}

	result, err := controller.List(s.db, controller.Query{
		Search:   params.Search,
		IsActive: active,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list home pages")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateList, fiber.Map{
			"Navigation": listNav(),
			"Error":      "Failed to load home pages",
			"Search":     params.Search,
			"Filter":     c.Query("is_active"),
		}, handler.AdminLayout)
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation": listNav(),
		"Flashes":    flashes,
		"Pages":      result.Items,
		"Pagination": result.Page,
		"Search":     params.Search,
		"Filter":     c.Query("is_active"),
		"PrimaryID":  controller.PrimaryID,
	}, handler.AdminLayout)
}

// Edit renders the edit form of one record.
func (s *Service) Edit(c *fiber.Ctx) error {
	page, ok, err := s.load(c)
	if !ok {
		return err
	}

	return c.Render(TemplateForm, fiber.Map{
		"Navigation": editNav(page),
		"Record":     page,
		"Form":       FormFrom(page),
	}, handler.AdminLayout)
}

// Update stores the edit form.
func (s *Service) Update(c *fiber.Ctx) error {
	page, ok, err := s.load(c)
	if !ok {
		return err
	}

	form := new(Form)

	render := func(status int, message interface{}) error {
		return c.Status(status).Render(TemplateForm, fiber.Map{
			"Navigation": editNav(page),
			"Record":     page,
			"Form":       form,
			"Error":      message,
		}, handler.AdminLayout)
	}

	if err = c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse home page form")

		return render(fiber.StatusBadRequest, "Invalid form data")
	}

	if err = handler.Validate.Struct(form); err != nil {
		return render(fiber.StatusBadRequest, handler.ValidationMessages(err))
	}

	if _, err = controller.Update(s.db, page.ID, form.Changes()); err != nil {
		log.Error().Err(err).Uint64("id", page.ID).Msg("failed to update home page")

		return render(fiber.StatusInternalServerError, "Failed to save home page")
	}

	log.Info().Uint64("id", page.ID).Msg("home page saved")

	if err = session.AddFlash(c, session.FlashSuccess, MsgSaved); err != nil {
		log.Error().Err(err).Msg("failed to store flash message")
	}

	return c.Redirect(Path)
}

// SetActive sets the is_active flag from the "value" form field.
func (s *Service) SetActive(c *fiber.Ctx) error {
	page, ok, err := s.load(c)
	if !ok {
		return err
	}

	value, err := strconv.ParseBool(c.FormValue("value"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid value")
	}

	if _, err = controller.SetActive(s.db, page.ID, value); err != nil {
		log.Error().Err(err).Uint64("id", page.ID).Msg("failed to set home page active flag")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save home page")
	}

	return c.Redirect(Path)
}

// load fetches the :id record. ok is false when a response was already written.
func (s *Service) load(c *fiber.Ctx) (*models.HomePage, bool, error) {
	id, valid := handler.ParamID(c)
	if !valid {
		return nil, false, handler.RenderNotFound(c)
	}

	page, err := controller.Get(s.db, id)
	if errors.Is(err, controller.ErrNotFound) {
		return nil, false, handler.RenderNotFound(c)
	}

	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to load home page")

		return nil, false, c.Status(fiber.StatusInternalServerError).SendString("Failed to load home page")
	}

	return page, true, nil
}
