// Package navigation provides utilities for managing navigation state and breadcrumbs.
package navigation

// Sections of the admin interface.
const (
	SectionDashboard   = "dashboard"
	SectionSettings    = "settings"
	SectionHomePage    = "homepage"
	SectionSubmissions = "submissions"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is one entry of the admin sidebar.
type MenuItem struct {
	Title   string
	URL     string
	Section string
}

// Menu is the admin sidebar, in display order.
var Menu = []MenuItem{ //nolint:gochecknoglobals
	{Title: "Dashboard", URL: "/admin", Section: SectionDashboard},
	{Title: "Site Settings", URL: "/admin/settings", Section: SectionSettings},
	{Title: "Home Page", URL: "/admin/homepage", Section: SectionHomePage},
	{Title: "Contact Submissions", URL: "/admin/submissions", Section: SectionSubmissions},
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
	Menu          []MenuItem
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
		Menu:          Menu,
	}
}

// NewAdminContext creates a context whose breadcrumbs start at the dashboard.
func NewAdminContext(pageTitle, activeSection, activePage string) *Context {
	return NewContext(pageTitle, activeSection, activePage).
		AddBreadcrumb("Dashboard", Menu[0].URL, false)
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
