package handler

const (
	// BaseLayout is the layout of the public pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout of the admin pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a fiber.Router group.
	RouterRootPath = "/"

	// AdminPath is the prefix of every admin route.
	AdminPath = "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// LocalsCurrentUser is the fiber.Locals key of the logged in admin user.
	LocalsCurrentUser = "CurrentUser"

	// MsgRecordNotFound is shown for unknown ids in the admin interface.
	MsgRecordNotFound = "record not found"
)
