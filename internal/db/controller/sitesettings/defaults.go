package sitesettings

import "github.com/devfolio/devfolio/internal/db/models"

// Defaults is the fallback profile stored on the very first page view.
func Defaults() models.SiteSettings {
	return models.SiteSettings{
		SiteTitle:         "Riazul Islam",
		Tagline:           "Full Stack Developer",
		Description:       "Passionate full stack developer specializing in Django, React, and modern web technologies.",
		YearsExperience:   5,
		ProjectsCompleted: 50,
		ClientsServed:     20,
		Email:             "contact@example.com",
		Phone:             "+1 (555) 123-4567",
		Location:          "San Francisco, CA",
	}
}
