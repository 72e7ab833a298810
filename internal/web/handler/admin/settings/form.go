package settings

import "github.com/devfolio/devfolio/internal/db/models"

// Form is the site settings edit form.
type Form struct {
	SiteTitle         string `form:"site_title"         validate:"required,max=100"`
	Tagline           string `form:"tagline"            validate:"max=200"`
	Description       string `form:"description"`
	Avatar            string `form:"avatar"             validate:"max=255"`
	ResumeFile        string `form:"resume_file"        validate:"max=255"`
	YearsExperience   uint   `form:"years_experience"`
	ProjectsCompleted uint   `form:"projects_completed"`
	ClientsServed     uint   `form:"clients_served"`
	GithubURL         string `form:"github_url"         validate:"omitempty,url,max=200"`
	LinkedinURL       string `form:"linkedin_url"       validate:"omitempty,url,max=200"`
	TwitterURL        string `form:"twitter_url"        validate:"omitempty,url,max=200"`
	Email             string `form:"email"              validate:"omitempty,email,max=254"`
	Phone             string `form:"phone"              validate:"max=20"`
	Whatsapp          string `form:"whatsapp"           validate:"max=20"`
	Location          string `form:"location"           validate:"max=100"`
	MetaKeywords      string `form:"meta_keywords"`
}

// FormFrom fills the form with a stored record.
func FormFrom(s *models.SiteSettings) Form {
	return Form{
		SiteTitle:         s.SiteTitle,
		Tagline:           s.Tagline,
		Description:       s.Description,
		Avatar:            s.Avatar,
		ResumeFile:        s.ResumeFile,
		YearsExperience:   s.YearsExperience,
		ProjectsCompleted: s.ProjectsCompleted,
		ClientsServed:     s.ClientsServed,
		GithubURL:         s.GithubURL,
		LinkedinURL:       s.LinkedinURL,
		TwitterURL:        s.TwitterURL,
		Email:             s.Email,
		Phone:             s.Phone,
		Whatsapp:          s.Whatsapp,
		Location:          s.Location,
		MetaKeywords:      s.MetaKeywords,
	}
}

// Model returns a record without identity, used to create the settings.
func (f *Form) Model() models.SiteSettings {
	return models.SiteSettings{
		SiteTitle:         f.SiteTitle,
		Tagline:           f.Tagline,
		Description:       f.Description,
		Avatar:            f.Avatar,
		ResumeFile:        f.ResumeFile,
		YearsExperience:   f.YearsExperience,
		ProjectsCompleted: f.ProjectsCompleted,
		ClientsServed:     f.ClientsServed,
		GithubURL:         f.GithubURL,
		LinkedinURL:       f.LinkedinURL,
		TwitterURL:        f.TwitterURL,
		Email:             f.Email,
		Phone:             f.Phone,
		Whatsapp:          f.Whatsapp,
		Location:          f.Location,
		MetaKeywords:      f.MetaKeywords,
	}
}

// Changes returns every form field keyed by column name, empty values included.
func (f *Form) Changes() map[string]interface{} {
	return map[string]interface{}{
		"site_title":         f.SiteTitle,
		"tagline":            f.Tagline,
		"description":        f.Description,
		"avatar":             f.Avatar,
		"resume_file":        f.ResumeFile,
		"years_experience":   f.YearsExperience,
		"projects_completed": f.ProjectsCompleted,
		"clients_served":     f.ClientsServed,
		"github_url":         f.GithubURL,
		"linkedin_url":       f.LinkedinURL,
		"twitter_url":        f.TwitterURL,
		"email":              f.Email,
		"phone":              f.Phone,
		"whatsapp":           f.Whatsapp,
		"location":           f.Location,
		"meta_keywords":      f.MetaKeywords,
	}
}
