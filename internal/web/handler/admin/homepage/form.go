package homepage

import "github.com/devfolio/devfolio/internal/db/models"

// Form is the home page content edit form.
type Form struct {
	HeroTitle        string `form:"hero_title"        validate:"max=200"`
	HeroSubtitle     string `form:"hero_subtitle"     validate:"max=300"`
	HeroDescription  string `form:"hero_description"`
	HeroCTAText      string `form:"hero_cta_text"     validate:"max=50"`
	HeroCTALink      string `form:"hero_cta_link"     validate:"max=200"`
	AboutTitle       string `form:"about_title"       validate:"max=100"`
	AboutContent     string `form:"about_content"`
	SkillsTitle      string `form:"skills_title"      validate:"max=100"`
	SkillsSubtitle   string `form:"skills_subtitle"   validate:"max=200"`
	ProjectsTitle    string `form:"projects_title"    validate:"max=100"`
	ProjectsSubtitle string `form:"projects_subtitle" validate:"max=200"`
	ContactTitle     string `form:"contact_title"     validate:"max=100"`
	ContactSubtitle  string `form:"contact_subtitle"  validate:"max=200"`
	IsActive         bool   `form:"is_active"`
}

// FormFrom fills the form with a stored record.
func FormFrom(p *models.HomePage) Form {
	return Form{
		HeroTitle:        p.HeroTitle,
		HeroSubtitle:     p.HeroSubtitle,
		HeroDescription:  p.HeroDescription,
		HeroCTAText:      p.HeroCTAText,
		HeroCTALink:      p.HeroCTALink,
		AboutTitle:       p.AboutTitle,
		AboutContent:     p.AboutContent,
		SkillsTitle:      p.SkillsTitle,
		SkillsSubtitle:   p.SkillsSubtitle,
		ProjectsTitle:    p.ProjectsTitle,
		ProjectsSubtitle: p.ProjectsSubtitle,
		ContactTitle:     p.ContactTitle,
		ContactSubtitle:  p.ContactSubtitle,
		IsActive:         p.IsActive,
	}
}

// Changes returns every form field keyed by column name.
// An unchecked is_active box is not sent by browsers, so false is written explicitly.
func (f *Form) Changes() map[string]interface{} {
	return map[string]interface{}{
		"hero_title":        f.HeroTitle,
		"hero_subtitle":     f.HeroSubtitle,
		"hero_description":  f.HeroDescription,
		"hero_cta_text":     f.HeroCTAText,
		"hero_cta_link":     f.HeroCTALink,
		"about_title":       f.AboutTitle,
		"about_content":     f.AboutContent,
		"skills_title":      f.SkillsTitle,
		"skills_subtitle":   f.SkillsSubtitle,
		"projects_title":    f.ProjectsTitle,
		"projects_subtitle": f.ProjectsSubtitle,
		"contact_title":     f.ContactTitle,
		"contact_subtitle":  f.ContactSubtitle,
		"is_active":         f.IsActive,
	}
}
