package models

import "time"

// SiteSettings is the global site configuration.
// At most one row exists, its identity is fixed (see controller/sitesettings.SingletonID).
type SiteSettings struct {
	// ID is the fixed singleton identity, the primary key makes a second row impossible.
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`

	SiteTitle   string `gorm:"size:100;not null"`
	Tagline     string `gorm:"size:200"`
	Description string `gorm:"type:text"`
	// Avatar is an optional file reference (path or URL).
	Avatar string `gorm:"size:255"`
	// ResumeFile is an optional file reference (path or URL).
	ResumeFile string `gorm:"size:255"`

	YearsExperience   uint
	ProjectsCompleted uint
	ClientsServed     uint

	GithubURL   string `gorm:"size:200"`
	LinkedinURL string `gorm:"size:200"`
	TwitterURL  string `gorm:"size:200"`

	Email    string `gorm:"size:254"`
	Phone    string `gorm:"size:20"`
	Whatsapp string `gorm:"size:20"`
	Location string `gorm:"size:100"`

	// MetaKeywords is a comma separated keyword list for the html meta tag.
	MetaKeywords string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the pluralized default.
func (SiteSettings) TableName() string {
	return "site_settings"
}
