package models

import "time"

// HomePage holds the text blocks rendered on the public home page.
type HomePage struct {
	ID uint64 `gorm:"primaryKey"`

	HeroTitle       string `gorm:"size:200"`
	HeroSubtitle    string `gorm:"size:300"`
	HeroDescription string `gorm:"type:text"`
	HeroCTAText     string `gorm:"column:hero_cta_text;size:50"`
	HeroCTALink     string `gorm:"column:hero_cta_link;size:200"`

	AboutTitle   string `gorm:"size:100"`
	AboutContent string `gorm:"type:text"`

	SkillsTitle    string `gorm:"size:100"`
	SkillsSubtitle string `gorm:"size:200"`

	ProjectsTitle    string `gorm:"size:100"`
	ProjectsSubtitle string `gorm:"size:200"`

	ContactTitle    string `gorm:"size:100"`
	ContactSubtitle string `gorm:"size:200"`

	IsActive  bool `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
