package homepage

import "github.com/devfolio/devfolio/internal/db/models"

// Defaults is the content stored on the first home page view.
func Defaults() models.HomePage {
	return models.HomePage{
		HeroTitle:        "Hi, I'm Riazul Islam",
		HeroSubtitle:     "Full Stack Developer",
		HeroDescription:  "I build exceptional and accessible digital experiences for the web.",
		HeroCTAText:      "Get In Touch",
		HeroCTALink:      "/contact/",
		AboutTitle:       "About Me",
		AboutContent:     "I'm a passionate full stack developer with expertise in modern web technologies.",
		SkillsTitle:      "My Skills",
		SkillsSubtitle:   "Technologies I work with",
		ProjectsTitle:    "Featured Projects",
		ProjectsSubtitle: "Some of my recent work",
		ContactTitle:     "Let's Work Together",
		ContactSubtitle:  "Have a project in mind? Let's discuss how we can help.",
		IsActive:         true,
	}
}
