package seed

import "github.com/devfolio/devfolio/internal/db/models"

// Profile is the site settings content written by init-site.
func Profile() models.SiteSettings {
	return models.SiteSettings{
		SiteTitle: "Riazul Islam",
		Tagline:   "Full Stack Developer",
		Description: "Passionate full stack developer specializing in Django, React, and modern web technologies. " +
			"I build exceptional and accessible digital experiences for the web.",
		Email:             "contact@devriazul.com",
		Phone:             "+1 (555) 123-4567",
		Location:          "San Francisco, CA",
		YearsExperience:   5,
		ProjectsCompleted: 50,
		ClientsServed:     20,
		GithubURL:         "https://github.com/riazul-islam",
		LinkedinURL:       "https://linkedin.com/in/riazul-islam",
		TwitterURL:        "https://twitter.com/riazul_islam",
		MetaKeywords:      "full stack developer, django, react, python, javascript, web development, portfolio",
	}
}

// HomeContent is the home page content written by init-site.
func HomeContent() models.HomePage {
	return models.HomePage{
		HeroTitle:    "Hi, I'm Riazul Islam",
		HeroSubtitle: "Full Stack Developer",
		HeroDescription: "I build exceptional and accessible digital experiences for the web. " +
			"Specializing in Django, React, and modern web technologies.",
		HeroCTAText: "Get In Touch",
		HeroCTALink: "/contact/",
		AboutTitle:  "About Me",
		AboutContent: "I'm a passionate full stack developer with over 5 years of experience in creating web applications. " +
			"My expertise spans across frontend and backend technologies, " +
			"with a focus on creating scalable and maintainable solutions.",
		SkillsTitle:      "My Skills",
		SkillsSubtitle:   "Technologies I work with",
		ProjectsTitle:    "Featured Projects",
		ProjectsSubtitle: "Some of my recent work",
		ContactTitle:     "Let's Work Together",
		ContactSubtitle:  "Have a project in mind? Let's discuss how we can help bring your ideas to life.",
		IsActive:         true,
	}
}
