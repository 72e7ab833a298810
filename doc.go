// Package main provides the entry point of devfolio, a personal portfolio web site.
// It serves the public home, about and contact pages with the fiber framework,
// stores site content and contact messages with gorm, and offers an admin
// interface to edit the content and read the messages.
package main
