// Package models contains database model definitions.
//
// None of the models reference each other, every table is owned by exactly
// one controller package below internal/db/controller.
package models
