// Package domain holds what every entity package shares: the sentinel
// errors, ValidationError and the Action contract used by the unit of work.
// The entities themselves live in domain/company, domain/project and
// domain/schedule.
package domain
