// Package company holds the companies that can be assigned to a project.
package company

// Company is a client of the consulting platform. A company assigned to a
// project carries its own date range at each hierarchy level.
type Company struct {
	ID   int64
	Name string
	// Country is the ISO 3166-1 alpha-2 code, empty when unknown.
	Country string
}
