package models

type Repository struct {
	Name          string
	FullName      string
	DefaultBranch string
	Private       bool
	Archived      bool
}
