package models

// UserProfile holds the display identity stored alongside the collections.
type UserProfile struct {
	Name   string
	Title  string
	Email  string
	Gender string
}
