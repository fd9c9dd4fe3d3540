package model

import "strings"

type ContactSubmission struct {
	FirstName string
	LastName  string
	StudentID string
	Subject   string
	Message   string
}

func (s ContactSubmission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Complete reports whether every field carries a value.
func (s ContactSubmission) Complete() bool {
	return s.FirstName != "" && s.LastName != "" && s.StudentID != "" && s.Subject != "" && s.Message != ""
}
