package model

import "strings"

const (
	DocumentHandbook     = "handbook"
	DocumentConstitution = "constitution"
)

type Document struct {
	Name       string
	ObjectPath string
}

var documents = map[string]Document{
	DocumentHandbook:     {Name: DocumentHandbook, ObjectPath: "documents/student-handbook.pdf"},
	DocumentConstitution: {Name: DocumentConstitution, ObjectPath: "documents/src-constitution.pdf"},
}

// LookupDocument resolves a logical document name, ignoring case.
func LookupDocument(name string) (Document, bool) {
	doc, ok := documents[strings.ToLower(name)]
	return doc, ok
}

// filenameRules maps filename substrings to logical documents. Rules are
// checked in order, so "student" wins over "src" in "src-student-guide.pdf".
var filenameRules = []struct {
	document string
	patterns []string
}{
	{document: DocumentHandbook, patterns: []string{"handbook", "student"}},
	{document: DocumentConstitution, patterns: []string{"constitution", "src"}},
}

// ClassifyDocumentFilename infers which logical document an uploaded file
// replaces from its name.
func ClassifyDocumentFilename(filename string) (Document, bool) {
	lower := strings.ToLower(filename)
	for _, rule := range filenameRules {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return documents[rule.document], true
			}
		}
	}
	return Document{}, false
}
