package dto

// EmailExport is the subject/body pair handed to the platform mail
// handler. The body is URL-escaped, ready for a mailto link.
type EmailExport struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DocumentExport carries the self-contained quote document and the fixed
// filename the client should save it under.
type DocumentExport struct {
	Filename string
	Content  []byte
}
