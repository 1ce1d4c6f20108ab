// Package importer pulls course readings in from an external mail/drive
// account. The portal only lists the candidates and downloads raw bytes; what
// it does with them (PutDocument) is the caller's business.
package importer

import "context"

// Attachment is one importable file as reported by the source.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// Source is an external account that holds candidate attachments.
type Source interface {
	ListAttachments(ctx context.Context) ([]Attachment, error)
	Download(ctx context.Context, id string) ([]byte, error)
}
