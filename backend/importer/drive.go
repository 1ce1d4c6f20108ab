package importer

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Drive lists and downloads PDFs from a Google Drive account.
type Drive struct {
	svc *drive.Service
}

func NewDrive(ctx context.Context, credentialsFile string) (*Drive, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}
	return &Drive{svc: svc}, nil
}

// ListAttachments returns the account's PDFs, newest first.
func (d *Drive) ListAttachments(ctx context.Context) ([]Attachment, error) {
	list, err := d.svc.Files.List().
		Context(ctx).
		Q("mimeType = 'application/pdf' and trashed = false").
		OrderBy("modifiedTime desc").
		Fields("files(id, name, mimeType, size)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("drive list failed: %w", err)
	}

	atts := make([]Attachment, 0, len(list.Files))
	for _, f := range list.Files {
		atts = append(atts, Attachment{
			ID:       f.Id,
			Name:     f.Name,
			MimeType: f.MimeType,
			Size:     f.Size,
		})
	}
	return atts, nil
}

// Download fetches the raw bytes of one file.
func (d *Drive) Download(ctx context.Context, id string) ([]byte, error) {
	resp, err := d.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive download failed: %w", err)
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
