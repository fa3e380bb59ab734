package contracts

import "context"

type MaskArchive interface {
	ArchiveMask(ctx context.Context, mask []byte, contentType string) (objectName string, err error)
	GetMaskUrl(ctx context.Context, objectName string) (string, error)
}
