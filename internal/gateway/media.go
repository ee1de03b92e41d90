package gateway

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaUploader delegates file uploads to the media-hosting service and
// returns its response verbatim.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader) (*uploader.UploadResult, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds a long-lived client from a CLOUDINARY_URL
// style connection string.
func NewCloudinaryUploader(url string) (MediaUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader) (*uploader.UploadResult, error) {
	return u.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
}
