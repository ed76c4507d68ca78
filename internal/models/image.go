// internal/models/image.go
package models

type ImageSource string

const (
	ImageSourceGenerated ImageSource = "generated"
	ImageSourceUploaded  ImageSource = "uploaded"
)

// ImageAsset is an optimized campaign image. Data holds the re-encoded JPEG
// bytes; URL is set once the asset is stored.
type ImageAsset struct {
	ID      string      `json:"id"`
	Data    []byte      `json:"-"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Size    int         `json:"size"`
	Quality int         `json:"quality"`
	Source  ImageSource `json:"source"`
	URL     string      `json:"url,omitempty"`
}
