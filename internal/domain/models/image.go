// internal/domain/models/image.go
package models

// Image is an uploaded media file. The binary lives in file storage
// under Filename; URL is the public path the site uses. Images have
// no active flag: deletion is hard and also removes the binary.
type Image struct {
	Meta `bson:",inline"`

	Filename     string `bson:"filename" json:"filename"`
	OriginalName string `bson:"originalName" json:"originalName"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	URL          string `bson:"url" json:"url"`
	Size         int64  `bson:"size" json:"size"`
	MimeType     string `bson:"mimeType" json:"mimeType"`
}
