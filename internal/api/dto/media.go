package dto

// MediaUploadDTO 上传结果
type MediaUploadDTO struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	ThumbURL   string `json:"thumb_url"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`
}
