package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"
	"bytes"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	thumbMaxWidth  = 640
	thumbMaxHeight = 640
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 接收插图文件，存入对象存储并生成缩略图
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	// 缩略图生成失败不阻断上传，列表页回退到原图
	thumbKey := ""
	if _, err := reader.Seek(0, io.SeekStart); err == nil {
		if thumb, err := util.MakeThumbnail(reader, thumbMaxWidth, thumbMaxHeight); err == nil {
			thumbName := strings.TrimSuffix(objectName, ext) + "_thumb.jpg"
			thumbKey, err = minio.UploadFile(c.Request.Context(), thumbName, bytes.NewReader(thumb.Bytes()), int64(thumb.Len()), "image/jpeg")
			if err != nil {
				log.WarnContext(c.Request.Context(), "thumbnail upload failed", "err", err)
				thumbKey = ""
			}
		} else {
			log.WarnContext(c.Request.Context(), "thumbnail encode failed", "err", err)
		}
	}

	res := dto.MediaUploadDTO{
		ObjectName: fileKey,
		URL:        minio.GetPublicURL(fileKey),
		MimeType:   contentType,
		Size:       file.Size,
	}
	if thumbKey != "" {
		res.ThumbURL = minio.GetPublicURL(thumbKey)
	}

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, res)
}
