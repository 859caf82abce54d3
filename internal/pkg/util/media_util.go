package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 通过嗅探文件头判断 MIME 类型，不信任客户端声明
func GetSafeContentType(seeker io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := seeker.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// MakeThumbnail 生成等比缩略图并编码为 JPEG
func MakeThumbnail(src io.Reader, maxWidth, maxHeight int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	thumb := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf, nil
}
