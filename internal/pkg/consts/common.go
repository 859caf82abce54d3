package consts

const (
	MimePrefixImage = "image"
)

const (
	MaxIllustrations = 5
)
