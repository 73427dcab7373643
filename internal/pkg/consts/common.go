package consts

const (
	MimePrefixImage = "image"
	MimePrefixAudio = "audio"
	MimePrefixVideo = "video"
)

const (
	MaxPhotoSize      = 2 << 20  // 2MB
	MaxAttachmentSize = 15 << 20 // 15MB
	MaxFilesPerUpload = 5
)

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 8000
	MaxLocationLen    = 8192
	MaxCommentLen     = 2000
	MaxUpdateTitleLen = 160
	MaxUpdateLen      = 4000
)
