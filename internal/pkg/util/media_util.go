package util

import (
	"io"
	"net/http"
	"strings"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// GetSafeContentType sniffs the real content type from the file header
// instead of trusting the client-declared mime. The reader is rewound
// afterwards.
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read file header")
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewind reader")
	}
	return http.DetectContentType(buf[:n]), nil
}

// GetImageDimensions decodes just enough of an image to report its size.
// The reader is rewound afterwards.
func GetImageDimensions(reader io.ReadSeeker) (int, int, error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return 0, 0, errors.Wrap(err, "decode image")
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return 0, 0, errors.Wrap(err, "rewind reader")
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// KindFromMime maps a mime type to the stored attachment kind.
func KindFromMime(mime string) string {
	switch {
	case strings.HasPrefix(mime, consts.MimePrefixImage):
		return "image"
	case strings.HasPrefix(mime, consts.MimePrefixAudio):
		return "audio"
	case strings.HasPrefix(mime, consts.MimePrefixVideo):
		return "video"
	default:
		return "other"
	}
}
