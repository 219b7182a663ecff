package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores sniffed images whole", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())
		content := pngHeader + strings.Repeat("x", 1000)

		var stored []byte
		st.On("UploadImage", ctx, "cover.png", mock.Anything, int64(len(content)), "image/png").
			Run(func(args mock.Arguments) {
				data, err := io.ReadAll(args.Get(2).(io.Reader))
				require.NoError(t, err)
				stored = data
			}).
			Return("covers/2026/10/x.png", "http://cdn/portfolio/covers/2026/10/x.png", nil)

		object, url, err := svc.Upload(ctx, "cover.png", strings.NewReader(content), int64(len(content)), "image/png")

		require.NoError(t, err)
		assert.Equal(t, "covers/2026/10/x.png", object)
		assert.Equal(t, "http://cdn/portfolio/covers/2026/10/x.png", url)
		assert.Equal(t, content, string(stored))
	})

	t.Run("extension follows content", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())
		st.On("UploadImage", ctx, "photo.jpg", mock.Anything, int64(5), "image/jpeg").
			Return("covers/2026/10/y.jpg", "http://cdn/y.jpg", nil)

		_, _, err := svc.Upload(ctx, "photo.svg", strings.NewReader("\xff\xd8\xff\xe0\x00"), 5, "image/svg+xml")

		require.NoError(t, err)
		st.AssertExpectations(t)
	})

	t.Run("rejects non-image bytes labelled as png", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())

		_, _, err := svc.Upload(ctx, "cover.png", strings.NewReader("<html><script>alert(1)</script>"), 31, "image/png")

		assert.ErrorIs(t, err, ErrInvalidImage)
		st.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects svg", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())
		svg := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`

		_, _, err := svc.Upload(ctx, "logo.svg", strings.NewReader(svg), int64(len(svg)), "image/svg+xml")

		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("storage failure", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())

		st.On("UploadImage", ctx, "a.gif", mock.Anything, int64(6), "image/gif").Return("", "", errors.New("bucket gone"))

		_, _, err := svc.Upload(ctx, "a.gif", strings.NewReader("GIF89a"), 6, "image/gif")

		assert.EqualError(t, err, "bucket gone")
	})
}

func TestImageService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes covers", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())
		st.On("DeleteImage", ctx, "covers/2026/10/x.png").Return(nil)

		require.NoError(t, svc.Delete(ctx, "covers/2026/10/x.png"))
		st.AssertExpectations(t)
	})

	t.Run("rejects names outside covers", func(t *testing.T) {
		st := new(MockStorage)
		svc := NewImageService(st, discardLogger())

		for _, name := range []string{"avatars/a.png", "covers/../secrets", "covers//x.png", ""} {
			assert.ErrorIs(t, svc.Delete(ctx, name), ErrInvalidObjectName, name)
		}
		st.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
	})
}
