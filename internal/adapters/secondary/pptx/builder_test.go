package pptx

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	b, err := New(append([]Option{WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	return b
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestNew(t *testing.T) {
	t.Run("blank deck", func(t *testing.T) {
		b := newTestBuilder(t)
		assert.Equal(t, 0, b.SlideCount())
		assert.Empty(t, b.Slides())
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := New(WithTemplate(filepath.Join(t.TempDir(), "nope.pptx")), WithLogger(quietLogger()))
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindNotFound))
	})

	t.Run("template is a directory", func(t *testing.T) {
		_, err := New(WithTemplate(t.TempDir()), WithLogger(quietLogger()))
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindNotFound))
	})

	t.Run("corrupt template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.pptx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o600))

		_, err := New(WithTemplate(path), WithLogger(quietLogger()))
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindFormat))
	})

	t.Run("template keeps its slides and layouts", func(t *testing.T) {
		dir := t.TempDir()
		base := newTestBuilder(t)
		require.NoError(t, base.AddTitleSlide("Brand", ""))
		templatePath, err := base.Save(filepath.Join(dir, "brand.pptx"))
		require.NoError(t, err)

		b := newTestBuilder(t, WithTemplate(templatePath))
		assert.Equal(t, 1, b.SlideCount())

		require.NoError(t, b.AddContentSlide("Agenda", []string{"one"}))
		assert.Equal(t, 2, b.SlideCount())
		assert.Equal(t, "Agenda", b.Slides()[1].Title)
	})

	t.Run("unknown configured layout", func(t *testing.T) {
		_, err := New(WithLayouts(entities.LayoutConfig{Title: "Does Not Exist"}), WithLogger(quietLogger()))
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindFormat))
		assert.Contains(t, err.Error(), "Does Not Exist")
	})
}

func TestBuilder_AddTitleSlide(t *testing.T) {
	t.Run("title and subtitle", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.AddTitleSlide("Quarterly Review", "Q3 2026"))

		slides := b.Slides()
		require.Len(t, slides, 1)
		assert.Equal(t, "Quarterly Review", slides[0].Title)
		assert.Equal(t, "Q3 2026", slides[0].Subtitle)
	})

	t.Run("subtitle omitted", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.AddTitleSlide("Only Title", ""))

		slides := b.Slides()
		require.Len(t, slides, 1)
		assert.Equal(t, "Only Title", slides[0].Title)
		assert.Empty(t, slides[0].Subtitle)
	})
}

func TestBuilder_StyleColors(t *testing.T) {
	t.Run("background and title color", func(t *testing.T) {
		b := newTestBuilder(t, WithStyle(entities.StyleConfig{BackgroundColor: "#F5F5F5", TitleColor: "1f4e79"}))
		require.NoError(t, b.AddTitleSlide("Styled", "Sub"))
		require.NoError(t, b.AddContentSlide("Points", []string{"a"}))

		for _, slide := range b.Slides() {
			assert.Equal(t, "F5F5F5", slide.Background, slide.Title)
			assert.Equal(t, "1F4E79", slide.TitleColor, slide.Title)
		}

		path, err := b.Save(filepath.Join(t.TempDir(), "styled.pptx"))
		require.NoError(t, err)

		saved, err := NewInspector().Inspect(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, "F5F5F5", saved[1].Background)
		assert.Equal(t, "1F4E79", saved[1].TitleColor)
		assert.Equal(t, "Points", saved[1].Title)
	})

	t.Run("no colors configured", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.AddTextSlide("Plain", "text"))

		slides := b.Slides()
		require.Len(t, slides, 1)
		assert.Empty(t, slides[0].Background)
		assert.Empty(t, slides[0].TitleColor)
	})
}

func TestBuilder_AddContentSlide(t *testing.T) {
	tests := []struct {
		name    string
		bullets []string
	}{
		{name: "ordered bullets", bullets: []string{"Point 1", "Point 2", "Point 3"}},
		{name: "duplicates kept", bullets: []string{"b", "a", "b"}},
		{name: "empty bullet text", bullets: []string{"", "x"}},
		{name: "no bullets", bullets: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			require.NoError(t, b.AddContentSlide("Content", tt.bullets))

			slides := b.Slides()
			require.Len(t, slides, 1)
			assert.Equal(t, "Content", slides[0].Title)
			require.Len(t, slides[0].Body, len(tt.bullets))
			for i, want := range tt.bullets {
				assert.Equal(t, want, slides[0].Body[i])
			}
		})
	}

	t.Run("repeated calls append independent slides", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.AddContentSlide("First", []string{"a"}))
		require.NoError(t, b.AddContentSlide("Second", []string{"b", "c"}))

		slides := b.Slides()
		require.Len(t, slides, 2)
		assert.Equal(t, []string{"a"}, slides[0].Body)
		assert.Equal(t, []string{"b", "c"}, slides[1].Body)
	})
}

func TestBuilder_AddTextSlide(t *testing.T) {
	b := newTestBuilder(t)
	text := "This is a test paragraph with some content."
	require.NoError(t, b.AddTextSlide("Test Text", text))

	slides := b.Slides()
	require.Len(t, slides, 1)
	assert.Equal(t, "Test Text", slides[0].Title)
	assert.Equal(t, []string{text}, slides[0].Body)
}

func TestBuilder_AddImageSlide(t *testing.T) {
	t.Run("embeds picture", func(t *testing.T) {
		dir := t.TempDir()
		img := writePNG(t, dir, "chart.png", 40, 20)

		b := newTestBuilder(t)
		require.NoError(t, b.AddImageSlide("Chart", img, 0, 0))

		slides := b.Slides()
		require.Len(t, slides, 1)
		assert.Equal(t, "Chart", slides[0].Title)
		assert.Equal(t, 1, slides[0].Pictures)
	})

	t.Run("missing image is reported before decoding", func(t *testing.T) {
		b := newTestBuilder(t)
		err := b.AddImageSlide("Chart", filepath.Join(t.TempDir(), "missing.png"), 0, 0)

		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindNotFound))
		assert.Contains(t, err.Error(), "missing.png")
		assert.Equal(t, 0, b.SlideCount())
	})

	t.Run("undecodable image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.png")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o600))

		b := newTestBuilder(t)
		err := b.AddImageSlide("Chart", path, 0, 0)

		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindFormat))
		assert.Equal(t, 0, b.SlideCount())
	})

	t.Run("picture is not embedded when the slide cannot be added", func(t *testing.T) {
		img := writePNG(t, t.TempDir(), "chart.png", 40, 20)

		b := newTestBuilder(t)
		b.layouts = map[layoutRole]int{roleImage: len(b.pres.SlideLayouts()) + 5}

		err := b.AddImageSlide("Chart", img, 0, 0)
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindFormat))
		assert.Contains(t, err.Error(), "add image slide")
		assert.Equal(t, 0, b.SlideCount())
		assert.Empty(t, b.pres.Images)
	})
}

func TestPictureSize(t *testing.T) {
	tests := []struct {
		name          string
		px            image.Point
		width, height float64
		wantW, wantH  float64
	}{
		{name: "defaults keep aspect", px: image.Pt(400, 200), wantW: 8, wantH: 4},
		{name: "explicit width", px: image.Pt(400, 200), width: 6, wantW: 6, wantH: 3},
		{name: "explicit height", px: image.Pt(400, 200), height: 2, wantW: 4, wantH: 2},
		{name: "both explicit", px: image.Pt(400, 200), width: 5, height: 5, wantW: 5, wantH: 5},
		{name: "unknown pixels", px: image.Point{}, wantW: 8, wantH: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := pictureSize(tt.px, tt.width, tt.height, 8)
			assert.InDelta(t, tt.wantW, w, 1e-9)
			assert.InDelta(t, tt.wantH, h, 1e-9)
		})
	}
}
