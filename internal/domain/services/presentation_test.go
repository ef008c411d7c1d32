package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// MockSlideBuilder records builder calls
type MockSlideBuilder struct {
	mock.Mock
	slides int
}

func (m *MockSlideBuilder) AddTitleSlide(title, subtitle string) error {
	args := m.Called(title, subtitle)
	m.slides++
	return args.Error(0)
}

func (m *MockSlideBuilder) AddContentSlide(title string, bullets []string) error {
	args := m.Called(title, bullets)
	m.slides++
	return args.Error(0)
}

func (m *MockSlideBuilder) AddTextSlide(title, text string) error {
	args := m.Called(title, text)
	m.slides++
	return args.Error(0)
}

func (m *MockSlideBuilder) AddImageSlide(title, imagePath string, width, height float64) error {
	args := m.Called(title, imagePath, width, height)
	if args.Error(0) == nil {
		m.slides++
	}
	return args.Error(0)
}

func (m *MockSlideBuilder) SlideCount() int {
	return m.slides
}

func newInterpreter() *OutlineInterpreter {
	return NewOutlineInterpreter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOutlineInterpreter_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("title then slides in order", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		var order []string
		record := func(args mock.Arguments) { order = append(order, args.String(0)) }

		builder.On("AddTitleSlide", "T", "S").Run(record).Return(nil).Once()
		builder.On("AddContentSlide", "C", []string{"a", "b"}).Run(record).Return(nil).Once()
		builder.On("AddTextSlide", "X", "para").Run(record).Return(nil).Once()
		builder.On("AddImageSlide", "I", "pic.png", 2.0, 0.0).Run(record).Return(nil).Once()

		outline := entities.NewOutline("T", "S",
			entities.ContentSlide{Title: "C", Bullets: []string{"a", "b"}},
			entities.TextSlide{Title: "X", Text: "para"},
			entities.ImageSlide{Title: "I", ImagePath: "pic.png", Width: 2},
		)

		require.NoError(t, newInterpreter().Build(ctx, outline, builder))
		builder.AssertExpectations(t)
		assert.Equal(t, []string{"T", "C", "X", "I"}, order)
		assert.Equal(t, outline.SlideCount(), builder.SlideCount())
	})

	t.Run("no title", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		builder.On("AddTextSlide", "X", "y").Return(nil).Once()

		outline := &entities.Outline{Slides: []entities.SlideSpec{entities.TextSlide{Title: "X", Text: "y"}}}

		require.NoError(t, newInterpreter().Build(ctx, outline, builder))
		builder.AssertNotCalled(t, "AddTitleSlide", mock.Anything, mock.Anything)
		assert.Equal(t, 1, builder.SlideCount())
	})

	t.Run("empty outline", func(t *testing.T) {
		builder := &MockSlideBuilder{}

		require.NoError(t, newInterpreter().Build(ctx, &entities.Outline{}, builder))
		assert.Equal(t, 0, builder.SlideCount())
	})

	t.Run("pointer specs", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		builder.On("AddContentSlide", "P", []string{"x"}).Return(nil).Once()

		outline := &entities.Outline{Slides: []entities.SlideSpec{&entities.ContentSlide{Title: "P", Bullets: []string{"x"}}}}

		require.NoError(t, newInterpreter().Build(ctx, outline, builder))
		builder.AssertExpectations(t)
	})

	t.Run("invalid outline adds nothing", func(t *testing.T) {
		builder := &MockSlideBuilder{}

		outline := entities.NewOutline("T", "",
			entities.TextSlide{Title: "ok", Text: "fine"},
			entities.ImageSlide{Title: "broken"},
		)

		err := newInterpreter().Build(ctx, outline, builder)
		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 1, verr.Index)
		builder.AssertNotCalled(t, "AddTitleSlide", mock.Anything, mock.Anything)
		assert.Equal(t, 0, builder.SlideCount())
	})

	t.Run("stops at first builder failure", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		missing := entities.NewNotFoundError("open image", "missing.png", errors.New("no such file"))
		builder.On("AddImageSlide", "I", "missing.png", 0.0, 0.0).Return(missing).Once()

		outline := &entities.Outline{Slides: []entities.SlideSpec{
			entities.ImageSlide{Title: "I", ImagePath: "missing.png"},
			entities.TextSlide{Title: "never", Text: "reached"},
		}}

		err := newInterpreter().Build(ctx, outline, builder)
		require.Error(t, err)
		assert.True(t, entities.IsKind(err, entities.ErrorKindNotFound))
		assert.Contains(t, err.Error(), "slide 0 (image)")
		builder.AssertNotCalled(t, "AddTextSlide", mock.Anything, mock.Anything)
	})

	t.Run("title slide failure", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		builder.On("AddTitleSlide", "T", "").Return(errors.New("layout missing")).Once()

		err := newInterpreter().Build(ctx, entities.NewOutline("T", ""), builder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "adding title slide")
	})

	t.Run("cancelled context", func(t *testing.T) {
		builder := &MockSlideBuilder{}
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		outline := &entities.Outline{Slides: []entities.SlideSpec{entities.TextSlide{Title: "X", Text: "y"}}}

		err := newInterpreter().Build(cctx, outline, builder)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, builder.SlideCount())
	})

	t.Run("nil arguments", func(t *testing.T) {
		err := newInterpreter().Build(ctx, nil, &MockSlideBuilder{})
		assert.True(t, entities.IsKind(err, entities.ErrorKindValidation))

		err = newInterpreter().Build(ctx, &entities.Outline{}, nil)
		require.Error(t, err)
	})
}

func TestSampleOutlines(t *testing.T) {
	deck := SampleDeckOutline()
	require.NoError(t, deck.Validate())
	assert.Equal(t, 3, deck.SlideCount())

	outline := SampleJSONOutline()
	require.NoError(t, outline.Validate())
	assert.Equal(t, "My Presentation", outline.Title)
	assert.Equal(t, 4, outline.SlideCount())
}
