package movie

import (
	"strings"
	"time"

	"cinema-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errs.New("movie duration must be positive")
	ErrTitleTooLong    = errs.New("movie title is too long (max 255 characters)")
)

const MaxTitleLength = 255

type Movie struct {
	id                uuid.UUID
	title             string
	duration          time.Duration
	requires3DGlasses bool
}

func NewMovie(id uuid.UUID, title string, duration time.Duration, requires3DGlasses bool) (*Movie, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	title = strings.TrimSpace(title)
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Movie{
		id:                id,
		title:             title,
		duration:          duration,
		requires3DGlasses: requires3DGlasses,
	}, nil
}

func (m *Movie) ID() uuid.UUID           { return m.id }
func (m *Movie) Title() string           { return m.title }
func (m *Movie) Duration() time.Duration { return m.duration }
func (m *Movie) Requires3DGlasses() bool { return m.requires3DGlasses }
