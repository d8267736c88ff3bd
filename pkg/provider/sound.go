package provider

import (
	"context"

	"github.com/vincent-petithory/dataurl"
)

type SoundGenerator interface {
	GenerateSound(ctx context.Context, prompt string, options *SoundOptions) (*Sound, error)
}

type SoundOptions struct {
	Duration *float64
	Loop     *bool

	Format string
}

type Sound struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}

func (s *Sound) DataURL() string {
	return dataurl.New(s.Content, s.ContentType).String()
}
