package provider

import (
	"context"

	"github.com/vincent-petithory/dataurl"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice string
	Speed *float32

	Format string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}

// DataURL renders the audio as a self-describing inline string
// (data:<mediaType>;base64,<payload>).
func (s *Synthesis) DataURL() string {
	return dataurl.New(s.Content, s.ContentType).String()
}

type DialogSynthesizer interface {
	SynthesizeDialog(ctx context.Context, turns []DialogTurn, options *DialogOptions) (*Synthesis, error)
}

type DialogTurn struct {
	Voice string
	Text  string
}

type DialogOptions struct {
	Format string
}
