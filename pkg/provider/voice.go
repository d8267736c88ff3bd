package provider

import (
	"context"
)

type VoiceCloner interface {
	CloneVoice(ctx context.Context, name string, samples []File, options *CloneOptions) (*Voice, error)
}

type CloneOptions struct {
	Description string

	Labels map[string]string
}

type VoiceDesigner interface {
	DesignVoice(ctx context.Context, description string, options *DesignOptions) ([]VoicePreview, error)
}

type VoiceLister interface {
	ListVoices(ctx context.Context) ([]Voice, error)
}

type DesignOptions struct {
	Text string
}

type Voice struct {
	ID   string
	Name string

	Description string
	Labels      map[string]string
}

type VoicePreview struct {
	ID string

	Content     []byte
	ContentType string
}
