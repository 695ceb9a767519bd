package speech

import "context"

// Client is the boundary to the speech-understanding collaborators.
// Transcribe turns an audio file into a plain transcript; Extract
// turns a transcript into the strict-JSON order payload. Both are
// invoked once, sequentially, per request.
type Client interface {
	Transcribe(ctx context.Context, audioPath, hint string) (string, error)
	Extract(ctx context.Context, systemPrompt, transcript string) (string, error)
}
