package order

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Nomtt/knote-voice-backend/internal/catalog"
	"github.com/Nomtt/knote-voice-backend/internal/speech"
)

// Archive receives a copy of the request audio for audit. Optional.
type Archive interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    catalog.Repository
	speech  speech.Client
	engine  *Engine
	archive Archive
}

// NewService wires the reconciliation pipeline. archive may be nil.
func NewService(repo catalog.Repository, client speech.Client, archive Archive) *Service {
	return &Service{
		repo:    repo,
		speech:  client,
		engine:  NewEngine(repo),
		archive: archive,
	}
}

// ProcessVoiceOrder runs the full pipeline for one uploaded recording:
// transcription, extraction, validation, reconciliation. The audio is
// spooled to a temp file that is removed on every exit path.
func (s *Service) ProcessVoiceOrder(ctx context.Context, audio io.Reader, filename string) (*Response, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".mp3"
	}

	tmp, err := os.CreateTemp("", "voice-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			// Cleanup failure must never mask the primary result
			log.Printf("failed to remove temp audio %s: %v", tmp.Name(), err)
		}
	}()

	if _, err := io.Copy(tmp, audio); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("spool audio upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("spool audio upload: %w", err)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	transcript, err := s.speech.Transcribe(ctx, tmp.Name(), speech.TranscriptionHint(names))
	if err != nil {
		return nil, &UpstreamError{Stage: "transcription", Err: err}
	}
	log.Printf("User said: %s", transcript)

	raw, err := s.speech.Extract(ctx, speech.ExtractionPrompt(names), transcript)
	if err != nil {
		return nil, &UpstreamError{Stage: "extraction", Err: err}
	}

	parsed, err := ParseExtraction([]byte(raw))
	if err != nil {
		return nil, err
	}

	resp, err := s.engine.Process(ctx, parsed)
	if err != nil {
		return nil, err
	}

	s.archiveAudio(ctx, tmp.Name(), ext)

	return resp, nil
}

// archiveAudio copies the recording to object storage, best-effort.
func (s *Service) archiveAudio(ctx context.Context, path, ext string) {
	if s.archive == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("audio archive skipped: %v", err)
		return
	}
	defer f.Close()

	key := fmt.Sprintf("voice/%s%s", uuid.New().String(), ext)
	url, err := s.archive.Upload(ctx, key, f, mime.TypeByExtension(ext))
	if err != nil {
		log.Printf("audio archive failed: %v", err)
		return
	}
	log.Printf("audio archived: %s", url)
}
