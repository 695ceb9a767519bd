package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Nomtt/knote-voice-backend/internal/catalog"
)

/*
Fake speech client used only by tests. It returns a canned transcript
and extraction payload instead of calling OpenAI.
*/
type FakeSpeechClient struct {
	transcript    string
	extraction    string
	transcribeErr error
	extractErr    error
}

func (f *FakeSpeechClient) Transcribe(ctx context.Context, audioPath, hint string) (string, error) {
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcript, nil
}

func (f *FakeSpeechClient) Extract(ctx context.Context, systemPrompt, transcript string) (string, error) {
	if f.extractErr != nil {
		return "", f.extractErr
	}
	return f.extraction, nil
}

func setupOrderTestRouter(repo catalog.Repository, client *FakeSpeechClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(repo, client, nil)
	handler := NewHandler(service)

	r.POST("/process_audio", handler.ProcessAudio)
	return r
}

func audioUploadRequest(t *testing.T) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "order.mp3")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("fake audio bytes"))
	writer.Close()

	req, _ := http.NewRequest("POST", "/process_audio", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestProcessAudio_Success(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	client := &FakeSpeechClient{
		transcript: "Add a lobster for fifty dollars",
		extraction: `{
			"intent": null,
			"global_command": null,
			"results": [
				{"action": "add", "item": "Lobster", "quantity": 1, "price": 50, "modifiers": []}
			]
		}`,
	}
	router := setupOrderTestRouter(repo, client)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, audioUploadRequest(t))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Intent != IntentTransaction {
		t.Errorf("expected TRANSACTION, got %q", resp.Intent)
	}
	if len(resp.Results) != 1 || !resp.Results[0].IsNew || resp.Results[0].Price != 50 {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}

	stored, _ := repo.Lookup(context.Background(), "lobster")
	if stored == nil {
		t.Fatal("expected auto-learned item in catalog")
	}
}

func TestProcessAudio_NoFile(t *testing.T) {
	router := setupOrderTestRouter(catalog.NewMemoryRepository(), &FakeSpeechClient{})

	req, _ := http.NewRequest("POST", "/process_audio", &bytes.Buffer{})
	req.Header.Set("Content-Type", "multipart/form-data")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProcessAudio_TranscriptionFailure(t *testing.T) {
	client := &FakeSpeechClient{transcribeErr: errors.New("whisper timeout")}
	router := setupOrderTestRouter(catalog.NewMemoryRepository(), client)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, audioUploadRequest(t))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestProcessAudio_MalformedExtraction(t *testing.T) {
	client := &FakeSpeechClient{
		transcript: "something",
		extraction: `not even json`,
	}
	repo := catalog.NewMemoryRepository()
	router := setupOrderTestRouter(repo, client)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, audioUploadRequest(t))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	items, _ := repo.List(context.Background())
	if len(items) != 0 {
		t.Fatal("validation failure must not mutate the catalog")
	}
}

func TestProcessAudio_CommandResponse(t *testing.T) {
	client := &FakeSpeechClient{
		transcript: "Checkout please",
		extraction: `{
			"intent": "SYSTEM",
			"global_command": "CHECKOUT",
			"results": [
				{"action": "add", "item": "Beef Burger", "quantity": 1, "price": null, "modifiers": []}
			]
		}`,
	}
	router := setupOrderTestRouter(catalog.NewMemoryRepository(), client)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, audioUploadRequest(t))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.GlobalCommand != CommandCheckout {
		t.Errorf("expected CHECKOUT, got %q", resp.GlobalCommand)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected no processed line items, got %+v", resp.Results)
	}
}
