package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"receipt-desk/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	gigaChatBaseURL  = "https://gigachat.devices.sberbank.ru/api/v1"
	gigaChatOAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
)

const extractionSystemInstruction = `You read deposit receipts and bank transfer confirmations.
Answer with a single JSON object and nothing else: {"amount": <number>, "company": "<name>"}.
amount is the deposited total without currency symbols. company is the receiving company;
use "UNKNOWN" when it cannot be determined.`

// GigaChatExtractor talks to GigaChat: images go through the Files API and a
// vision chat completion, plain text through the gigago client.
type GigaChatExtractor struct {
	client     *gigago.Client
	model      *gigago.GenerativeModel
	config     *config.GigaChatConfig
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
}

func NewGigaChatExtractor(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatExtractor, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = extractionSystemInstruction
	model.Temperature = 0.1

	httpClient := &http.Client{}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	e := &GigaChatExtractor{
		client:     client,
		model:      model,
		config:     cfg,
		httpClient: httpClient,
		baseURL:    gigaChatBaseURL,
		logger:     logger,
	}

	if _, err := e.refreshToken(ctx); err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("GigaChat extractor ready", zap.String("model", cfg.Model))
	return e, nil
}

// ExtractFromText asks the text model about a receipt whose text was read locally.
func (e *GigaChatExtractor) ExtractFromText(ctx context.Context, text, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt + "\n\nReceipt text:\n" + text},
	}

	resp, err := e.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from GigaChat")
	}

	return resp.Choices[0].Message.Content, nil
}

// ExtractFromImage uploads the image and asks the vision model about it.
func (e *GigaChatExtractor) ExtractFromImage(ctx context.Context, image []byte, fileName, mimeType, prompt string) (string, error) {
	fileID, err := e.uploadFile(ctx, image, fileName, mimeType)
	if err != nil {
		return "", err
	}

	requestBody := map[string]interface{}{
		"model": e.config.Model,
		"messages": []map[string]interface{}{
			{"role": "system", "content": extractionSystemInstruction},
			{
				"role":        "user",
				"content":     prompt,
				"attachments": []string{fileID},
			},
		},
		"temperature": 0.1,
		"stream":      false,
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := e.do(ctx, http.MethodPost, "/chat/completions", "application/json", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from vision model")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	e.logger.Debug("Vision answer received", zap.String("file_id", fileID), zap.Int("length", len(text)))
	return text, nil
}

func (e *GigaChatExtractor) uploadFile(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// "general" makes the file usable as a chat attachment
	if err := writer.WriteField("purpose", "general"); err != nil {
		return "", fmt.Errorf("failed to write purpose field: %w", err)
	}

	part, err := writer.CreatePart(map[string][]string{
		"Content-Type":        {mimeType},
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	resp, err := e.do(ctx, http.MethodPost, "/files", writer.FormDataContentType(), body.Bytes())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("empty file id in upload response")
	}

	return uploaded.ID, nil
}

// do sends an authorized request and retries once with a fresh token on 401.
func (e *GigaChatExtractor) do(ctx context.Context, method, path, contentType string, payload []byte) (*http.Response, error) {
	send := func(token string) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		return e.httpClient.Do(req)
	}

	e.mu.Lock()
	token := e.accessToken
	e.mu.Unlock()

	resp, err := send(token)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	token, err = e.refreshToken(ctx)
	if err != nil {
		return nil, err
	}
	resp, err = send(token)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return resp, nil
}

func (e *GigaChatExtractor) refreshToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("scope", e.config.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gigaChatOAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	rqUID := uuid.New().String()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	// the API key is already Base64-encoded
	req.Header.Set("Authorization", "Basic "+e.config.APIKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		e.logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("rq_uid", rqUID),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(body))
	}

	var oauth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauth); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauth.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	e.mu.Lock()
	e.accessToken = oauth.AccessToken
	e.mu.Unlock()

	return oauth.AccessToken, nil
}

func (e *GigaChatExtractor) Close() error {
	if e.client != nil {
		e.client.Close()
	}
	return nil
}
