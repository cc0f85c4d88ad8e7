package caption

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gabrielcpmg93/sociarede/internal/config"

	"go.uber.org/zap"
)

// Outcome tags how a caption result was produced, so callers can tell
// "configured but failed" from "not configured" without matching strings.
type Outcome string

const (
	OutcomeGenerated     Outcome = "generated"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeFailed        Outcome = "failed"
	OutcomeEmpty         Outcome = "empty"
)

// Result always carries user-presentable text; failures degrade to a fixed
// fallback message instead of an error.
type Result struct {
	Text    string  `json:"text"`
	Outcome Outcome `json:"outcome"`
}

// Fallback messages, same language register as generated captions.
const (
	msgNotConfigured = "Chave de API não configurada."
	msgFailed        = "Erro ao conectar com a IA. Tente novamente mais tarde."
	msgEmpty         = "Não foi possível gerar a legenda."
)

// Client calls the Gemini generateContent endpoint. It performs exactly one
// request per Generate call and never retries.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	prompt  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		model:   cfg.GeminiModel,
		prompt:  cfg.CaptionPrompt,
		http: &http.Client{
			Timeout: time.Duration(cfg.CaptionTimeoutMs) * time.Millisecond,
		},
		log: logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate produces caption text for the image. Without an API key no
// network call is attempted.
func (c *Client) Generate(ctx context.Context, image []byte, mimeType string) Result {
	if c.apiKey == "" {
		c.log.Warn("caption generation skipped: api key not configured")
		return Result{Text: msgNotConfigured, Outcome: OutcomeNotConfigured}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: c.prompt},
			},
		}},
	})
	if err != nil {
		c.log.Error("caption request encode failed", zap.Error(err))
		return Result{Text: msgFailed, Outcome: OutcomeFailed}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error("caption request build failed", zap.Error(err))
		return Result{Text: msgFailed, Outcome: OutcomeFailed}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("caption request failed", zap.String("model", c.model), zap.Error(err))
		return Result{Text: msgFailed, Outcome: OutcomeFailed}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("caption service returned non-success",
			zap.String("model", c.model), zap.Int("status", resp.StatusCode))
		return Result{Text: msgFailed, Outcome: OutcomeFailed}
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.log.Error("caption response decode failed", zap.Error(err))
		return Result{Text: msgFailed, Outcome: OutcomeFailed}
	}

	text := extractText(decoded)
	if text == "" {
		return Result{Text: msgEmpty, Outcome: OutcomeEmpty}
	}
	return Result{Text: text, Outcome: OutcomeGenerated}
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
