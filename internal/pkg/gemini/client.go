package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const promptTemplate = `Parse the following text and extract employee details.
The text might contain names, designations (like Driver, Conductor), PEN numbers (ids), phone numbers, and status (permanent or badali).
If status is unclear, default to Permanent.
If PEN/ID is missing, leave it null.

Text to parse:
%q`

// Parser extracts employee records from free text with a Gemini model.
// The client is created on first use so a missing key never blocks startup.
type Parser struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

func NewParser(apiKey, model string) *Parser {
	if model == "" {
		model = DefaultModel
	}
	return &Parser{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (p *Parser) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if p.initErr != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", p.initErr)
	}
	return p.client, nil
}

func responseSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":        str,
				"designation": str,
				"type":        {Type: genai.TypeString, Enum: []string{"Permanent", "Badali"}},
				"phone":       str,
				"email":       str,
				"pen":         str,
			},
			Required: []string{"name", "type"},
		},
	}
}

// ParseEmployees implements importer.TextParser.
func (p *Parser) ParseEmployees(ctx context.Context, text string) ([]importer.ParsedEmployee, error) {
	if p.apiKey == "" {
		return nil, importer.ErrMissingAPIKey
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx,
		p.model,
		genai.Text(fmt.Sprintf(promptTemplate, text)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	return decodeEmployees(resp.Text())
}

// decodeEmployees reads the model's JSON array. Empty output means no records.
func decodeEmployees(raw string) ([]importer.ParsedEmployee, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []importer.ParsedEmployee{}, nil
	}

	var parsed []importer.ParsedEmployee
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode AI response: %w", err)
	}

	out := parsed[:0]
	for _, e := range parsed {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
