package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
)

const analystSystemPrompt = "You are an expert carbon analyst specializing in nature-based solutions. " +
	"Provide accurate, science-based assessments using available data."

const verifierSystemPrompt = "You are a carbon project verification expert. " +
	"Generate professional, detailed assessment reports following industry standards."

// OpenAIClient implements Estimator and ReportGenerator against the OpenAI
// chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI-backed estimator
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Estimate requests a carbon assessment from the model. Any transport or parse
// failure is returned wrapped in ErrCollaboratorUnavailable; the caller decides
// whether to fall back.
func (c *OpenAIClient) Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analystSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildEstimatePrompt(input)},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %v: %w", err, domainerrors.ErrCollaboratorUnavailable)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices: %w", domainerrors.ErrCollaboratorUnavailable)
	}

	result, err := parseEstimateResponse(resp.Choices[0].Message.Content)
	if err != nil {
		logger.Warn(ctx, "unparsable estimate from model", zap.Error(err))
		return nil, fmt.Errorf("parse estimate: %v: %w", err, domainerrors.ErrCollaboratorUnavailable)
	}
	result.ModelVersion = c.model
	return result, nil
}

// GenerateReport requests verification report content from the model.
func (c *OpenAIClient) GenerateReport(ctx context.Context, input ReportInput) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: verifierSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildReportPrompt(input)},
		},
		Temperature: 0.4,
		MaxTokens:   2500,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %v: %w", err, domainerrors.ErrCollaboratorUnavailable)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices: %w", domainerrors.ErrCollaboratorUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func buildEstimatePrompt(input EstimateInput) string {
	var b strings.Builder
	b.WriteString("Analyze the following carbon sequestration project and provide a detailed assessment:\n\n")
	fmt.Fprintf(&b, "Project Type: %s\n", input.ProjectType)
	fmt.Fprintf(&b, "Area Size: %s %s\n\n", input.AreaSize, input.AreaUnit)
	if obs := input.Observation; obs != nil {
		b.WriteString("Satellite Data:\n")
		fmt.Fprintf(&b, "- NDVI Value: %s\n", obs.NDVIValue)
		fmt.Fprintf(&b, "- Land Cover Classification: %s\n", obs.LandCoverClassification)
		fmt.Fprintf(&b, "- Cloud Cover: %s%%\n\n", obs.CloudCoverPercentage)
	}
	b.WriteString("Based on this information, please provide:\n")
	b.WriteString("1. Estimated carbon sequestration potential (in tons CO2e/year)\n")
	b.WriteString("2. Confidence score (0-100%)\n")
	b.WriteString("3. Recommended methodology\n")
	b.WriteString("4. Key data sources to consider\n\n")
	b.WriteString("Format your response as a JSON object with the following keys: ")
	b.WriteString("carbon_estimate, confidence_score, methodology, data_sources")
	return b.String()
}

func buildReportPrompt(input ReportInput) string {
	var b strings.Builder
	b.WriteString("Generate a comprehensive carbon project assessment report with the following information:\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", input.ProjectName)
	fmt.Fprintf(&b, "Project Type: %s\n", input.ProjectType)
	fmt.Fprintf(&b, "Location: Lat %s, Lng %s\n", input.LocationLat, input.LocationLng)
	fmt.Fprintf(&b, "Area: %s %s\n", input.AreaSize, input.AreaUnit)
	fmt.Fprintf(&b, "Start Date: %s\n\n", input.StartDate)
	b.WriteString("Assessment Results:\n")
	fmt.Fprintf(&b, "Carbon Estimate: %s tons CO2e\n", input.CarbonEstimate)
	fmt.Fprintf(&b, "Confidence Score: %s%%\n", input.ConfidenceScore)
	fmt.Fprintf(&b, "Methodology: %s\n\n", input.Methodology)
	b.WriteString("The report should include an executive summary, project description, ")
	b.WriteString("assessment methodology, carbon quantification, verification procedures, ")
	b.WriteString("risk assessment and a monitoring plan. ")
	b.WriteString("This report will be used for carbon credit verification purposes.")
	return b.String()
}

// rawEstimate tolerates both numeric and string-typed fields in model output.
type rawEstimate struct {
	CarbonEstimate  json.RawMessage `json:"carbon_estimate"`
	ConfidenceScore json.RawMessage `json:"confidence_score"`
	Methodology     string          `json:"methodology"`
	DataSources     json.RawMessage `json:"data_sources"`
}

func parseEstimateResponse(content string) (*EstimateResult, error) {
	// models occasionally wrap JSON in a markdown fence
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw rawEstimate
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}

	estimate, err := coerceDecimal(raw.CarbonEstimate)
	if err != nil {
		return nil, fmt.Errorf("carbon_estimate: %w", err)
	}
	confidence, err := coerceDecimal(raw.ConfidenceScore)
	if err != nil {
		return nil, fmt.Errorf("confidence_score: %w", err)
	}
	if confidence.IsNegative() || confidence.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("confidence_score %s out of range", confidence)
	}
	if !estimate.IsPositive() {
		return nil, fmt.Errorf("carbon_estimate %s not positive", estimate)
	}

	methodology := raw.Methodology
	if methodology == "" {
		methodology = "AI-based assessment"
	}

	dataSources := "{}"
	if len(raw.DataSources) > 0 {
		dataSources = string(raw.DataSources)
	}

	return &EstimateResult{
		CarbonEstimate:  estimate.Round(2),
		ConfidenceScore: confidence.Round(2),
		Methodology:     methodology,
		DataSources:     dataSources,
	}, nil
}

// coerceDecimal accepts either a JSON number or a string such as
// "5000 tons CO2e/year" and extracts the leading numeric value.
func coerceDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, fmt.Errorf("missing value")
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return decimal.NewFromFloat(num), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return decimal.Zero, fmt.Errorf("neither number nor string: %s", raw)
	}
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " %"); i > 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %q: %w", s, err)
	}
	return d, nil
}
