package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"backend/repository"
	"backend/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrContentNotConfigured = errors.New("content generator not configured")

const (
	contentMaxImageDim  = 1024
	contentJPEGQuality  = 80
	contentPromptFormat = `You are writing product copy for a fine jewelry storefront.
Look at the attached photos of the piece%s and reply with a single JSON object,
no markdown, with exactly these keys:
  "title": a short evocative product name (max 8 words),
  "description": 2-3 paragraphs of sales copy,
  "shortDescription": one sentence for listing cards,
  "tags": an array of 5-8 lowercase search tags.`
)

// ContentService generates product copy from photos with Gemini. Photos are
// downscaled and re-encoded before upload so a 12MP admin upload does not go
// over the wire raw.
type ContentService struct {
	ProductRepo *repository.ProductRepository
	model       *genai.GenerativeModel
}

func NewContentService(ctx context.Context, apiKey, modelName string, productRepo *repository.ProductRepository) (*ContentService, error) {
	s := &ContentService{ProductRepo: productRepo}
	if apiKey == "" {
		// admin endpoint answers 502 until a key is configured
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}
	s.model = client.GenerativeModel(modelName)
	return s, nil
}

type GeneratedContent struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Tags             []string `json:"tags"`
}

// GenerateForProduct sends the product photo (plus any extra uploads) through
// the compression pipeline and asks the model for storefront copy. With apply
// set, the generated fields are written back to the product.
func (s *ContentService) GenerateForProduct(ctx context.Context, productID uint, extraImages [][]byte, hint string, apply bool) (*GeneratedContent, error) {
	if s.model == nil {
		return nil, ErrContentNotConfigured
	}

	p, err := s.ProductRepo.FindByID(productID)
	if err != nil {
		return nil, errors.New("product not found")
	}

	images := make([][]byte, 0, len(extraImages)+1)
	if stored, err := s.ProductRepo.FindImage(productID); err == nil && len(stored.Image) > 0 {
		images = append(images, stored.Image)
	}
	images = append(images, extraImages...)
	if len(images) == 0 {
		return nil, errors.New("no images to describe")
	}

	hintText := ""
	if hint != "" {
		hintText = fmt.Sprintf(" (%s)", hint)
	}
	parts := []genai.Part{genai.Text(fmt.Sprintf(contentPromptFormat, hintText))}
	for _, raw := range images {
		compressed, mime, err := utils.CompressImage(raw, contentMaxImageDim, contentJPEGQuality)
		if err != nil {
			return nil, fmt.Errorf("compress image: %w", err)
		}
		parts = append(parts, genai.Blob{MIMEType: mime, Data: compressed})
	}

	resp, err := s.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no content returned from AI")
	}
	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("response part is not text, received %T", resp.Candidates[0].Content.Parts[0])
	}

	content, err := parseGeneratedContent(string(textPart))
	if err != nil {
		return nil, err
	}

	if apply {
		err := s.ProductRepo.Update(p.ID, map[string]any{
			"name":              content.Title,
			"description":       content.Description,
			"short_description": content.ShortDescription,
			"tags":              strings.Join(content.Tags, ","),
		})
		if err != nil {
			return nil, err
		}
	}
	return content, nil
}

// parseGeneratedContent tolerates the model wrapping its JSON in ``` fences
func parseGeneratedContent(reply string) (*GeneratedContent, error) {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		reply = strings.TrimPrefix(reply, "```json")
		reply = strings.TrimPrefix(reply, "```")
		reply = strings.TrimSuffix(reply, "```")
		reply = strings.TrimSpace(reply)
	}

	var content GeneratedContent
	if err := json.Unmarshal([]byte(reply), &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AI response: %w", err)
	}
	if content.Title == "" && content.Description == "" {
		return nil, errors.New("AI response missing title and description")
	}
	return &content, nil
}
