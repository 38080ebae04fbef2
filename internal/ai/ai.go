package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/01moynul/taptosell-storefront/internal/commerce"
	"github.com/01moynul/taptosell-storefront/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const searchToolName = "search_products"

// maxToolTurns bounds the function-call loop of one conversation turn.
const maxToolTurns = 4

// ProductSearcher is the catalog lookup the assistant may run.
type ProductSearcher interface {
	ListProducts(ctx context.Context, q commerce.ProductQuery) (models.ProductPage, error)
}

// AssistantService holds the Gemini client used to answer shopper questions.
type AssistantService struct {
	Client    *genai.Client
	ModelName string
	StoreName string
}

// NewAssistantService initializes the Gemini client.
func NewAssistantService(ctx context.Context, apiKey, modelName, storeName string) (*AssistantService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash" // Fallback default
	}
	return &AssistantService{Client: client, ModelName: modelName, StoreName: storeName}, nil
}

// Close releases the Gemini client.
func (s *AssistantService) Close() error {
	return s.Client.Close()
}

// Answer replies to a shopper message in the given locale. The catalog is
// reachable through the search_products tool backed by searcher.
// It returns the reply and the total tokens used.
func (s *AssistantService) Answer(ctx context.Context, searcher ProductSearcher, locale, message string) (string, int, error) {
	model := s.Client.GenerativeModel(s.ModelName)
	model.Tools = []*genai.Tool{searchTool()}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(s.StoreName, locale))},
	}

	cs := model.StartChat()
	res, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", 0, fmt.Errorf("error sending message: %w", err)
	}
	totalTokens := usage(res, 0)

	// Loop for Function Calls
	for turn := 0; ; turn++ {
		if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
			return "", totalTokens, nil
		}
		part := res.Candidates[0].Content.Parts[0]

		funcCall, ok := part.(genai.FunctionCall)
		if !ok {
			return fmt.Sprintf("%v", part), totalTokens, nil
		}
		if funcCall.Name != searchToolName {
			return "", totalTokens, fmt.Errorf("unknown function: %s", funcCall.Name)
		}
		if turn >= maxToolTurns {
			return "", totalTokens, fmt.Errorf("assistant exceeded %d tool calls", maxToolTurns)
		}

		result := runSearch(ctx, searcher, funcCall.Args)
		res, err = cs.SendMessage(ctx, genai.FunctionResponse{
			Name:     searchToolName,
			Response: map[string]any{"result": result},
		})
		if err != nil {
			return "", totalTokens, fmt.Errorf("tool response error: %w", err)
		}
		totalTokens = usage(res, totalTokens)
	}
}

func usage(res *genai.GenerateContentResponse, current int) int {
	if res != nil && res.UsageMetadata != nil {
		// TotalTokenCount is cumulative for the chat request.
		return int(res.UsageMetadata.TotalTokenCount)
	}
	return current
}

func searchTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        searchToolName,
				Description: "Searches the store catalog and returns matching products with price and availability.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: "Free-text search, e.g. a product name or material.",
						},
						"category": {
							Type:        genai.TypeString,
							Description: "Optional category slug.",
						},
					},
					Required: []string{"query"},
				},
			},
		},
	}
}

func systemPrompt(storeName, locale string) string {
	lang := "English"
	if locale == "ar" {
		lang = "Arabic"
	}
	return fmt.Sprintf(`
		You are the shopping assistant of %s.
		Answer in %s. Be concise.
		Use search_products to look up products; never invent products, prices or stock.
		Only discuss this store's catalog, orders and policies.
	`, storeName, lang)
}

// productSummary is what the model sees for each search hit.
type productSummary struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	InStock  bool   `json:"inStock"`
	Variants int    `json:"variants"`
}

func runSearch(ctx context.Context, searcher ProductSearcher, args map[string]any) string {
	query, _ := args["query"].(string)
	category, _ := args["category"].(string)
	log.Printf("assistant: search_products q=%q category=%q", query, category)

	page, err := searcher.ListProducts(ctx, commerce.ProductQuery{Search: query, Category: category, PerPage: 5})
	if err != nil {
		return fmt.Sprintf("Search error: %v", err)
	}
	return summarize(page.Products)
}

func summarize(products []models.Product) string {
	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		inStock := p.StockQuantity > 0
		for _, v := range p.Variants {
			if v.StockQuantity > 0 {
				inStock = true
				break
			}
		}
		out = append(out, productSummary{
			Name:     p.Name,
			Slug:     p.Slug,
			Price:    p.Price.StringFixed(2),
			Currency: p.Currency,
			InStock:  inStock,
			Variants: len(p.Variants),
		})
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
