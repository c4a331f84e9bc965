package openai

import (
    "context"
    "fmt"
    "strings"

    "github.com/google/uuid"
    "github.com/sashabaranov/go-openai"

    domainai "github.com/Prasun6736/Ai-image-Checker/internal/domain/ai"
    "github.com/Prasun6736/Ai-image-Checker/internal/imageutil"
    "github.com/Prasun6736/Ai-image-Checker/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
    *openai.Client
    apiKey string
    Model  string
}

func NewClient(apiKey, model string) *Client {
    return &Client{Client: openai.NewClient(apiKey), apiKey: apiKey, Model: model}
}

// Classify sends the image inline as a data URL together with the forensics
// prompts and returns the model's raw text reply. One fresh session id per
// call, never reused.
func (c *Client) Classify(ctx context.Context, image []byte) (string, error) {
    if c.apiKey == "" {
        return "", domainai.ErrMissingAPIKey
    }

    model := c.Model
    if model == "" {
        model = "gpt-4o"
    }

    dataURL := imageutil.DataURL(imageutil.SniffMIME(image), image)

    req := openai.ChatCompletionRequest{
        Model: model,
        User:  fmt.Sprintf("analysis-%s", uuid.New()),
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
            {
                Role: openai.ChatMessageRoleUser,
                MultiContent: []openai.ChatMessagePart{
                    {Type: openai.ChatMessagePartTypeText, Text: prompt.GetTaskPrompt()},
                    {
                        Type:     openai.ChatMessagePartTypeImageURL,
                        ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
                    },
                },
            },
        },
    }
    // For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
    if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
        req.MaxCompletionTokens = maxTokens
    } else {
        req.MaxTokens = maxTokens
    }

    resp, err := c.CreateChatCompletion(ctx, req)
    if err != nil {
        return "", fmt.Errorf("failed to create chat completion: %w", err)
    }
    if len(resp.Choices) == 0 {
        return "", fmt.Errorf("empty completion response")
    }

    return resp.Choices[0].Message.Content, nil
}
