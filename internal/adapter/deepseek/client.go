// Package deepseek implements the enrichment gateway against the DeepSeek
// chat-completions API. Every failure folds into an Enriched=false result;
// the prediction flow never sees an error from this package.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bracelet/internal/domain"

	"go.uber.org/zap"
)

const systemPrompt = "你是一位精通命理学、风水学和手串饰品的专家顾问，擅长根据用户的命理特征提供个性化的运势预测和手串饰品推荐。"

// Config holds the gateway connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns the standard DeepSeek endpoint settings.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://api.deepseek.com/v1",
		Model:   "deepseek-chat",
		Timeout: 30 * time.Second,
	}
}

// Client talks to a DeepSeek-compatible chat API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ domain.Enricher = (*Client)(nil)

// New creates a Client from the config.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig("").BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig("").Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig("").Timeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Enrich asks the model for an enriched prediction. Failures come back as
// Enriched=false with a reason; a reply that resists JSON parsing still
// counts as enriched and carries the parse error.
func (c *Client) Enrich(ctx context.Context, basic *domain.BasicPrediction) domain.EnrichedPrediction {
	if c.apiKey == "" {
		return domain.EnrichedPrediction{
			Enriched: false,
			Error:    "API密钥未配置",
			Message:  "无法连接到DeepSeek API，使用基本预测结果",
		}
	}

	content, err := c.complete(ctx, buildPrompt(basic), 2000)
	if err != nil {
		c.logger.Warn("enrichment failed", zap.Error(err))
		return domain.EnrichedPrediction{
			Enriched: false,
			Error:    err.Error(),
			Message:  "无法获取增强预测，使用基本预测结果",
		}
	}
	return parseEnrichedContent(content)
}

// Status checks gateway connectivity with a short test completion.
func (c *Client) Status(ctx context.Context) domain.EnrichmentStatus {
	if c.apiKey == "" {
		return domain.EnrichmentStatus{Success: false, Message: "API密钥未配置"}
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	content, err := c.complete(ctx, "你好，这是一个测试消息。请回复'DeepSeek API连接正常'。", 50)
	if err != nil {
		return domain.EnrichmentStatus{Success: false, Message: fmt.Sprintf("连接出错: %s", err)}
	}
	return domain.EnrichmentStatus{Success: true, Message: "连接成功", Response: content}
}

func (c *Client) complete(ctx context.Context, userPrompt string, maxTokens int) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("API请求失败: %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// buildPrompt renders the basic prediction into the enrichment request.
func buildPrompt(basic *domain.BasicPrediction) string {
	pillars, _ := json.Marshal(basic.FourPillars)
	return fmt.Sprintf(`
请根据以下用户信息，提供详细和个性化的命运预测和手串饰品推荐：

用户信息:
- 姓名: %s
- 性别: %s
- 出生日期: %s
- 生肖: %s
- 星座: %s
- 八字: %s
- 五行: %s
- 所求事项: %s
- 宗教信仰: %s

请提供以下内容:
1. 详细的流年运势分析，包括事业、财运、健康、感情等方面
2. 针对用户所求事项(%s)的深入建议
3. 个性化的手串饰品推荐，包括材质、颜色、配饰等
4. 佩戴手串的注意事项和增强效果的方法

请以JSON格式回复，包含以下字段:
- yearly_fortune: 流年运势分析
- purpose_advice: 所求事项建议
- bracelet_recommendation: 手串推荐
- usage_tips: 使用建议
`,
		basic.Name, basic.Gender, basic.BirthDate, basic.Zodiac, basic.StarSign,
		pillars, strings.Join(basic.Elements, ", "), basic.Purpose, basic.Religion,
		basic.Purpose,
	)
}

type enrichedPayload struct {
	YearlyFortune          string `json:"yearly_fortune"`
	PurposeAdvice          string `json:"purpose_advice"`
	BraceletRecommendation string `json:"bracelet_recommendation"`
	UsageTips              string `json:"usage_tips"`
}

// parseEnrichedContent extracts the structured reply: strict JSON first,
// then the outermost brace slice, then the whole text as the yearly
// outlook.
func parseEnrichedContent(content string) domain.EnrichedPrediction {
	trimmed := strings.TrimSpace(content)

	jsonStr := ""
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		jsonStr = trimmed
	} else if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start != -1 && start < end {
		jsonStr = content[start : end+1]
	}

	if jsonStr == "" {
		return domain.EnrichedPrediction{Enriched: true, YearlyFortune: content}
	}

	var payload enrichedPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return domain.EnrichedPrediction{
			Enriched: true,
			Error:    err.Error(),
			Message:  "解析增强内容出错",
		}
	}
	return domain.EnrichedPrediction{
		Enriched:               true,
		YearlyFortune:          payload.YearlyFortune,
		PurposeAdvice:          payload.PurposeAdvice,
		BraceletRecommendation: payload.BraceletRecommendation,
		UsageTips:              payload.UsageTips,
	}
}
