package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// VisionService calls the Gemini generateContent endpoint to turn a meal
// photo into a structured FoodAnalysis. A single opaque remote call: no
// retries, and a non-success response never reaches the store.
type VisionService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewVisionService() *VisionService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &VisionService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalysisMacros is the macronutrient block of an analysis result. Values
// are grams except calories (kcal), cholesterol and sodium (mg).
type AnalysisMacros struct {
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbohydrates      float64 `json:"carbohydrates"`
	TotalCarbs         float64 `json:"total_carbs"`
	DietaryFiber       float64 `json:"dietary_fiber"`
	NetCarbs           float64 `json:"net_carbs"`
	TotalFat           float64 `json:"total_fat"`
	SaturatedFat       float64 `json:"saturated_fat"`
	TransFat           float64 `json:"trans_fat"`
	MonounsaturatedFat float64 `json:"monounsaturated_fat"`
	PolyunsaturatedFat float64 `json:"polyunsaturated_fat"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`
	Sugar              float64 `json:"sugar"`
	AddedSugar         float64 `json:"added_sugar"`
}

type AnalysisMicros struct {
	VitaminA   float64 `json:"vitamin_a"`
	VitaminC   float64 `json:"vitamin_c"`
	VitaminD   float64 `json:"vitamin_d"`
	VitaminE   float64 `json:"vitamin_e"`
	VitaminK   float64 `json:"vitamin_k"`
	VitaminB1  float64 `json:"vitamin_b1_thiamine"`
	VitaminB2  float64 `json:"vitamin_b2_riboflavin"`
	VitaminB3  float64 `json:"vitamin_b3_niacin"`
	VitaminB5  float64 `json:"vitamin_b5_pantothenic_acid"`
	VitaminB6  float64 `json:"vitamin_b6_pyridoxine"`
	VitaminB7  float64 `json:"vitamin_b7_biotin"`
	VitaminB9  float64 `json:"vitamin_b9_folate"`
	VitaminB12 float64 `json:"vitamin_b12_cobalamin"`
	Calcium    float64 `json:"calcium"`
	Iron       float64 `json:"iron"`
	Magnesium  float64 `json:"magnesium"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Zinc       float64 `json:"zinc"`
	Copper     float64 `json:"copper"`
	Manganese  float64 `json:"manganese"`
	Selenium   float64 `json:"selenium"`
	Iodine     float64 `json:"iodine"`
	Chromium   float64 `json:"chromium"`
	Molybdenum float64 `json:"molybdenum"`
}

// FoodAnalysis is the flat transient shape the presentation layer works
// with, whether it came from a fresh inference or was rebuilt from a
// stored entry.
type FoodAnalysis struct {
	FoodName           string         `json:"food_name"`
	Description        string         `json:"description"`
	FoodCategory       string         `json:"food_category"`
	PortionSize        float64        `json:"portion_size"` // grams
	PortionDescription string         `json:"portion_description"`
	ConfidenceScore    float64        `json:"confidence_score"`
	Macronutrients     AnalysisMacros `json:"macronutrients"`
	Micronutrients     AnalysisMicros `json:"micronutrients"`
	HealthBenefits     []string       `json:"health_benefits"`
	Image              string         `json:"image,omitempty"`
}

const visionPrompt = `Analise esta imagem de alimento e forneça informações nutricionais abrangentes.

Instruções:
1. Forneça estimativas realistas baseadas em bancos de dados nutricionais científicos
2. Todos os valores nutricionais devem ser números decimais
3. portion_size deve ser em gramas
4. confidence_score deve ser entre 0.00 e 1.00
5. Valores de micronutrientes devem estar nas unidades corretas (mg, mcg, etc.)
6. Responda sempre em português brasileiro
7. Seja específico e preciso com os valores nutricionais
8. Responda apenas com um objeto JSON no formato {"foodAnalysis": {...}} com os campos
   food_name, description, food_category, portion_size, portion_description,
   confidence_score, macronutrients, micronutrients e health_benefits.`

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// splitDataURI separates "data:<mime>;base64,<data>" into its parts. Raw
// base64 without a data URI prefix is accepted and assumed to be JPEG.
func splitDataURI(image string) (mimeType, data string, err error) {
	if !strings.HasPrefix(image, "data:") {
		return "image/jpeg", image, nil
	}
	parts := strings.SplitN(image, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid data URI")
	}
	meta := strings.TrimPrefix(parts[0], "data:")
	mimeType = strings.SplitN(meta, ";", 2)[0]
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return mimeType, parts[1], nil
}

// Analyze sends the image to the vision model and decodes the structured
// analysis from its JSON answer.
func (s *VisionService) Analyze(imageBase64 string) (*FoodAnalysis, error) {
	mimeType, data, err := splitDataURI(imageBase64)
	if err != nil {
		return nil, err
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: visionPrompt}}},
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: "Analise esta imagem de alimento e forneça informações nutricionais abrangentes."},
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: data}},
			},
		}},
	}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)
	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse vision JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("vision API returned no candidates")
	}

	return DecodeFoodAnalysis([]byte(gr.Candidates[0].Content.Parts[0].Text))
}

// DecodeFoodAnalysis parses the model's JSON answer. Both the wrapped
// {"foodAnalysis": {...}} envelope and a bare analysis object are accepted.
func DecodeFoodAnalysis(raw []byte) (*FoodAnalysis, error) {
	var wrapped struct {
		FoodAnalysis *FoodAnalysis `json:"foodAnalysis"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.FoodAnalysis != nil && wrapped.FoodAnalysis.FoodName != "" {
		return wrapped.FoodAnalysis, nil
	}

	var fa FoodAnalysis
	if err := json.Unmarshal(raw, &fa); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	if fa.FoodName == "" {
		return nil, fmt.Errorf("analysis missing food_name")
	}
	return &fa, nil
}
