package services

import (
	"context"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"google.golang.org/genai"
)

// Canned Arabic replies for the degraded paths. The assistant never surfaces
// a raw error to the shopper.
const (
	msgAssistantUnavailable = "عذراً، خدمة المساعد الذكي غير متوفرة حالياً (مفتاح API مفقود)."
	msgAssistantApology     = "واجهت مشكلة تقنية بسيطة، يرجى المحاولة مرة أخرى لاحقاً."
	msgAssistantNoAnswer    = "عذراً، لم أتمكن من فهم طلبك."
)

const assistantInstruction = `
أنت مساعد ذكي ومتخصص في "الورد الأبدي" (Eternal Roses) المصنوع من شرائط الستان.
اسمك "مساعد وردة".
دورك هو مساعدة العملاء في:
1. اختيار تنسيقات الألوان (مثلاً: ما الذي يليق مع الأحمر؟).
2. حساب الكميات (مثلاً: كم متر ستان أحتاج لعمل باقة من 50 وردة؟).
   (قاعدة عامة: الوردة الواحدة تستهلك حوالي 1.5 إلى 2 متر من الشريط مقاس 4 سم).
3. تقديم نصائح للصناعة والتغليف.

تحدث باللغة العربية بلهجة ودودة ومشجعة.
اجعل اجاباتك مختصرة ومفيدة.
لا تقترح شراء منتجات من خارج المتجر، ركز على الستان، الورق، السيقان، والشمع.
`

// AssistantService is the chat boundary: one free-text message in, one
// free-text reply out. Missing credentials and upstream failures both
// degrade to a canned Arabic string.
type AssistantService struct {
	logger *gecho.Logger
	client *genai.Client
	model  string
}

func NewAssistantService(logger *gecho.Logger, cfg *structs.Config) *AssistantService {
	as := &AssistantService{
		logger: logger,
		model:  cfg.Assistant.Model,
	}

	if cfg.Assistant.ApiKey == "" {
		logger.Warn("Assistant API key missing, chat assistant will answer with a canned reply")
		return as
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Assistant.ApiKey,
	})
	if err != nil {
		logger.Error("Failed to create assistant client", gecho.Field("error", err))
		return as
	}

	as.client = client
	return as
}

// Advise sends the shopper's message with the fixed system instruction and
// returns the model's reply, or a canned apology when anything goes wrong.
func (as *AssistantService) Advise(ctx context.Context, message string) string {
	if as.client == nil {
		return msgAssistantUnavailable
	}

	result, err := as.client.Models.GenerateContent(ctx,
		as.model,
		genai.Text(message),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(assistantInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		as.logger.Error("Assistant request failed", gecho.Field("error", err))
		return msgAssistantApology
	}

	if text := result.Text(); text != "" {
		return text
	}
	return msgAssistantNoAnswer
}
