package llm_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wander/pkg/utils"
)

var Module = fx.Provide(providePlannerClient)

// providePlannerClient selects the planner backend at startup. OpenAI
// is the default; LLM_PROVIDER=gemini switches to Gemini.
func providePlannerClient() utils.PlannerClientInterface {
	if os.Getenv("LLM_PROVIDER") == "gemini" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required")
		}
		client, err := utils.NewGeminiPlannerClient(apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to create Gemini planner: %v", err)
		}
		return client
	}

	return utils.NewOpenAIPlannerClient()
}
