// ABOUTME: Built-in model definitions for the supported providers
// ABOUTME: Hugging Face router default, OpenAI and Gemini fallbacks; ad-hoc models for unknown IDs

package ai

// DefaultModelID is the Hugging Face hosted instruct model used when nothing overrides it.
const DefaultModelID = "mistralai/Mistral-7B-Instruct-v0.2"

// Built-in model definitions.
var (
	ModelMistral7BInstruct = Model{
		ID:              DefaultModelID,
		Name:            "Mistral 7B Instruct v0.2",
		Api:             ApiOpenAI,
		MaxTokens:       32768,
		MaxOutputTokens: 4096,
		BaseURL:         "https://router.huggingface.co",
	}

	ModelGPT4oMini = Model{
		ID:              "gpt-4o-mini",
		Name:            "GPT-4o Mini",
		Api:             ApiOpenAI,
		MaxTokens:       128000,
		MaxOutputTokens: 16384,
	}

	ModelGemini20Flash = Model{
		ID:              "gemini-2.0-flash",
		Name:            "Gemini 2.0 Flash",
		Api:             ApiGoogle,
		MaxTokens:       1000000,
		MaxOutputTokens: 8192,
	}
)

// BuiltinModels returns all built-in model definitions.
func BuiltinModels() []Model {
	return []Model{
		ModelMistral7BInstruct,
		ModelGPT4oMini,
		ModelGemini20Flash,
	}
}

var modelIndex = func() map[string]*Model {
	models := BuiltinModels()
	idx := make(map[string]*Model, len(models))
	for i := range models {
		idx[models[i].ID] = &models[i]
	}
	return idx
}()

// FindModel looks up a model by ID from the built-in list.
// Returns nil if not found.
func FindModel(id string) *Model {
	return modelIndex[id]
}

// ResolveModel returns a copy of the built-in model for id, or an ad-hoc
// definition on api when id is unknown (any hub model name is accepted).
func ResolveModel(id string, api Api) Model {
	if m := FindModel(id); m != nil && m.Api == api {
		return *m
	}
	return Model{
		ID:              id,
		Name:            id,
		Api:             api,
		MaxOutputTokens: 4096,
	}
}
