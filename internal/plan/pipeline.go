/*
Package plan implements the nutrition-plan pipeline: prompt building,
the four sequential generation calls, tolerant parsing of the model's
free-text output, HTML rendering and handoff to the mailer.
*/
package plan

import (
	"context"

	"github.com/rs/zerolog/log"

	"eatreal-api/internal/mailer"
	"eatreal-api/internal/openai"
)

// Per-step output budgets. The meal plan is by far the largest
// section; the grocery list and tips are derived summaries.
const (
	maxTokensTargets     = 500
	maxTokensMealPlan    = 5000
	maxTokensGroceryList = 1000
	maxTokensPrepTips    = 1000
)

// Service drives one request through generation, parsing, rendering
// and delivery. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	completer openai.Completer
	mailer    mailer.Mailer
	logo      string
}

// NewService wires the pipeline's collaborators. logoBase64 may be
// empty when the asset is unavailable.
func NewService(completer openai.Completer, m mailer.Mailer, logoBase64 string) *Service {
	return &Service{
		completer: completer,
		mailer:    m,
		logo:      logoBase64,
	}
}

// Generate runs the full pipeline for one user and sends the
// resulting email. The four generation calls are strictly sequential
// and fail-fast: the grocery list prompt embeds the meal plan text,
// and no partial plan is ever sent.
func (s *Service) Generate(ctx context.Context, profile Profile, email string) error {
	targetsText, err := s.completer.Complete(ctx, TargetsPrompt(), maxTokensTargets)
	if err != nil {
		return &GenerationError{Step: StepTargets, Err: err}
	}
	log.Debug().Int("length", len(targetsText)).Msg("daily targets generated")

	mealPlanText, err := s.completer.Complete(ctx, MealPlanPrompt(profile), maxTokensMealPlan)
	if err != nil {
		return &GenerationError{Step: StepMealPlan, Err: err}
	}
	log.Debug().Int("length", len(mealPlanText)).Msg("meal plan generated")

	groceryText, err := s.completer.Complete(ctx, GroceryListPrompt(mealPlanText), maxTokensGroceryList)
	if err != nil {
		return &GenerationError{Step: StepGroceryList, Err: err}
	}
	log.Debug().Int("length", len(groceryText)).Msg("grocery list generated")

	tipsText, err := s.completer.Complete(ctx, PrepTipsPrompt(), maxTokensPrepTips)
	if err != nil {
		return &GenerationError{Step: StepPrepTips, Err: err}
	}
	log.Debug().Int("length", len(tipsText)).Msg("prep tips generated")

	doc := ParseDocument(targetsText, mealPlanText, groceryText, tipsText)
	html := RenderEmail(profile, doc, s.logo)

	if err := s.mailer.Send(email, html); err != nil {
		return &DeliveryError{Err: err}
	}

	log.Info().Str("recipient", email).Msg("nutrition plan delivered")
	return nil
}
