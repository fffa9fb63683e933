package plan

import "fmt"

// Generation step names, used to tag which call in the pipeline
// failed.
const (
	StepTargets     = "daily targets"
	StepMealPlan    = "meal plan"
	StepGroceryList = "grocery list"
	StepPrepTips    = "prep tips"
)

// GenerationError means one of the four generation calls failed. The
// pipeline stops at the failing step; no later calls are issued.
type GenerationError struct {
	Step string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// DeliveryError means the plan was fully generated and rendered but
// the email could not be submitted.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send email: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
