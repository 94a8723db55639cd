package model

// ModelID is the logical model identifier callers select from. It is
// independent of the provider-qualified string sent upstream.
type ModelID string

const (
	ModelAuto   ModelID = "auto"
	ModelGPT    ModelID = "gpt"
	ModelClaude ModelID = "claude"
	ModelLlama  ModelID = "llama"

	// ModelOffline is the sentinel reported by the degraded chat service when
	// no upstream credential is configured.
	ModelOffline ModelID = "offline"
)

// Valid reports whether m is one of the caller-selectable identifiers.
func (m ModelID) Valid() bool {
	switch m {
	case ModelAuto, ModelGPT, ModelClaude, ModelLlama:
		return true
	}
	return false
}

// Concrete reports whether m names a real upstream model rather than the
// auto-selection sentinel.
func (m ModelID) Concrete() bool {
	switch m {
	case ModelGPT, ModelClaude, ModelLlama:
		return true
	}
	return false
}

// ChatResult is the normalized outcome of one routed completion. Model is
// always the resolved concrete identifier, never ModelAuto.
type ChatResult struct {
	Content string
	Model   ModelID
}

// ModelInfo describes a selectable model for listing endpoints.
type ModelInfo struct {
	ID   ModelID
	Name string
}

type AutomationType string

const (
	AutomationEmail AutomationType = "email"
	AutomationTask  AutomationType = "task"
	AutomationSlack AutomationType = "slack"
)

// AutomationAction is a simulated side-effect record derived from keyword
// presence in the user message. Nothing external is ever invoked.
type AutomationAction struct {
	Type    AutomationType
	Message string
	Icon    string
}
