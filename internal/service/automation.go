package service

import (
	"strings"

	"github.com/switchboardhq/gateway/internal/model"
)

// automationRule binds a trigger keyword to the action it simulates. Rules
// are evaluated independently and in this order, so a message containing
// every keyword yields every action, always email → task → slack.
type automationRule struct {
	keyword string
	action  model.AutomationAction
}

var automationRules = []automationRule{
	{
		keyword: "email",
		action: model.AutomationAction{
			Type:    model.AutomationEmail,
			Message: "Email draft created and queued for sending",
			Icon:    "📧",
		},
	},
	{
		keyword: "task",
		action: model.AutomationAction{
			Type:    model.AutomationTask,
			Message: "Task added to your project board",
			Icon:    "✅",
		},
	},
	{
		keyword: "slack",
		action: model.AutomationAction{
			Type:    model.AutomationSlack,
			Message: "Summary posted to your Slack channel",
			Icon:    "💬",
		},
	},
}

// DetectAutomations scans the raw user message for trigger keywords and
// returns the simulated actions they imply. Matching is case-insensitive
// substring search; the function is pure and never fails.
func DetectAutomations(message string) []model.AutomationAction {
	lowered := strings.ToLower(message)

	var actions []model.AutomationAction
	for _, rule := range automationRules {
		if strings.Contains(lowered, rule.keyword) {
			actions = append(actions, rule.action)
		}
	}
	return actions
}
