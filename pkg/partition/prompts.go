package partition

import (
	"fmt"
	"strconv"
	"strings"

	"taxa/internal/models"
)

// DefaultProposePrompt is the built-in system prompt for category proposal.
// Placeholders: {{STEP_CATEGORY_AMOUNT}}, {{ITEM_COUNT}}, {{CATEGORY_COUNT}}.
const DefaultProposePrompt = `You are organizing a collection of {{ITEM_COUNT}} items into roughly {{CATEGORY_COUNT}} categories overall.
You will receive a JSON array holding a representative sample of the items.
Propose exactly {{STEP_CATEGORY_AMOUNT}} categories that partition the full collection. Optimize for an even distribution of items across categories and for names a person can understand at a glance.
Return ONLY a JSON object of the shape {"categories":[{"name":"...","description":"..."}]} with exactly {{STEP_CATEGORY_AMOUNT}} entries, without any explanations, markdown formatting or code blocks.`

// DefaultAssignPrompt is the built-in system prompt for item assignment.
// Placeholder: {{CATEGORIES}}.
const DefaultAssignPrompt = `You are assigning items to a fixed set of categories.
The categories are:
{{CATEGORIES}}
You will receive a JSON array of items. Assign each item to exactly one of the listed categories, repeating the category name verbatim and favoring an even distribution across categories.
Return ONLY a JSON object of the shape {"assignments":[{"item":"...","categoryName":"..."}]} covering every item, without any explanations, markdown formatting or code blocks.`

func buildProposePrompt(template string, cfg Config) string {
	prompt := strings.ReplaceAll(template, "{{STEP_CATEGORY_AMOUNT}}", strconv.Itoa(cfg.StepCategoryAmount))
	prompt = strings.ReplaceAll(prompt, "{{ITEM_COUNT}}", strconv.Itoa(cfg.ItemCount))
	prompt = strings.ReplaceAll(prompt, "{{CATEGORY_COUNT}}", strconv.Itoa(cfg.CategoryCount))
	return prompt
}

func buildAssignPrompt(template string, categories []*models.Category) string {
	var sb strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&sb, "- %s: %s\n", c.Name, c.Description)
	}
	return strings.ReplaceAll(template, "{{CATEGORIES}}", strings.TrimRight(sb.String(), "\n"))
}
