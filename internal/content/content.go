// Package content embeds the static educational content: the journey
// template, per-task guidance, guides, FAQs, the glossary, and the
// scripted chat assistant. Everything here is data, not behavior; it is
// parsed once at init and handed out as fresh copies.
package content

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firsthome/firsthome/internal/journey"
)

//go:embed data/*.yaml
var dataFS embed.FS

type stagesFile struct {
	Stages    []journey.Stage `yaml:"stages"`
	StageInfo map[int]string  `yaml:"stageInfo"`
}

// PartnerLink points at an external service relevant to a task.
type PartnerLink struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// Task is the educational content behind one checklist item.
type Task struct {
	Explainer       string        `json:"explainer" yaml:"explainer"`
	WhyItMatters    string        `json:"whyItMatters" yaml:"whyItMatters"`
	ActionableSteps []string      `json:"actionableSteps" yaml:"actionableSteps"`
	PartnerLinks    []PartnerLink `json:"partnerLinks,omitempty" yaml:"partnerLinks,omitempty"`
	NotePlaceholder string        `json:"notePlaceholder" yaml:"notePlaceholder"`
}

// GuideSection is one heading+body block of a guide.
type GuideSection struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// Guide is one long-form educational page.
type Guide struct {
	Slug     string         `json:"slug" yaml:"slug"`
	Title    string         `json:"title" yaml:"title"`
	Intro    string         `json:"intro" yaml:"intro"`
	Sections []GuideSection `json:"sections" yaml:"sections"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"q"`
	Answer   string `json:"answer" yaml:"a"`
}

// FAQCategory groups FAQs under a heading.
type FAQCategory struct {
	Category  string `json:"category" yaml:"category"`
	Questions []FAQ  `json:"questions" yaml:"questions"`
}

// GlossaryEntry defines one term.
type GlossaryEntry struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

type chatResponse struct {
	Question string   `yaml:"question"`
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
}

type chatFile struct {
	Greeting         string         `yaml:"greeting"`
	Fallback         string         `yaml:"fallback"`
	SuggestedPrompts []string       `yaml:"suggestedPrompts"`
	Responses        []chatResponse `yaml:"responses"`
}

var (
	templateStages []journey.Stage
	stageInfo      map[int]string
	tasks          map[string]Task
	guides         []Guide
	faqs           []FAQCategory
	glossary       []GlossaryEntry
	chat           chatFile
)

func init() {
	var sf stagesFile
	mustLoad("data/stages.yaml", &sf)
	templateStages = sf.Stages
	stageInfo = sf.StageInfo

	mustLoad("data/tasks.yaml", &tasks)
	mustLoad("data/guides.yaml", &guides)
	mustLoad("data/faqs.yaml", &faqs)
	mustLoad("data/glossary.yaml", &glossary)
	mustLoad("data/chat.yaml", &chat)
}

func mustLoad(name string, dest any) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("content: reading %s: %v", name, err))
	}
	if err := yaml.Unmarshal(raw, dest); err != nil {
		panic(fmt.Sprintf("content: parsing %s: %v", name, err))
	}
}

// DefaultStages returns a fresh copy of the journey template. Callers
// own the result; the embedded template is never handed out directly, so
// merges cannot mutate it.
func DefaultStages() []journey.Stage {
	return journey.Clone(templateStages)
}

// StageInfo returns the tooltip copy for a stage id, or "".
func StageInfo(stageID int) string { return stageInfo[stageID] }

// TaskFor returns the educational content behind a checklist item id.
func TaskFor(itemID string) (Task, bool) {
	t, ok := tasks[itemID]
	return t, ok
}

// Guides returns all long-form guides in display order.
func Guides() []Guide { return guides }

// GuideBySlug returns the guide with the given slug.
func GuideBySlug(slug string) (Guide, bool) {
	for _, g := range guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}

// FAQs returns all FAQ categories.
func FAQs() []FAQCategory { return faqs }

// Glossary returns all glossary entries.
func Glossary() []GlossaryEntry { return glossary }

// ChatGreeting is the assistant's opening message.
func ChatGreeting() string { return chat.Greeting }

// SuggestedPrompts are the canned questions offered to the user.
func SuggestedPrompts() []string { return chat.SuggestedPrompts }

// Reply returns the scripted assistant answer for a message: exact
// question match first, then keyword match, then the fallback line.
func Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range chat.Responses {
		if strings.ToLower(r.Question) == msg {
			return r.Answer
		}
	}
	for _, r := range chat.Responses {
		for _, kw := range r.Keywords {
			if strings.Contains(msg, strings.ToLower(kw)) {
				return r.Answer
			}
		}
	}
	return chat.Fallback
}
