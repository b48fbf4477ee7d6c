package classify

import (
	"fmt"
	"strings"

	"github.com/plumharbor/daylens/internal/journal"
)

// classifyRules is the fixed instruction block sent with every
// classification request. It enumerates the six labels and their decision
// rules; the model must answer with a bare JSON array of labels.
const classifyRules = `You are a life-log classifier. Assign each activity below to exactly one
category from this set:

- work: job tasks, meetings, reports, interviews, email
- routine: meals, commuting, chores, hygiene, errands
- development: reading, studying, practicing, writing code, courses
- family: time spent with or caring for family members
- social: friends, gatherings, parties, social media conversations
- resting: sleep, naps, breaks, idle recovery

Rules:
- Any activity between 00:00 and 07:00 is resting unless clearly stated otherwise.
- Any mention of sleeping or napping is resting regardless of time.
- When in doubt, choose routine.

Respond with ONLY a JSON array of category strings, one per activity, in the
same order as the input. No explanations, no markdown.`

// advicePersona is the fixed coaching persona for advice generation.
const advicePersona = `You are a supportive but direct personal time coach. Given one day of
categorized activities with immersion levels (0-5), write a short review in
markdown: what went well, where focus leaked, and one concrete suggestion
for tomorrow. Keep it under 200 words and write in the language the
activities are written in.`

// BuildClassifyPrompt serializes entries as ordered [HH:MM] content lines
// under the fixed rule text.
func BuildClassifyPrompt(entries []*journal.Entry) string {
	var b strings.Builder
	b.WriteString(classifyRules)
	b.WriteString("\n\nActivities:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s\n", e.Start, e.Content)
	}
	return b.String()
}

// BuildAdvicePrompt serializes the full categorized entry dump, including
// time ranges, categories, and immersion values, under the coaching persona.
func BuildAdvicePrompt(entries []*journal.Entry) string {
	var b strings.Builder
	b.WriteString(advicePersona)
	b.WriteString("\n\nToday's log:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s ~ %s (%dm) [%s] immersion=%d %s\n",
			e.Start, e.End, e.Duration, e.Category, e.Immersion, e.Content)
	}
	return b.String()
}
