package constant

const (
	GoalStatusActive = "active"

	// Session entries keep the last exchange per conversation context.
	SessionTTLHours = 2

	ProgressUpdatesQueueKey = "progress_updates"
	ProgressUpdatesTopic    = "PROGRESS_UPDATES"

	WebhookGreeting = "Hi! I'm your AI Coaching Agent. What are you working on today?"

	DegradedReplySuffix = "\n\n(LLM unavailable — served fallback)"

	CoachSystemPromptV1 = `You are a smart multi-modal learning & productivity AI coach.

Capabilities:
- Help users learn skills, plan study routines & build habits
- Break complex topics into simple steps
- Provide motivation, accountability & actionable advice
- Help with coding, research, communication & personal growth
- Ask clarifying questions when needed
- Keep responses concise but helpful

Format:
- If answering: Give clear guidance
- If user unclear: Ask friendly follow-up questions
- ALWAYS provide next-step suggestions`
)

// Prompts containing any of these trigger the structured 4-week study plan
// in the local fallback; everything else gets the generic next-step nudge.
var CoachingKeywords = []string{"learn", "plan", "study", "teach", "coach", "help"}
