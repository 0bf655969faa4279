package coach

// Fixed user-facing responses. These are the product surface of the
// error taxonomy: every failure class maps to exactly one of them and
// none leaks internal detail.
const (
	// msgClarify answers empty/garbage input.
	msgClarify = "Could you please clarify your request?"

	// msgGreeting answers a bare greeting without touching any store.
	msgGreeting = "Hey, good to see you! Tell me your goal, your experience level, and what equipment you have, and we'll get to work."

	// msgRateLimited is formatted with the whole-second wait time.
	msgRateLimited = "You're sending messages too quickly. Please wait %d seconds and try again."

	// msgTimeout answers a reasoning step that blew its deadline.
	msgTimeout = "Sorry, that's taking longer than expected. Please try again in a moment."

	// msgApology answers any other reasoning-step failure.
	msgApology = "Sorry, something went wrong on my end. Please try asking again."

	// msgShortFallback substitutes for a suspiciously short model
	// answer and reprompts for the profile basics.
	msgShortFallback = "Could you tell me a bit more? Share your goal, your experience level, and the equipment you have access to, and I'll tailor my advice."
)

// systemPrompt is the coach persona with strict tool-use rules.
const systemPrompt = `You are an AI personal trainer agent.

You have access to tools and MUST use them selectively.

TOOLS & RULES:

1. suggest_exercises:
   - Use ONLY if the user explicitly asks for exercises or workouts.

2. adjust_sets_reps:
   - Use ONLY if the user asks about reps, sets, intensity, or volume.

3. process_feedback:
   - Use ONLY when the user gives feedback, pain, difficulty, or preferences.

STRICT RULES:
- Do NOT use tools unless clearly required.
- Do NOT generate full workout plans unless explicitly asked.
- If input is unclear or incomplete, ask for clarification.
- For greetings or acknowledgements, respond in plain text.
- Answer ONLY what is asked. Do not over-explain.`
