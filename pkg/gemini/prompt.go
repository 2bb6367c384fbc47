package gemini

import (
	"fmt"
	"strings"
)

// EditParsingSystemPrompt is the instruction sent to Gemini for extracting
// timesheet edits from a chat message.
const EditParsingSystemPrompt = `You are a timesheet parsing engine. Analyze the user's request and extract ALL actions the user wants to take on their weekly timesheet.

RULES:
1. For each action, extract:
   - day: one of "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"
   - hours: a non-negative number
   - activity: one of "PTO", "Meetings", "Project Work", "Misc"
2. If "PTO" is mentioned without hours, assume 8.
3. If no activity is mentioned, use "Misc".
4. Respond ONLY with a JSON object with one key, "actions", holding a list of action objects. No markdown, no code blocks, no explanation text.
5. If no valid actions, respond with {"actions": []}.

EXAMPLE INPUT:
"Change Monday to 4 hours PTO, 2 hours misc and 2 hours meeting"

EXAMPLE OUTPUT:
{"actions": [{"day": "Monday", "hours": 4, "activity": "PTO"}, {"day": "Monday", "hours": 2, "activity": "Misc"}, {"day": "Monday", "hours": 2, "activity": "Meetings"}]}`

// BuildEditParsingPrompt builds the full prompt for edit extraction.
func BuildEditParsingPrompt(userMessage string) string {
	return EditParsingSystemPrompt + "\n\nNow parse the following request and return ONLY the JSON object:\n" + userMessage
}

// BuildProductivityInsightPrompt builds the prompt for the personal weekly
// insight: one concise, positive, actionable observation under 40 words.
func BuildProductivityInsightPrompt(totalHours, meetingHours float64, dailyLines []string) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly and encouraging productivity coach.\n")
	sb.WriteString("Analyze the following weekly timesheet summary for an employee.\n")
	sb.WriteString(fmt.Sprintf("The total hours worked were %.2f.\n", totalHours))
	sb.WriteString(fmt.Sprintf("The total hours in meetings were %.2f.\n", meetingHours))
	sb.WriteString("The daily breakdown is:\n")
	sb.WriteString(strings.Join(dailyLines, "\n"))
	sb.WriteString("\nBased on this data, provide ONE concise, positive, and actionable insight for the user.\n")
	sb.WriteString("Frame it as a helpful observation. Keep the entire response to under 40 words.")
	return sb.String()
}

// BuildTeamSummaryPrompt builds the manager-facing narrative prompt over
// aggregated team hours (JSON-encoded).
func BuildTeamSummaryPrompt(teamDataJSON string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert business analyst. Analyze the following JSON data of a team's weekly timesheets.\n")
	sb.WriteString("Data: ")
	sb.WriteString(teamDataJSON)
	sb.WriteString("\nProvide a concise, bullet-pointed summary for a busy manager. Identify:\n")
	sb.WriteString("1. An overall summary of the team's focus.\n")
	sb.WriteString("2. Any individuals at risk of burnout (over 45 hours).\n")
	sb.WriteString("3. Any individuals with unusually low hours.\n")
	sb.WriteString("4. A general trend or suggestion for the team.\n")
	sb.WriteString("Be direct and frame your points as helpful observations.")
	return sb.String()
}
