package openai

import "fmt"

const visionPrompt = `You are an OCR and image description assistant. Examine the attached image and return JSON with exactly two keys:

{"text": "...", "summary": "..."}

Rules:
- "text" contains ALL readable text in the image, transcribed verbatim, preserving line breaks. If the image contains no readable text, describe its content in one or two sentences instead.
- "summary" is one short sentence describing what the image shows.
- Output ONLY the JSON object. No preamble, no markdown fences, no trailing text.
- The JSON must parse without errors; no trailing commas and no extra keys.`

const transcriptionPrompt = `You are a transcription assistant. Transcribe the attached audio recording verbatim in its original language.

Rules:
- Output ONLY the transcript text. No preamble, no timestamps, no speaker labels.
- If the recording contains no intelligible speech, output nothing.`

const analysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "category":   {"type": "string", "enum": ["task", "idea", "mood"]},
    "title":      {"type": ["string", "null"]},
    "content":    {"type": ["string", "null"]},
    "summary":    {"type": ["string", "null"]},
    "event_date": {"type": ["string", "null"]},
    "event_time": {"type": ["string", "null"]},
    "location":   {"type": ["string", "null"]},
    "reminders":  {"type": "array", "items": {"type": "string"}},
    "emotion":    {"type": ["string", "null"]},
    "intensity":  {"type": ["number", "null"], "minimum": 1, "maximum": 10},
    "tags":       {"type": "array", "items": {"type": "string"}},
    "keywords":   {"type": "array", "items": {"type": "string"}},
    "completed":  {"type": ["boolean", "null"]}
  },
  "required": ["category"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `You organize personal notes. The user gives you raw note text, possibly assembled from typed text, photographed documents, and voice memos. Derive one structured record and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- "category" is "task" for actionable items, "mood" for emotional states, "idea" for everything else.
- "title" is a short headline in the note's language.
- "content" restates the note cleanly; "summary" is at most two sentences.
- Fill "event_date" (YYYY-MM-DD), "event_time" (HH:MM) and "location" only when the text states them; use null otherwise. Same for "reminders".
- "emotion" and "intensity" (1-10) only for mood notes; null otherwise.
- "tags" and "keywords" each hold at most 5 short lowercase entries.
- "completed" is false for new tasks, null for non-tasks.
- Do not invent facts that are not in the text.

Example:
Input: "buy milk tomorrow 8am"
Output:
{"category":"task","title":"Buy milk","content":"Buy milk tomorrow at 8am.","summary":"Milk purchase planned for tomorrow morning.","event_date":null,"event_time":"08:00","location":null,"reminders":[],"emotion":null,"intensity":null,"tags":["errand"],"keywords":["milk"],"completed":false}`

// buildAnalysisPrompt assembles the system prompt for structured analysis.
func buildAnalysisPrompt() string {
	return fmt.Sprintf(analysisPromptTemplate, analysisResponseSchema)
}
