package openai

import "fmt"

const criteriaResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "sectors": {"type": "array", "items": {"type": "string"}},
    "fees_max": {"type": ["number", "null"]},
    "min_performance": {"type": ["number", "null"]},
    "region": {"type": "array", "items": {"type": "string"}},
    "type": {"type": "array", "items": {"type": "string"}},
    "replication": {"type": ["string", "null"]},
    "availability": {"type": "array", "items": {"type": "string"}},
    "risk": {"type": ["integer", "null"]},
    "strategy": {"type": ["string", "null"]},
    "esg": {"type": ["number", "null"]},
    "emetteur": {"type": "array", "items": {"type": "string"}}
  },
  "required": [
    "sectors", "fees_max", "min_performance", "region", "type",
    "replication", "availability", "risk", "strategy", "esg", "emetteur"
  ],
  "additionalProperties": false
}`

const criteriaPromptTemplate = `You are an assistant specialized in analyzing ETF investment queries.
Extract the structured search criteria from the user's query and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Extraction rules:
- Sectors: "technology ETF" -> "sectors": ["technology"], "ESG fund" -> "sectors": ["esg"]
- Fees: "fees under 0.5%%" -> "fees_max": 0.5
- Performance: "return above 3%%" -> "min_performance": 3.0
- Region: "European ETF" -> "region": ["europe"]
- Risk: "low risk" -> "risk": 2, "risk level 5" -> "risk": 5
- Issuers go into "emetteur", e.g. "an Amundi fund" -> "emetteur": ["Amundi"]
- If no clear criterion is present for a field, keep its default (empty array or null).
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "tech ETF with fees under 0.5%% and return above 3%%"
Output:
{
  "sectors": ["tech"],
  "fees_max": 0.5,
  "min_performance": 3.0,
  "region": [],
  "type": [],
  "replication": null,
  "availability": [],
  "risk": null,
  "strategy": null,
  "esg": null,
  "emetteur": []
}

Example (no usable criteria):
Input: "what should I buy"
Output:
{
  "sectors": [],
  "fees_max": null,
  "min_performance": null,
  "region": [],
  "type": [],
  "replication": null,
  "availability": [],
  "risk": null,
  "strategy": null,
  "esg": null,
  "emetteur": []
}`

// buildSystemPrompt creates the system prompt with the response schema embedded.
func buildSystemPrompt() string {
	return fmt.Sprintf(criteriaPromptTemplate, criteriaResponseSchema)
}
