package openai

// captionInstruction is the fixed user-turn instruction sent alongside
// every image. Captions feed a semantic search index, so the model is
// steered toward grounded, compact descriptions.
const captionInstruction = "Describe this image succinctly so it can be found by semantic search. " +
	"Focus on what is actually visible and avoid speculation."

// summaryInstruction is the system instruction for table summaries.
const summaryInstruction = "Summarize the table for semantic retrieval. " +
	"Capture the key entities, figures, and relationships in a short plain-text paragraph."
