package summarizer

// Prompts for the summarization stages, tuned for natural, human-sounding
// output rather than report-speak.

const chunkPrompt = `Read this text and explain what it's about in 2-3 natural sentences, as if you're telling a colleague.

Write in a conversational, human way. Focus on the main points and what stands out. Be brief but clear.

Text:
%s

Your explanation:`

const mergePrompt = `You are an expert at explaining data and documents in natural, conversational language.

Below are summaries of different sections. Write a brief, flowing paragraph (2-4 sentences) that explains what this document is about - as if you're telling a colleague in person.

Write naturally, like a human would speak. Focus on the main story, key patterns, and what stands out. Be concise and engaging.

Section summaries:
%s

Your natural summary (2-4 sentences):`

const highlightPrompt = `Based on this summary, write 3-5 key insights as short, natural sentences. Each insight should be specific and highlight what matters most.

Write as if you're explaining the highlights to someone. Be concise and direct. Write each insight on a new line starting with '-'.

Summary:
%s

Key insights:
`

const systemMessage = "You are a helpful AI assistant. Your goal is to provide concise and accurate information."
