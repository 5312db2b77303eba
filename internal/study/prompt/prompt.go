// Package prompt builds the system/user prompt pairs for every study
// operation. All builders are pure: same input, same output, no I/O.
package prompt

import "fmt"

// Pair is a system instruction plus the user-facing prompt body.
type Pair struct {
	System string
	User   string
}

// AnswerQuestion builds the prompt pair for the Q&A operation.
// Subject may be empty; it is still echoed so the model sees the
// field, matching how the assistant has always framed questions.
func AnswerQuestion(subject, question, level, style, studyMode string) Pair {
	return Pair{
		System: "You are a helpful personal study assistant for students. " +
			"Explain concepts clearly, with examples. Adapt your explanation " +
			fmt.Sprintf("to a %s student and keep the tone encouraging. ", level) +
			fmt.Sprintf("Explanation style: %s. ", style) +
			fmt.Sprintf("Overall study mode: %s.", studyMode),
		User: fmt.Sprintf("Subject: %s\nQuestion: %s", subject, question),
	}
}

// SummarizeText builds the prompt pair for summarizing pasted study
// material. The material itself is the user prompt.
func SummarizeText(text, summaryLength string, highlightKeyTerms bool, studyMode string) Pair {
	highlight := "no"
	if highlightKeyTerms {
		highlight = "yes"
	}
	return Pair{
		System: "You are an AI note-taker. Summarize the input text into clear study notes.\n" +
			fmt.Sprintf("- Summary length: %s.\n", summaryLength) +
			fmt.Sprintf("- Highlight key terms: %s.\n", highlight) +
			fmt.Sprintf("- Overall study mode: %s.\n", studyMode) +
			"- Use headings and bullet points where helpful.",
		User: text,
	}
}

// GenerateTopicNotes builds the prompt pair for structured topic notes.
func GenerateTopicNotes(topic, depth, studyMode string) Pair {
	return Pair{
		System: "You are an expert tutor. Create structured study notes on the given topic.\n" +
			"- Use headings and bullet points.\n" +
			"- Include definitions, key formulas or dates, and simple examples.\n" +
			fmt.Sprintf("- Depth: %s.\n", depth) +
			fmt.Sprintf("- Overall study mode: %s.", studyMode),
		User: fmt.Sprintf("Create study notes on: %s", topic),
	}
}

// GenerateQuiz builds the prompt pair for quiz generation.
func GenerateQuiz(topic string, numQuestions int, quizType, difficulty, studyMode string) Pair {
	return Pair{
		System: "You are an AI quiz generator for students.\n" +
			"Create a quiz in Markdown format. Include clear numbering.\n" +
			fmt.Sprintf("- Question type: %s.\n", quizType) +
			fmt.Sprintf("- Difficulty: %s.\n", difficulty) +
			fmt.Sprintf("- Overall study mode: %s.\n", studyMode) +
			"- After the questions, provide an answer key clearly separated.",
		User: fmt.Sprintf("Create a %d-question quiz on the topic: %s.\n", numQuestions, topic) +
			"Use friendly wording appropriate for students.",
	}
}
