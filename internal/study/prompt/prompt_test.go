package prompt

import (
	"strings"
	"testing"
)

func TestAnswerQuestion(t *testing.T) {
	p := AnswerQuestion("Calculus", "What is a derivative?", "School", "Simple", "Balanced")

	if !strings.Contains(p.System, "to a School student") {
		t.Errorf("system prompt missing level: %q", p.System)
	}
	if !strings.Contains(p.System, "Explanation style: Simple.") {
		t.Errorf("system prompt missing style: %q", p.System)
	}
	if !strings.Contains(p.System, "Overall study mode: Balanced.") {
		t.Errorf("system prompt missing study mode: %q", p.System)
	}
	if p.User != "Subject: Calculus\nQuestion: What is a derivative?" {
		t.Errorf("unexpected user prompt: %q", p.User)
	}

	t.Run("empty subject is still echoed", func(t *testing.T) {
		p := AnswerQuestion("", "Why is the sky blue?", "General", "Detailed", "Balanced")
		if !strings.HasPrefix(p.User, "Subject: \n") {
			t.Errorf("expected empty subject line, got %q", p.User)
		}
	})
}

func TestSummarizeText(t *testing.T) {
	text := "The mitochondria is the powerhouse of the cell."

	t.Run("highlight on", func(t *testing.T) {
		p := SummarizeText(text, "Short", true, "Exam prep")
		if !strings.Contains(p.System, "- Summary length: Short.") {
			t.Errorf("system prompt missing length: %q", p.System)
		}
		if !strings.Contains(p.System, "- Highlight key terms: yes.") {
			t.Errorf("system prompt missing highlight flag: %q", p.System)
		}
		if !strings.Contains(p.System, "- Overall study mode: Exam prep.") {
			t.Errorf("system prompt missing study mode: %q", p.System)
		}
		if p.User != text {
			t.Errorf("user prompt must be the raw text, got %q", p.User)
		}
	})

	t.Run("highlight off", func(t *testing.T) {
		p := SummarizeText(text, "Very short (bullet points)", false, "Balanced")
		if !strings.Contains(p.System, "- Highlight key terms: no.") {
			t.Errorf("expected highlight no, got %q", p.System)
		}
	})
}

func TestGenerateTopicNotes(t *testing.T) {
	p := GenerateTopicNotes("Neural Networks", "In-depth", "Deep understanding")

	if !strings.Contains(p.System, "- Depth: In-depth.") {
		t.Errorf("system prompt missing depth: %q", p.System)
	}
	if !strings.Contains(p.System, "Include definitions, key formulas or dates, and simple examples.") {
		t.Errorf("system prompt missing notes instructions: %q", p.System)
	}
	if p.User != "Create study notes on: Neural Networks" {
		t.Errorf("unexpected user prompt: %q", p.User)
	}
}

func TestGenerateQuiz(t *testing.T) {
	p := GenerateQuiz("Photosynthesis", 5, "Multiple choice", "Medium", "Balanced")

	if !strings.Contains(p.System, "- Question type: Multiple choice.") {
		t.Errorf("system prompt missing quiz type: %q", p.System)
	}
	if !strings.Contains(p.System, "- Difficulty: Medium.") {
		t.Errorf("system prompt missing difficulty: %q", p.System)
	}
	if !strings.Contains(p.System, "provide an answer key clearly separated") {
		t.Errorf("system prompt missing answer key instruction: %q", p.System)
	}
	if !strings.Contains(p.User, "Create a 5-question quiz on the topic: Photosynthesis.") {
		t.Errorf("user prompt missing count/topic: %q", p.User)
	}
	if !strings.Contains(p.User, "Use friendly wording appropriate for students.") {
		t.Errorf("user prompt missing wording instruction: %q", p.User)
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	a := GenerateQuiz("Data Structures", 10, "Mixed", "Hard", "Exam prep")
	b := GenerateQuiz("Data Structures", 10, "Mixed", "Hard", "Exam prep")
	if a != b {
		t.Error("identical inputs must produce identical prompts")
	}
}
