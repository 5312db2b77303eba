package model

// Selectable model identifiers. One provider entry per model is
// expected in config; unknown identifiers are rejected at dispatch.
const (
	ModelGeminiFlash = "gemini-2.0-flash"
	ModelGeminiPro   = "gemini-2.0-pro"
)

// Study modes shift the tone of every generated prompt.
const (
	StudyModeBalanced = "Balanced"
	StudyModeExamPrep = "Exam prep"
	StudyModeDeep     = "Deep understanding"
)

// StudyModes lists the valid study modes in display order.
var StudyModes = []string{StudyModeBalanced, StudyModeExamPrep, StudyModeDeep}

// ValidStudyMode reports whether mode is one of the known study modes.
func ValidStudyMode(mode string) bool {
	for _, m := range StudyModes {
		if m == mode {
			return true
		}
	}
	return false
}

// StudyOptions are the per-session generation settings. Each session
// starts from the configured defaults and can be updated independently.
type StudyOptions struct {
	Model       string
	Temperature float64
	StudyMode   string
}

// Answer levels.
const (
	LevelSchool        = "School"
	LevelUndergraduate = "Undergraduate"
	LevelGraduate      = "Graduate"
	LevelGeneral       = "General"
)

// Answer styles.
const (
	StyleSimple     = "Simple"
	StyleDetailed   = "Detailed"
	StyleStepByStep = "Step-by-step"
)

// Summary lengths.
const (
	SummaryVeryShort = "Very short (bullet points)"
	SummaryShort     = "Short"
	SummaryMedium    = "Medium"
	SummaryDetailed  = "Detailed"
)

// Notes depths.
const (
	DepthOverview = "Overview"
	DepthStandard = "Standard"
	DepthInDepth  = "In-depth"
)

// Quiz question types.
const (
	QuizMultipleChoice = "Multiple choice"
	QuizShortAnswer    = "Short answer"
	QuizMixed          = "Mixed"
)

// Quiz difficulties.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyMixed  = "Mixed"
)
