package domain

// Difficulty is the requested difficulty of a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Mode selects the mix of question types.
type Mode string

const (
	ModeMixed Mode = "mixed"
	ModeMCQ   Mode = "mcq"
)

// GradeLevel is the audience the quiz is written for.
type GradeLevel string

const (
	GradeMiddle  GradeLevel = "middle"
	GradeHigh    GradeLevel = "high"
	GradeCollege GradeLevel = "college"
)

// Label returns the human readable audience used inside prompts.
func (g GradeLevel) Label() string {
	switch g {
	case GradeMiddle:
		return "Middle school"
	case GradeCollege:
		return "Intro college"
	default:
		return "High school"
	}
}

const (
	DefaultTitle        = "Untitled Quiz"
	DefaultNumQuestions = 10
	MaxTitleLength      = 80
	MinSourceTextLength = 50
)

// QuizRequest is a sanitized quiz generation request. Every field lies
// inside its allowed domain.
type QuizRequest struct {
	Title        string
	SourceText   string
	NumQuestions int
	Difficulty   Difficulty
	Mode         Mode
	GradeLevel   GradeLevel
	Explanations bool
}

// Prompt is the instruction/input pair sent to a generation service.
type Prompt struct {
	Instructions string
	Input        string
}

// GeneratedQuiz is the provider's raw text. Its structure is never inspected.
type GeneratedQuiz struct {
	Text string
}
