package store

// Fixed device-store keys, one per collection. Each holds a whole-collection
// JSON snapshot (or, for the focus key, a raw string).
const (
	KeySubjects   = "app:subjects"
	KeyFlashcards = "app:flashcards"
	KeyGoals      = "app:goals"
	KeySessions   = "app:pomodoroSessions"
	KeyFocus      = "app:studyFocus"
)
