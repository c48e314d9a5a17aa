package domain

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
)

type QuestionCategory string

const (
	CategoryRainPreference QuestionCategory = "rain-preference"
	CategoryMood           QuestionCategory = "mood"
	CategoryActivity       QuestionCategory = "activity"
	CategoryMemory         QuestionCategory = "memory"
	CategoryPersonality    QuestionCategory = "personality"
)

type Question struct {
	ID       string           `json:"id" yaml:"id" validate:"required"`
	Text     string           `json:"question" yaml:"question" validate:"required"`
	Type     QuestionType     `json:"type" yaml:"type" validate:"required,oneof=single multiple"`
	Category QuestionCategory `json:"category" yaml:"category" validate:"required,oneof=rain-preference mood activity memory personality"`
	Options  []Option         `json:"options" yaml:"options" validate:"min=1,dive"`
}

// Option codifica que señales de preferencia aporta si se elige.
type Option struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Text        string        `json:"text" yaml:"text" validate:"required"`
	Value       string        `json:"value" yaml:"value" validate:"required"`
	RainType    RainType      `json:"rainType,omitempty" yaml:"rainType,omitempty" validate:"omitempty,oneof=misty-morning gentle-drizzle summer-shower melancholy-rain stormy-night after-rain window-tapping rain-on-leaves urban-rain forest-rain"`
	Mood        []Mood        `json:"mood,omitempty" yaml:"mood,omitempty" validate:"dive,oneof=nostalgic romantic contemplative peaceful melancholic refreshing mysterious cozy dramatic dreamy"`
	Personality []Personality `json:"personality,omitempty" yaml:"personality,omitempty" validate:"dive,oneof=introvert extrovert creative analytical emotional practical adventurous traditional"`
}

// Option busca una opcion por id dentro de la pregunta.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

type UserAnswer struct {
	QuestionID      string   `json:"questionId" binding:"required"`
	SelectedOptions []string `json:"selectedOptions"`
}
