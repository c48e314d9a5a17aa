package domain

import "time"

// AIRecommendation es el esquema JSON que se le pide al modelo.
type AIRecommendation struct {
	UserProfile        UserProfile      `json:"userProfile"`
	TopRecommendations []AIPerfumeMatch `json:"topRecommendations"`
	RainMoodAnalysis   RainMoodAnalysis `json:"rainMoodAnalysis"`
	PoeticMessage      string           `json:"poeticMessage"`
}

type UserProfile struct {
	RainType             string `json:"rainType"`
	EmotionalState       string `json:"emotionalState"`
	PersonalityTrait     string `json:"personalityTrait"`
	RecommendationReason string `json:"recommendationReason"`
}

type AIPerfumeMatch struct {
	Perfume             Perfume `json:"perfume"`
	MatchScore          int     `json:"matchScore"`
	WhyPerfect          string  `json:"whyPerfect"`
	WhenToWear          string  `json:"whenToWear"`
	EmotionalConnection string  `json:"emotionalConnection"`
}

type RainMoodAnalysis struct {
	DominantMood       string `json:"dominantMood"`
	HiddenDesires      string `json:"hiddenDesires"`
	SeasonalConnection string `json:"seasonalConnection"`
	AromaTherapyEffect string `json:"aromaTherapyEffect"`
}

const (
	SourceAI       = "ai"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// QuizResult es lo que se persiste de cada quiz completado.
type QuizResult struct {
	ID             string           `json:"id"`
	Answers        []UserAnswer     `json:"answers"`
	Recommendation AIRecommendation `json:"recommendation"`
	Source         string           `json:"source"`
	CreatedAt      time.Time        `json:"createdAt"`
}
