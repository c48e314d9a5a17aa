package domain

// RainType es la categoria principal de un perfume ("tipo de lluvia").
type RainType string

const (
	RainMistyMorning  RainType = "misty-morning"
	RainGentleDrizzle RainType = "gentle-drizzle"
	RainSummerShower  RainType = "summer-shower"
	RainMelancholy    RainType = "melancholy-rain"
	RainStormyNight   RainType = "stormy-night"
	RainAfterRain     RainType = "after-rain"
	RainWindowTapping RainType = "window-tapping"
	RainOnLeaves      RainType = "rain-on-leaves"
	RainUrban         RainType = "urban-rain"
	RainForest        RainType = "forest-rain"
)

type Mood string

const (
	MoodNostalgic     Mood = "nostalgic"
	MoodRomantic      Mood = "romantic"
	MoodContemplative Mood = "contemplative"
	MoodPeaceful      Mood = "peaceful"
	MoodMelancholic   Mood = "melancholic"
	MoodRefreshing    Mood = "refreshing"
	MoodMysterious    Mood = "mysterious"
	MoodCozy          Mood = "cozy"
	MoodDramatic      Mood = "dramatic"
	MoodDreamy        Mood = "dreamy"
)

type Personality string

const (
	PersonalityIntrovert   Personality = "introvert"
	PersonalityExtrovert   Personality = "extrovert"
	PersonalityCreative    Personality = "creative"
	PersonalityAnalytical  Personality = "analytical"
	PersonalityEmotional   Personality = "emotional"
	PersonalityPractical   Personality = "practical"
	PersonalityAdventurous Personality = "adventurous"
	PersonalityTraditional Personality = "traditional"
)

type Season string

const (
	SeasonSpringRain Season = "spring-rain"
	SeasonSummerRain Season = "summer-rain"
	SeasonAutumnRain Season = "autumn-rain"
	SeasonMonsoon    Season = "monsoon"
)

type TimeOfDay string

const (
	TimeDawn      TimeOfDay = "dawn"
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeAnytime   TimeOfDay = "anytime"
)

// Perfume es un item del catalogo. Se carga una vez al arrancar y no se muta.
type Perfume struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Name        string        `json:"name" yaml:"name" validate:"required"`
	Description string        `json:"description" yaml:"description"`
	RainType    RainType      `json:"rainType" yaml:"rainType" validate:"required,oneof=misty-morning gentle-drizzle summer-shower melancholy-rain stormy-night after-rain window-tapping rain-on-leaves urban-rain forest-rain"`
	Mood        []Mood        `json:"mood" yaml:"mood" validate:"dive,oneof=nostalgic romantic contemplative peaceful melancholic refreshing mysterious cozy dramatic dreamy"`
	Notes       []string      `json:"notes" yaml:"notes"`
	Intensity   int           `json:"intensity" yaml:"intensity" validate:"min=1,max=5"`
	Season      Season        `json:"season" yaml:"season" validate:"required,oneof=spring-rain summer-rain autumn-rain monsoon"`
	TimeOfDay   TimeOfDay     `json:"timeOfDay" yaml:"timeOfDay" validate:"required,oneof=dawn morning afternoon evening night anytime"`
	Personality []Personality `json:"personality" yaml:"personality" validate:"dive,oneof=introvert extrovert creative analytical emotional practical adventurous traditional"`
}

// UserPreferences se arma por request a partir de las respuestas y se descarta tras puntuar.
type UserPreferences struct {
	RainTypes          []RainType    `json:"rainTypes"`
	Moods              []Mood        `json:"moods"`
	Personalities      []Personality `json:"personalities"`
	PreferredIntensity []int         `json:"preferredIntensity"`
	PreferredTimeOfDay []TimeOfDay   `json:"preferredTimeOfDay"`
}

// RecommendationResult es un perfume puntuado por el ranking local.
type RecommendationResult struct {
	Perfume           Perfume  `json:"perfume"`
	MatchScore        int      `json:"matchScore"`
	MatchReasons      []string `json:"matchReasons"`
	PoeticDescription string   `json:"poeticDescription"`
	RainMetaphor      string   `json:"rainMetaphor"`
}
