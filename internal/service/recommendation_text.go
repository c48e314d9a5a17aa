package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"rain-scent/internal/domain"
)

// Picker elige un indice en [0,n). Se inyecta para fijar la plantilla en tests.
type Picker interface {
	IntN(n int) int
}

type globalRandPicker struct{}

// IntN usa el generador global de math/rand/v2, seguro para uso concurrente.
func (globalRandPicker) IntN(n int) int { return rand.IntN(n) }

// DefaultPicker elige plantillas de forma uniforme.
var DefaultPicker Picker = globalRandPicker{}

var rainTypeKorean = map[domain.RainType]string{
	domain.RainMistyMorning:  "안개 낀 새벽",
	domain.RainGentleDrizzle: "부슬비",
	domain.RainSummerShower:  "여름 소나기",
	domain.RainMelancholy:    "우울한 비",
	domain.RainStormyNight:   "폭풍우",
	domain.RainAfterRain:     "비 갠 후",
	domain.RainWindowTapping: "창문을 두드리는 비",
	domain.RainOnLeaves:      "나뭇잎 위의 비",
	domain.RainUrban:         "도시의 비",
	domain.RainForest:        "숲속의 비",
}

var rainTypePoetic = map[domain.RainType]string{
	domain.RainMistyMorning:  "새벽의 안개비가 세상을 부드럽게 감싸는 순간",
	domain.RainGentleDrizzle: "속삭이듯 내리는 부슬비",
	domain.RainSummerShower:  "뜨거운 대지를 식혀주는 시원한 여름비",
	domain.RainMelancholy:    "마음속 그리움을 불러일으키는 센치한 빗줄기",
	domain.RainStormyNight:   "하늘이 울부짖는 드라마틱한 밤",
	domain.RainAfterRain:     "세상을 깨끗이 씻어낸 후의 청명함",
	domain.RainWindowTapping: "추억을 노크하는 빗방울",
	domain.RainOnLeaves:      "생명에게 속삭이는 자연의 선물",
	domain.RainUrban:         "도시의 불빛에 반짝이는 빗방울",
	domain.RainForest:        "나무들이 춤추는 숲속의 교향곡",
}

var rainMetaphors = map[domain.RainType]string{
	domain.RainMistyMorning:  "새벽안개처럼 신비롭게 다가오는 향",
	domain.RainGentleDrizzle: "부슬비처럼 섬세하게 스며드는 향",
	domain.RainSummerShower:  "여름 소나기처럼 시원하게 쏟아지는 향",
	domain.RainMelancholy:    "창가에 흐르는 빗물처럼 감성적인 향",
	domain.RainStormyNight:   "폭풍우처럼 강렬하게 몰아치는 향",
	domain.RainAfterRain:     "비 갠 후의 맑은 하늘처럼 상쾌한 향",
	domain.RainWindowTapping: "창문을 두드리는 빗소리처럼 그리운 향",
	domain.RainOnLeaves:      "나뭇잎 위의 빗방울처럼 생명력 있는 향",
	domain.RainUrban:         "도시의 빗길처럼 세련되고 모던한 향",
	domain.RainForest:        "숲속의 빗소리처럼 깊고 평화로운 향",
}

var moodKorean = map[domain.Mood]string{
	domain.MoodNostalgic:     "그리운",
	domain.MoodRomantic:      "로맨틱한",
	domain.MoodContemplative: "사색적인",
	domain.MoodPeaceful:      "평화로운",
	domain.MoodMelancholic:   "애잔한",
	domain.MoodRefreshing:    "상쾌한",
	domain.MoodMysterious:    "신비로운",
	domain.MoodCozy:          "아늑한",
	domain.MoodDramatic:      "드라마틱한",
	domain.MoodDreamy:        "몽환적인",
}

var moodPoetic = map[domain.Mood]string{
	domain.MoodNostalgic:     "추억 속을 거니는 듯한",
	domain.MoodRomantic:      "사랑이 피어나는",
	domain.MoodContemplative: "깊은 생각에 잠기는",
	domain.MoodPeaceful:      "고요한 평화를 느끼는",
	domain.MoodMelancholic:   "쓸쓸한 아름다움을 간직한",
	domain.MoodRefreshing:    "새로운 시작을 알리는",
	domain.MoodMysterious:    "비밀을 품은 듯한",
	domain.MoodCozy:          "따뜻한 위로를 주는",
	domain.MoodDramatic:      "강렬한 감동을 선사하는",
	domain.MoodDreamy:        "꿈결 같은",
}

var personalityKorean = map[domain.Personality]string{
	domain.PersonalityIntrovert:   "내향적인",
	domain.PersonalityExtrovert:   "외향적인",
	domain.PersonalityCreative:    "창의적인",
	domain.PersonalityAnalytical:  "분석적인",
	domain.PersonalityEmotional:   "감성적인",
	domain.PersonalityPractical:   "실용적인",
	domain.PersonalityAdventurous: "모험적인",
	domain.PersonalityTraditional: "전통적인",
}

var seasonKorean = map[domain.Season]string{
	domain.SeasonSpringRain: "봄비",
	domain.SeasonSummerRain: "여름비",
	domain.SeasonAutumnRain: "가을비",
	domain.SeasonMonsoon:    "장마",
}

var timeOfDayKorean = map[domain.TimeOfDay]string{
	domain.TimeDawn:      "새벽",
	domain.TimeMorning:   "아침",
	domain.TimeAfternoon: "오후",
	domain.TimeEvening:   "저녁",
	domain.TimeNight:     "밤",
	domain.TimeAnytime:   "하루 중 언제든",
}

func lookupOr[K comparable](m map[K]string, key K, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func RainTypeKorean(rt domain.RainType) string {
	return lookupOr(rainTypeKorean, rt, string(rt))
}

func MoodKorean(m domain.Mood) string {
	return lookupOr(moodKorean, m, string(m))
}

// RainMetaphor devuelve la metafora fija asociada al tipo de lluvia del perfume.
func RainMetaphor(p domain.Perfume) string {
	return lookupOr(rainMetaphors, p.RainType, "장마의 정취를 담은 특별한 향")
}

// MatchReasons arma una frase por dimension que efectivamente coincidio.
func MatchReasons(p domain.Perfume, prefs domain.UserPreferences) []string {
	reasons := []string{}

	for _, rt := range prefs.RainTypes {
		if rt == p.RainType {
			reasons = append(reasons, fmt.Sprintf("당신이 사랑하는 %s의 정서를 담고 있습니다", RainTypeKorean(p.RainType)))
			break
		}
	}

	if moods := intersect(p.Mood, prefs.Moods); len(moods) > 0 {
		names := make([]string, 0, len(moods))
		for _, m := range moods {
			names = append(names, MoodKorean(m))
		}
		reasons = append(reasons, fmt.Sprintf("%s 분위기를 완벽하게 표현합니다", strings.Join(names, ", ")))
	}

	if personalities := intersect(p.Personality, prefs.Personalities); len(personalities) > 0 {
		names := make([]string, 0, len(personalities))
		for _, pe := range personalities {
			names = append(names, lookupOr(personalityKorean, pe, string(pe)))
		}
		reasons = append(reasons, fmt.Sprintf("%s 성향과 잘 어울립니다", strings.Join(names, ", ")))
	}

	return reasons
}

// PoeticDescription elige una de tres plantillas con picker.
func PoeticDescription(p domain.Perfume, picker Picker) string {
	if picker == nil {
		picker = DefaultPicker
	}

	leadMood := "특별한"
	if len(p.Mood) > 0 {
		leadMood = lookupOr(moodPoetic, p.Mood[0], "특별한")
	}

	templates := []string{
		fmt.Sprintf("%s 이 향은 마치 %s처럼 당신의 마음속 깊은 곳을 적십니다.",
			p.Description, lookupOr(rainTypePoetic, p.RainType, "특별한 비")),
		fmt.Sprintf("장마철 %s의 정취를 담아, %s의 향이 빗방울처럼 흩어집니다.",
			lookupOr(timeOfDayKorean, p.TimeOfDay, string(p.TimeOfDay)), strings.Join(p.Notes, ", ")),
		fmt.Sprintf("%s 감성을 지닌 당신에게, 이 향은 %s의 추억을 선물합니다.",
			leadMood, lookupOr(seasonKorean, p.Season, string(p.Season))),
	}

	i := picker.IntN(len(templates))
	if i < 0 || i >= len(templates) {
		i = 0
	}
	return templates[i]
}
