package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"rain-scent/internal/domain"
)

const recommendationPromptTemplate = `
당신은 전문적인 향수 조향사이자 심리학자입니다. 사용자의 장마철 감성과 선호도를 바탕으로 가장 완벽한 향수를 추천해주세요.

## 사용자 응답 분석:
%s

## 향수 데이터베이스:
%s

다음 JSON 형식으로 정확히 응답해주세요:

{
  "userProfile": {
    "rainType": "사용자의 장마 유형 (예: 도시의 밤비, 숲속의 이슬비 등)",
    "emotionalState": "감정 상태 설명",
    "personalityTrait": "성격적 특성",
    "recommendationReason": "이 사용자에게 이 향을 추천하는 이유"
  },
  "topRecommendations": [
    {
      "perfume": "추천 향수 객체 (perfumes 배열에서 정확히 선택, id 필드를 반드시 포함)",
      "matchScore": 95,
      "whyPerfect": "이 향수가 완벽한 이유 (감성적이고 시적으로)",
      "whenToWear": "언제 착용하면 좋은지",
      "emotionalConnection": "이 향수와 사용자의 감정적 연결점"
    }
  ],
  "rainMoodAnalysis": {
    "dominantMood": "주된 감정",
    "hiddenDesires": "숨겨진 욕망이나 바람",
    "seasonalConnection": "장마철과의 연결점",
    "aromaTherapyEffect": "이 향수가 주는 아로마테라피 효과"
  },
  "poeticMessage": "사용자를 위한 시적이고 감성적인 메시지 (3-4줄)"
}

반드시 한국어로 응답하고, 매우 감성적이고 시적으로 작성해주세요. 장마철의 낭만과 감성을 최대한 살려서 답변해주세요.
`

// BuildRecommendationPrompt arma el prompt con las respuestas ("q1: valor") y el catalogo serializado.
func BuildRecommendationPrompt(questions QuestionLookup, perfumes []domain.Perfume, answers []domain.UserAnswer) (string, error) {
	catalogJSON, err := json.MarshalIndent(perfumes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}
	return fmt.Sprintf(recommendationPromptTemplate, formatAnswers(questions, answers), string(catalogJSON)), nil
}

// formatAnswers usa el value de cada opcion cuando la pregunta es conocida y
// el id crudo en caso contrario, para que el modelo vea lo mismo que eligio el usuario.
func formatAnswers(questions QuestionLookup, answers []domain.UserAnswer) string {
	var b strings.Builder
	for _, a := range answers {
		values := make([]string, 0, len(a.SelectedOptions))
		var question domain.Question
		known := false
		if questions != nil {
			question, known = questions.Question(a.QuestionID)
		}
		for _, optionID := range a.SelectedOptions {
			value := optionID
			if known {
				if opt, ok := question.Option(optionID); ok {
					value = opt.Value
				}
			}
			values = append(values, value)
		}
		fmt.Fprintf(&b, "%s: %s\n", a.QuestionID, strings.Join(values, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
