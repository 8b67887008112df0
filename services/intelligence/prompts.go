package ai

import (
	"fmt"
	"strconv"
	"strings"

	"classboard/models"
)

// Fixed texts returned in place of a failed or empty generation.
const (
	AnalysisFallback = "分析過程中發生錯誤。"
	ChatFallback     = "抱歉，我現在無法回答。"
)

const analysisTemplate = `你是一位專業的學業指導顧問。請分析以下學生的成績單，並提供深入的分析報告。

成績資料：
%s

請包含以下內容：
1. 整體表現評估
2. 優勢科目分析
3. 待加強領域建議
4. 具體的未來學習策略建議

請使用繁體中文回答，語氣要親切且具鼓勵性。`

// AnalysisPrompt embeds one line per course into the advisor template.
func AnalysisPrompt(courses []models.Course) string {
	lines := make([]string, len(courses))
	for i, c := range courses {
		lines[i] = fmt.Sprintf("%s: %s分 (%s學分, 類別: %s)", c.Name, formatNumber(c.Score), formatNumber(c.Credits), c.Category)
	}
	return fmt.Sprintf(analysisTemplate, strings.Join(lines, "\n"))
}

// ChatContext is the lighter name:score summary prefixed to chat queries.
func ChatContext(courses []models.Course) string {
	if len(courses) == 0 {
		return "目前沒有成績資料。"
	}
	pairs := make([]string, len(courses))
	for i, c := range courses {
		pairs[i] = c.Name + ":" + formatNumber(c.Score)
	}
	return "當前成績背景：" + strings.Join(pairs, ",")
}

// ChatPrompt combines the user's query with the grade context.
func ChatPrompt(query string, courses []models.Course) string {
	return fmt.Sprintf("你是一個學術助手。用戶問題：%s\n內容脈絡：%s", query, ChatContext(courses))
}

// formatNumber prints 85 as "85" and 85.5 as "85.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
