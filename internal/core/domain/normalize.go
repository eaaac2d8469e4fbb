package domain

import "encoding/json"

// Normalization of loosely-shaped interview payloads. Different server
// builds emit slightly different field names for questions and ranking
// rows; these helpers fold the variants into the canonical types at the
// boundary so nothing downstream handles untyped records.

// looseQuestion captures every field spelling observed for a question.
type looseQuestion struct {
	ID         string   `json:"id"`
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Question   string   `json:"question"`
	Statement  string   `json:"statement"`
	Tags       []string `json:"tags"`
	Dimensions []string `json:"dimensions"`
}

// NormalizeQuestion folds a raw question payload into the canonical
// shape. The statement text may arrive as "text", "question" or
// "statement"; a payload with no usable text yields nil.
func NormalizeQuestion(raw *json.RawMessage) *InterviewQuestion {
	if raw == nil || len(*raw) == 0 || string(*raw) == "null" {
		return nil
	}
	var loose looseQuestion
	if err := json.Unmarshal(*raw, &loose); err != nil {
		return nil
	}

	text := loose.Text
	if text == "" {
		text = loose.Question
	}
	if text == "" {
		text = loose.Statement
	}
	if text == "" {
		return nil
	}

	return &InterviewQuestion{
		ID:         loose.ID,
		QuestionID: loose.QuestionID,
		Text:       text,
		Tags:       loose.Tags,
		Dimensions: loose.Dimensions,
	}
}

// looseRankingItem captures both spellings of each ranking field.
type looseRankingItem struct {
	Tipo         string   `json:"tipo"`
	Type         string   `json:"type"`
	Nome         string   `json:"nome"`
	Name         string   `json:"name"`
	Sigla        string   `json:"sigla"`
	Similaridade *float64 `json:"similaridade"`
	Score        *float64 `json:"score"`
	Explicacao   string   `json:"explicacao"`
	Explanation  string   `json:"explanation"`
}

// looseResult captures the variant result envelope.
type looseResult struct {
	SessionID    string             `json:"session_id"`
	Metricas     *InterviewMetrics  `json:"metricas"`
	Vetor        map[string]float64 `json:"vetor"`
	Ranking      []looseRankingItem `json:"ranking"`
	Similaridade []looseRankingItem `json:"similaridade"`
}

// NormalizeResult folds a raw interview result into the canonical
// shape. Ranking rows may arrive under "ranking" or "similaridade";
// per-row fields tolerate both Portuguese and English spellings.
// Rows without a name are dropped.
func NormalizeResult(raw []byte) InterviewResult {
	var loose looseResult
	if err := json.Unmarshal(raw, &loose); err != nil {
		return InterviewResult{}
	}

	rows := loose.Ranking
	if len(rows) == 0 {
		rows = loose.Similaridade
	}

	ranking := make([]RankingItem, 0, len(rows))
	for _, row := range rows {
		item := RankingItem{
			Tipo:       coalesce(row.Tipo, row.Type),
			Nome:       coalesce(row.Nome, row.Name),
			Sigla:      row.Sigla,
			Explicacao: coalesce(row.Explicacao, row.Explanation),
		}
		if item.Nome == "" {
			continue
		}
		switch {
		case row.Similaridade != nil:
			item.Similaridade = *row.Similaridade
		case row.Score != nil:
			item.Similaridade = *row.Score
		}
		ranking = append(ranking, item)
	}
	if len(ranking) == 0 {
		ranking = nil
	}

	return InterviewResult{
		SessionID: loose.SessionID,
		Metricas:  loose.Metricas,
		Vetor:     loose.Vetor,
		Ranking:   ranking,
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
