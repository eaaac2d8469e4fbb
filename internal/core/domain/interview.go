package domain

import "encoding/json"

// Likert answers range over a 7-point agreement scale.
const (
	LikertMin = 1
	LikertMax = 7
)

// ValidLikert reports whether v is a usable interview answer.
func ValidLikert(v int) bool {
	return v >= LikertMin && v <= LikertMax
}

// InterviewQuestion is one statement presented to the user.
type InterviewQuestion struct {
	ID         string   `json:"id,omitempty"`
	QuestionID string   `json:"question_id,omitempty"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
}

// Key returns the identifier used to record an answer for this
// question, preferring question_id over id.
func (q InterviewQuestion) Key() string {
	if q.QuestionID != "" {
		return q.QuestionID
	}
	return q.ID
}

// InterviewStartResponse is the payload returned when a session opens.
// Servers differ on whether the first question arrives as "question" or
// "next_question".
type InterviewStartResponse struct {
	SessionID     string           `json:"session_id"`
	Question      *json.RawMessage `json:"question,omitempty"`
	NextQuestion  *json.RawMessage `json:"next_question,omitempty"`
	AnsweredCount int              `json:"answered_count,omitempty"`
}

// FirstQuestion normalizes the opening question out of either field.
func (r InterviewStartResponse) FirstQuestion() *InterviewQuestion {
	if q := NormalizeQuestion(r.Question); q != nil {
		return q
	}
	return NormalizeQuestion(r.NextQuestion)
}

// InterviewAnswerRequest records one Likert answer.
type InterviewAnswerRequest struct {
	Answer     int    `json:"answer"`
	QuestionID string `json:"question_id,omitempty"`
}

// InterviewAnswerResponse is the payload returned after an answer.
type InterviewAnswerResponse struct {
	SessionID     string           `json:"session_id,omitempty"`
	NextQuestion  *json.RawMessage `json:"next_question,omitempty"`
	AnsweredCount int              `json:"answered_count,omitempty"`
	Done          bool             `json:"done,omitempty"`
}

// InterviewMetrics summarizes a finished interview.
type InterviewMetrics struct {
	EsquerdaDireita float64 `json:"esquerda_direita,omitempty"`
	Confianca       float64 `json:"confianca,omitempty"`
	Consistencia    float64 `json:"consistencia,omitempty"`
}

// RankingItem is one profile-similarity row in an interview result.
type RankingItem struct {
	Tipo         string  `json:"tipo,omitempty"`
	Nome         string  `json:"nome"`
	Sigla        string  `json:"sigla,omitempty"`
	Similaridade float64 `json:"similaridade"`
	Explicacao   string  `json:"explicacao,omitempty"`
}

// InterviewResult is the scored outcome of an interview. All scoring
// happens server-side; this is a presentation shape.
type InterviewResult struct {
	SessionID string             `json:"session_id,omitempty"`
	Metricas  *InterviewMetrics  `json:"metricas,omitempty"`
	Vetor     map[string]float64 `json:"vetor,omitempty"`
	Ranking   []RankingItem      `json:"ranking,omitempty"`
}

// InterviewSession is the locally persisted bookkeeping for an
// in-progress interview: which session is open, how far it got, and
// which answers were recorded. It never holds the bearer token.
type InterviewSession struct {
	SessionID     string         `json:"session_id"`
	AnsweredCount int            `json:"answered_count"`
	Answers       map[string]int `json:"answers"`
}
