package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawMsg(s string) *json.RawMessage {
	raw := json.RawMessage(s)
	return &raw
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		name string
		raw  *json.RawMessage
		want *InterviewQuestion
	}{
		{
			name: "nil payload",
			raw:  nil,
			want: nil,
		},
		{
			name: "json null",
			raw:  rawMsg("null"),
			want: nil,
		},
		{
			name: "canonical text field",
			raw:  rawMsg(`{"question_id":"q1","text":"O Estado deve taxar grandes fortunas.","tags":["economia"]}`),
			want: &InterviewQuestion{QuestionID: "q1", Text: "O Estado deve taxar grandes fortunas.", Tags: []string{"economia"}},
		},
		{
			name: "question field variant",
			raw:  rawMsg(`{"id":"q2","question":"Privatização de estatais é desejável."}`),
			want: &InterviewQuestion{ID: "q2", Text: "Privatização de estatais é desejável."},
		},
		{
			name: "statement field variant",
			raw:  rawMsg(`{"statement":"O voto deveria ser facultativo."}`),
			want: &InterviewQuestion{Text: "O voto deveria ser facultativo."},
		},
		{
			name: "no usable text",
			raw:  rawMsg(`{"id":"q3","tags":["x"]}`),
			want: nil,
		},
		{
			name: "malformed payload",
			raw:  rawMsg(`{"text": 12`),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuestion(tt.raw))
		})
	}
}

func TestNormalizeQuestionKey(t *testing.T) {
	q := NormalizeQuestion(rawMsg(`{"id":"fallback","question_id":"preferred","text":"t"}`))
	require.NotNil(t, q)
	assert.Equal(t, "preferred", q.Key())

	q = NormalizeQuestion(rawMsg(`{"id":"fallback","text":"t"}`))
	require.NotNil(t, q)
	assert.Equal(t, "fallback", q.Key())
}

func TestNormalizeResult(t *testing.T) {
	t.Run("canonical envelope", func(t *testing.T) {
		got := NormalizeResult([]byte(`{
			"session_id": "s1",
			"metricas": {"esquerda_direita": -0.4, "confianca": 0.8},
			"vetor": {"economia": 0.2},
			"ranking": [
				{"tipo": "partido", "nome": "Partido A", "sigla": "PA", "similaridade": 0.91},
				{"nome": "Partido B", "similaridade": 0.55, "explicacao": "divergência fiscal"}
			]
		}`))

		assert.Equal(t, "s1", got.SessionID)
		require.NotNil(t, got.Metricas)
		assert.InDelta(t, -0.4, got.Metricas.EsquerdaDireita, 1e-9)
		require.Len(t, got.Ranking, 2)
		assert.Equal(t, "Partido A", got.Ranking[0].Nome)
		assert.InDelta(t, 0.91, got.Ranking[0].Similaridade, 1e-9)
		assert.Equal(t, "divergência fiscal", got.Ranking[1].Explicacao)
	})

	t.Run("english spellings under similaridade key", func(t *testing.T) {
		got := NormalizeResult([]byte(`{
			"similaridade": [
				{"type": "party", "name": "Partido C", "score": 0.7, "explanation": "aligned"}
			]
		}`))

		require.Len(t, got.Ranking, 1)
		assert.Equal(t, RankingItem{Tipo: "party", Nome: "Partido C", Similaridade: 0.7, Explicacao: "aligned"}, got.Ranking[0])
	})

	t.Run("nameless rows dropped", func(t *testing.T) {
		got := NormalizeResult([]byte(`{"ranking": [{"similaridade": 0.3}, {"nome": "X", "score": 0.2}]}`))
		require.Len(t, got.Ranking, 1)
		assert.Equal(t, "X", got.Ranking[0].Nome)
		assert.InDelta(t, 0.2, got.Ranking[0].Similaridade, 1e-9)
	})

	t.Run("malformed payload", func(t *testing.T) {
		assert.Equal(t, InterviewResult{}, NormalizeResult([]byte("not json")))
	})
}

func TestFlexID(t *testing.T) {
	var item PropositionItem
	require.NoError(t, json.Unmarshal([]byte(`{"id": 4512, "title": "PL 1234/2025"}`), &item))
	assert.Equal(t, FlexID("4512"), item.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "PL-99"}`), &item))
	assert.Equal(t, FlexID("PL-99"), item.ID)
}
