// Package tui implements the interactive interview flow on bubbletea.
// The model drives driving.InterviewService; all scoring and session
// bookkeeping stays behind that port.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brado-project/brado-cli/internal/adapters/driving/tui/styles"
	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// phase is the interview flow state.
type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFinishing
	phaseResult
	phaseError
)

// Likert scale labels, indexed by value-1.
var likertLabels = [7]string{
	"Discordo totalmente",
	"Discordo",
	"Discordo em parte",
	"Neutro",
	"Concordo em parte",
	"Concordo",
	"Concordo totalmente",
}

// Messages emitted by service commands.
type (
	progressMsg driving.InterviewProgress
	resultMsg   domain.InterviewResult
	errMsg      struct{ err error }
)

// InterviewModel is the bubbletea model for the interview flow.
type InterviewModel struct {
	svc     driving.InterviewService
	styles  *styles.Styles
	spinner spinner.Model

	phase    phase
	progress driving.InterviewProgress
	selected int // 0-based index into the Likert scale
	result   domain.InterviewResult
	err      error
	width    int
}

// NewInterviewModel creates the interview flow model.
func NewInterviewModel(svc driving.InterviewService) InterviewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return InterviewModel{
		svc:      svc,
		styles:   styles.DefaultStyles(),
		spinner:  s,
		phase:    phaseLoading,
		selected: 3, // start on the neutral value
		width:    80,
	}
}

// Err returns the terminal error, if the flow ended on one.
func (m InterviewModel) Err() error {
	return m.err
}

// Init starts the session load.
func (m InterviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.openSession())
}

// openSession resumes the persisted session, starting a fresh one when
// none exists.
func (m InterviewModel) openSession() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		progress, err := svc.Resume(ctx)
		if errors.Is(err, domain.ErrNoSession) {
			progress, err = svc.Start(ctx, "")
		}
		if err != nil {
			return errMsg{err}
		}
		return progressMsg(progress)
	}
}

func (m InterviewModel) answer() tea.Cmd {
	svc := m.svc
	key := ""
	if m.progress.Question != nil {
		key = m.progress.Question.Key()
	}
	value := m.selected + 1
	return func() tea.Msg {
		progress, err := svc.Answer(context.Background(), key, value)
		if err != nil {
			return errMsg{err}
		}
		return progressMsg(progress)
	}
}

func (m InterviewModel) finish() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		result, err := svc.Finish(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return resultMsg(result)
	}
}

// Update handles messages.
func (m InterviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseLoading || m.phase == phaseFinishing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case progressMsg:
		m.progress = driving.InterviewProgress(msg)
		if m.progress.Done {
			m.phase = phaseFinishing
			return m, tea.Batch(m.spinner.Tick, m.finish())
		}
		m.phase = phaseQuestion
		m.selected = 3
		return m, nil

	case resultMsg:
		m.result = domain.InterviewResult(msg)
		m.phase = phaseResult
		return m, nil

	case errMsg:
		m.err = msg.err
		m.phase = phaseError
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m InterviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		switch key {
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
		case "right", "l":
			if m.selected < domain.LikertMax-1 {
				m.selected++
			}
		case "1", "2", "3", "4", "5", "6", "7":
			m.selected = int(key[0]-'0') - 1
		case "enter":
			m.phase = phaseLoading
			return m, tea.Batch(m.spinner.Tick, m.answer())
		}
	case phaseResult:
		// Any key leaves the result screen.
		return m, tea.Quit
	}

	return m, nil
}

// View renders the flow.
func (m InterviewModel) View() string {
	switch m.phase {
	case phaseLoading:
		return fmt.Sprintf("\n  %s Carregando...\n", m.spinner.View())
	case phaseFinishing:
		return fmt.Sprintf("\n  %s Calculando resultado...\n", m.spinner.View())
	case phaseQuestion:
		return m.viewQuestion()
	case phaseResult:
		return m.viewResult()
	case phaseError:
		return m.styles.Error.Render(fmt.Sprintf("erro: %v", m.err)) + "\n"
	}
	return ""
}

func (m InterviewModel) viewQuestion() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Entrevista Brado"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Respondidas: %d", m.progress.AnsweredCount)))
	b.WriteString("\n")

	if q := m.progress.Question; q != nil {
		b.WriteString(m.styles.Question.Render(q.Text))
		b.WriteString("\n\n")
	}

	// Likert scale selector
	var scale []string
	for i := 0; i < domain.LikertMax; i++ {
		cell := fmt.Sprintf(" %d ", i+1)
		if i == m.selected {
			scale = append(scale, m.styles.Selected.Render(cell))
		} else {
			scale = append(scale, m.styles.Normal.Render(cell))
		}
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(scale, " "))
	b.WriteString("\n\n  ")
	b.WriteString(m.styles.Muted.Render(likertLabels[m.selected]))
	b.WriteString("\n\n  ")
	b.WriteString(m.styles.Muted.Render("←/→ ou 1-7 para escolher, enter para responder, q para sair"))
	b.WriteString("\n")

	return b.String()
}

func (m InterviewModel) viewResult() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Resultado"))
	b.WriteString("\n\n")

	if mt := m.result.Metricas; mt != nil {
		b.WriteString(fmt.Sprintf("  Eixo esquerda/direita: %.2f\n", mt.EsquerdaDireita))
		b.WriteString(fmt.Sprintf("  Confiança:             %.2f\n", mt.Confianca))
		b.WriteString(fmt.Sprintf("  Consistência:          %.2f\n", mt.Consistencia))
		b.WriteString("\n")
	}

	if len(m.result.Ranking) > 0 {
		b.WriteString(m.styles.Success.Render("  Perfis mais próximos:"))
		b.WriteString("\n")
		for i, item := range m.result.Ranking {
			b.WriteString(fmt.Sprintf("  [%d] %s (%.1f%%)\n", i+1, item.Nome, item.Similaridade*100))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("  Pressione qualquer tecla para sair"))
	b.WriteString("\n")

	return b.String()
}
