package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

type CLI struct {
	Players int    `short:"p" help:"Number of players at the table (2-9)" default:"6"`
	Seed    *int64 `help:"Random seed for reproducible deals"`
}

type keyMap struct {
	Deal key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Deal: key.NewBinding(
		key.WithKeys("n", " "),
		key.WithHelp("n", "deal next hand"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1, 2)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type model struct {
	deck    *poker.Deck
	players int

	holes  [][]poker.Card
	board  []poker.Card
	evals  []poker.HandEvaluation
	winner int
	tied   bool
	hands  int

	err      error
	quitting bool
}

func newModel(players int, rng *rand.Rand) *model {
	return &model{
		deck:    poker.NewDeck(rng),
		players: players,
	}
}

func (m *model) Init() tea.Cmd {
	m.dealHand()
	return nil
}

func (m *model) dealHand() {
	m.deck.Reset()

	m.holes = make([][]poker.Card, m.players)
	for seat := range m.holes {
		m.holes[seat] = m.deck.Deal(2)
	}
	m.board = m.deck.Deal(5)

	m.evals = make([]poker.HandEvaluation, m.players)
	for seat, hole := range m.holes {
		eval, err := poker.EvaluateHand(hole, m.board)
		if err != nil {
			m.err = err
			return
		}
		m.evals[seat] = eval
	}

	m.winner, m.tied = 0, false
	for seat := 1; seat < m.players; seat++ {
		switch poker.CompareHands(m.evals[seat], m.evals[m.winner]) {
		case 1:
			m.winner, m.tied = seat, false
		case 0:
			m.tied = true
		}
	}
	m.hands++
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Deal):
			m.dealHand()
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" ♠ ♥ Texas Hold'em · hand #%d ♦ ♣ ", m.hands)))
	b.WriteString("\n\n")

	var rows []string
	rows = append(rows, "Board  "+renderCards(m.board))
	rows = append(rows, "")
	for seat, hole := range m.holes {
		marker := "  "
		if seat == m.winner {
			marker = winnerStyle.Render("▶ ")
		}
		line := fmt.Sprintf("%sSeat %d  %s  %s", marker, seat+1,
			renderCards(hole), categoryStyle.Render(m.evals[seat].Name()))
		rows = append(rows, line)
	}
	if m.tied {
		rows = append(rows, "")
		rows = append(rows, winnerStyle.Render("split pot"))
	}

	b.WriteString(tableStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("n: deal next hand • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			parts[i] = redCardStyle.Render(card.String())
		} else {
			parts[i] = blackCardStyle.Render(card.String())
		}
	}
	return strings.Join(parts, " ")
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Interactive dealer: deal hands to a table and watch the showdown."))

	if cli.Players < 2 || cli.Players > 9 {
		fmt.Fprintln(os.Stderr, "Players must be between 2 and 9")
		ctx.Exit(1)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	p := tea.NewProgram(newModel(cli.Players, randutil.New(seed)))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		ctx.Exit(1)
	}
}
