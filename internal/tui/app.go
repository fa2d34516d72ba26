package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/cardinput/internal/cardform"
	"github.com/jask/cardinput/internal/cardstate"
	"github.com/jask/cardinput/internal/config"
	"github.com/jask/cardinput/internal/database/repository"
)

// maxFormWidth keeps the form readable on wide terminals.
const maxFormWidth = 64

// CardStore persists card summaries.
type CardStore interface {
	Insert(ctx context.Context, c repository.Card) (repository.Card, error)
	List(ctx context.Context) ([]repository.Card, error)
}

// App hosts the card form, the state behind it and the saved card list.
type App struct {
	ctx   context.Context
	cfg   config.Config
	store CardStore
	log   *zap.Logger

	state *cardstate.State
	form  *cardform.Model
	keys  keyMap
	help  help.Model

	stateOpts []cardstate.Option
	cards     []repository.Card
	status    string
	statusErr bool
	width     int
}

type Option func(*App)

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithStateOptions passes extra options to the card state, after the ones
// derived from config.
func WithStateOptions(opts ...cardstate.Option) Option {
	return func(a *App) { a.stateOpts = append(a.stateOpts, opts...) }
}

type (
	cardsMsg []repository.Card
	savedMsg repository.Card
	errMsg   struct{ error }
)

func New(ctx context.Context, cfg config.Config, store CardStore, opts ...Option) *App {
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		store: store,
		log:   zap.NewNop(),
		help:  help.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	stateOpts := []cardstate.Option{
		cardstate.WithRequiresCVC(cfg.UI.RequiresCVC),
		cardstate.WithListener(a.onCardChange),
	}
	if cfg.UI.AutoFocus {
		stateOpts = append(stateOpts, cardstate.WithAutoFocus())
	}
	a.state = cardstate.New(append(stateOpts, a.stateOpts...)...)

	formOpts := []cardform.Option{cardform.WithLogger(a.log.Named("cardform"))}
	if !cfg.UI.Animate {
		formOpts = append(formOpts, cardform.WithoutAnimation())
	}
	a.form = cardform.New(a.state, propsFromConfig(cfg.UI), formOpts...)
	a.keys = newKeyMap(a.form.KeyMap())

	for _, w := range cfg.Warnings() {
		a.log.Warn("config", zap.String("warning", w))
	}
	return a
}

// propsFromConfig maps the ui section onto form props. Empty placeholders keep
// the form's defaults.
func propsFromConfig(ui config.UIConfig) cardform.Props {
	p := cardform.DefaultProps()
	p.Layout = cardform.ParseLayout(ui.Layout)
	p.ValidColor = ui.ValidColor
	p.InvalidColor = ui.InvalidColor
	p.PlaceholderColor = ui.PlaceholderColor

	p.Placeholders = map[cardform.FieldName]string{}
	for field, text := range map[cardform.FieldName]string{
		cardform.FieldNumber: ui.Placeholders.Number,
		cardform.FieldExpiry: ui.Placeholders.Expiry,
		cardform.FieldCVC:    ui.Placeholders.CVC,
	} {
		if text != "" {
			p.Placeholders[field] = text
		}
	}
	return p
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.form.Init(), a.loadCards())
}

func (a *App) loadCards() tea.Cmd {
	return func() tea.Msg {
		cards, err := a.store.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return cardsMsg(cards)
	}
}

func (a *App) saveCard(c repository.Card) tea.Cmd {
	return func() tea.Msg {
		saved, err := a.store.Insert(a.ctx, c)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg(saved)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		a.form.SetWidth(a.formWidth())
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Submit):
			return a, a.submit()
		case key.Matches(m, a.keys.Layout):
			return a, a.toggleLayout()
		case key.Matches(m, a.keys.Reset):
			a.setStatus("cleared", false)
			return a, a.reset()
		}
	case cardsMsg:
		a.cards = []repository.Card(m)
		return a, nil
	case savedMsg:
		card := repository.Card(m)
		a.log.Info("card saved", zap.String("id", card.ID), zap.String("brand", card.Brand))
		a.setStatus("saved "+describe(card), false)
		return a, tea.Batch(a.reset(), a.loadCards())
	case errMsg:
		a.log.Error("card store", zap.Error(m.error))
		a.setStatus("error: "+m.Error(), true)
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a *App) submit() tea.Cmd {
	if !a.state.Valid() {
		a.setStatus("card is not complete", true)
		return nil
	}
	s := a.state.Summary()
	return a.saveCard(repository.Card{Brand: s.Brand, Last4: s.Last4, Expiry: s.Expiry})
}

// reset clears the form and puts focus back on the number. Clearing fires the
// form's become-empty callbacks, so focus is restored after a first refresh.
func (a *App) reset() tea.Cmd {
	a.state.Reset()
	cmd := a.form.Refresh()
	a.state.Focus(cardform.FieldNumber)
	return tea.Batch(cmd, a.form.Refresh())
}

func (a *App) toggleLayout() tea.Cmd {
	next := cardform.LayoutMode(cardform.Form{})
	if _, ok := a.form.Layout().(cardform.Form); ok {
		next = cardform.Compact{}
	}
	a.form.SetLayout(next)
	a.setStatus("layout: "+next.Name(), false)
	return a.form.Refresh()
}

func (a *App) onCardChange(s cardstate.Snapshot) {
	a.log.Debug("card changed",
		zap.String("type", s.Values.Type),
		zap.String("number", string(s.Status.Number)),
		zap.String("expiry", string(s.Status.Expiry)),
		zap.String("cvc", string(s.Status.CVC)),
		zap.Bool("valid", s.Valid),
	)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a *App) formWidth() int {
	w := a.width - formBoxStyle.GetHorizontalFrameSize()
	return max(1, min(maxFormWidth, w))
}

// State exposes the card state, mainly for tests and the CLI.
func (a *App) State() *cardstate.State { return a.state }

// Form exposes the card widget.
func (a *App) Form() *cardform.Model { return a.form }

func describe(c repository.Card) string {
	brand := c.Brand
	if brand == "" {
		brand = "card"
	}
	return fmt.Sprintf("%s •••• %s exp %s", brand, c.Last4, c.Expiry)
}
