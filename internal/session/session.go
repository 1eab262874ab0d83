package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/persistence"
)

// Encounter phases.
const (
	PhasePlayerTurn = "player_turn"
	PhaseShadowTurn = "shadow_turn"
	PhaseEnded      = "ended"
)

const (
	eventPlayerDone = "player_done"
	eventShadowDone = "shadow_done"
	eventFinish     = "finish"
)

var (
	ErrEncounterOver        = errors.New("the encounter is over")
	ErrNotPlayerTurn        = errors.New("it is not your turn")
	ErrUnknownManifestation = errors.New("unknown manifestation")
)

// Store defines the dependency required by Encounter to journal records
type Store interface {
	Append(rec persistence.Record) error
	Close() error
}

// Options are the external collaborators of an encounter.
type Options struct {
	// ID names the encounter; a random one is generated when empty.
	ID         string
	Player     engine.Player
	EndureCost int
	// Rand is required.
	Rand engine.Rand
	// Seed is journaled so an encounter can be reproduced.
	Seed   int64
	Policy engine.DecisionPolicy
	Store  Store
	Logger *zap.Logger
	Now    func() time.Time
}

// Outcome describes what a single player command caused.
type Outcome struct {
	Action engine.Action
	// Rejected holds the validation reason when the action was refused.
	Rejected    string
	Entries     []engine.LogEntry
	Termination engine.TerminationResult
}

// Encounter manages the loop of taking player actions, resolving the
// antagonist's response, journaling the log and detecting the end.
// It is not safe for concurrent use.
type Encounter struct {
	id     string
	opts   Options
	state  engine.Session
	phase  *fsm.FSM
	result engine.TerminationResult
	log    *zap.Logger
	store  Store
}

// New starts an encounter against the template manifestationID.
func New(ctx context.Context, f *engine.Factory, manifestationID string, opts Options) (*Encounter, error) {
	if opts.Rand == nil {
		return nil, errors.New("encounter requires a random source")
	}
	enemy := f.CreateManifestation(manifestationID)
	if enemy == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownManifestation, manifestationID)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}

	e := &Encounter{
		id:    opts.ID,
		opts:  opts,
		state: engine.NewSession(enemy, opts.Player),
		store: opts.Store,
	}
	e.log = opts.Logger.With(zap.String("encounter_id", e.id))
	e.phase = e.newPhaseFSM()

	e.journal(&persistence.EncounterStartedRecord{
		EncounterID:     e.id,
		ManifestationID: enemy.ID,
		Name:            enemy.Name,
		Seed:            opts.Seed,
		Player:          opts.Player,
		StartedAt:       opts.Now(),
	})
	e.log.Info("encounter started",
		zap.String("manifestation", enemy.ID),
		zap.Int("enemy_hp", enemy.CurrentHP),
		zap.Int64("seed", opts.Seed),
	)

	// a player configured at 0 health is defeated on arrival
	if end := engine.CheckCombatEnd(e.state); end.IsEnded {
		if err := e.finish(ctx, end); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Encounter) newPhaseFSM() *fsm.FSM {
	return fsm.NewFSM(
		PhasePlayerTurn,
		fsm.Events{
			{Name: eventPlayerDone, Src: []string{PhasePlayerTurn}, Dst: PhaseShadowTurn},
			{Name: eventShadowDone, Src: []string{PhaseShadowTurn}, Dst: PhasePlayerTurn},
			{Name: eventFinish, Src: []string{PhasePlayerTurn, PhaseShadowTurn}, Dst: PhaseEnded},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				e.log.Debug("phase changed",
					zap.String("from", ev.Src),
					zap.String("to", ev.Dst),
					zap.Int("turn", e.state.Turn),
				)
			},
		},
	)
}

// ID returns the encounter's unique identifier.
func (e *Encounter) ID() string {
	return e.id
}

// State returns a copy of the current session.
func (e *Encounter) State() engine.Session {
	return e.state.Clone()
}

// Phase returns the current phase name.
func (e *Encounter) Phase() string {
	return e.phase.Current()
}

// Ended reports whether the encounter reached a terminal state.
func (e *Encounter) Ended() bool {
	return e.phase.Is(PhaseEnded)
}

// Result returns the termination result; zero until the encounter ends.
func (e *Encounter) Result() engine.TerminationResult {
	return e.result
}

// Summary projects the live log.
func (e *Encounter) Summary() engine.Summary {
	return engine.NewProjector().Build(e.state.Log)
}

// EndureCost returns the configured energy cost of ENDURE.
func (e *Encounter) EndureCost() int {
	return e.opts.EndureCost
}

// Validate checks an action without resolving it.
func (e *Encounter) Validate(action engine.Action) engine.ValidationResult {
	return engine.CanPerformAction(action, e.state, engine.ActionContext{EndureCost: e.opts.EndureCost})
}

// Act resolves one full round started by the player's action. A refused
// action is reported through Outcome.Rejected and leaves the state untouched.
func (e *Encounter) Act(ctx context.Context, action engine.Action) (Outcome, error) {
	if err := e.ready(); err != nil {
		return Outcome{}, err
	}
	out := Outcome{Action: action}

	if v := e.Validate(action); !v.CanPerform {
		e.log.Debug("action rejected",
			zap.String("action", string(action)),
			zap.String("reason", v.Reason),
			zap.Int("turn", e.state.Turn),
		)
		out.Rejected = v.Reason
		return out, nil
	}

	mark := len(e.state.Log)
	res := engine.ExecuteAction(action, e.state, engine.ActionOptions{
		PlayerLevel: e.opts.Player.Level,
		EndureCost:  e.opts.EndureCost,
		Rand:        e.opts.Rand,
	})
	e.commit(res.Session)
	e.log.Info("action resolved",
		zap.String("action", string(action)),
		zap.Int("turn", res.LogEntry.Turn),
		zap.Int("damage", res.Damage),
		zap.Int("heal", res.HealthHeal),
	)

	if err := e.afterPlayer(ctx); err != nil {
		return out, err
	}
	out.Entries = e.entriesSince(mark)
	out.Termination = e.result
	return out, nil
}

// Surrender ends the encounter as a defeat on the player's terms.
func (e *Encounter) Surrender(ctx context.Context) (Outcome, error) {
	if err := e.ready(); err != nil {
		return Outcome{}, err
	}
	mark := len(e.state.Log)
	e.commit(engine.Surrender(e.state).Session)
	if err := e.finish(ctx, engine.CheckCombatEnd(e.state)); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Action:      engine.ActionSurrender,
		Entries:     e.entriesSince(mark),
		Termination: e.result,
	}, nil
}

// Close releases the journal, if any.
func (e *Encounter) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

func (e *Encounter) ready() error {
	if e.phase.Is(PhaseEnded) {
		return ErrEncounterOver
	}
	if !e.phase.Is(PhasePlayerTurn) {
		return ErrNotPlayerTurn
	}
	return nil
}

// afterPlayer finishes the round: termination check, antagonist turn, status
// processing and a second check. Forced skips hand the turn straight back
// to the antagonist until the player can act or the encounter ends.
func (e *Encounter) afterPlayer(ctx context.Context) error {
	for {
		if end := engine.CheckCombatEnd(e.state); end.IsEnded {
			return e.finish(ctx, end)
		}
		if err := e.phase.Event(ctx, eventPlayerDone); err != nil {
			return fmt.Errorf("enter shadow turn: %w", err)
		}

		ar := engine.RunAntagonistTurn(e.state, engine.AntagonistOptions{Policy: e.opts.Policy})
		fields := []zap.Field{
			zap.String("attack", ar.Label),
			zap.Int("damage", ar.Damage),
			zap.Int("health", ar.Session.PlayerHealth),
		}
		if ar.Ability != nil {
			fields = append(fields, zap.String("ability", ar.Ability.ID))
		}
		e.log.Info("shadow acted", fields...)

		e.commit(engine.ProcessStatusEffects(ar.Session))
		if end := engine.CheckCombatEnd(e.state); end.IsEnded {
			return e.finish(ctx, end)
		}
		if err := e.phase.Event(ctx, eventShadowDone); err != nil {
			return fmt.Errorf("enter player turn: %w", err)
		}

		skipped, ok := engine.ConsumeSkippedTurn(e.state)
		if !ok {
			return nil
		}
		e.log.Info("turn skipped", zap.Int("turn", e.state.Turn))
		e.commit(skipped.Session)
	}
}

func (e *Encounter) finish(ctx context.Context, end engine.TerminationResult) error {
	e.result = end
	if err := e.phase.Event(ctx, eventFinish); err != nil {
		return fmt.Errorf("finish encounter: %w", err)
	}
	rec := &persistence.EncounterEndedRecord{
		Victory: end.Victory,
		Reason:  end.Reason,
		Turns:   e.state.Turn,
		EndedAt: e.opts.Now(),
	}
	if end.Victory && e.state.Enemy != nil {
		reward := e.state.Enemy.VictoryReward
		rec.Reward = &reward
	}
	e.journal(rec)
	e.log.Info("encounter ended",
		zap.Bool("victory", end.Victory),
		zap.String("reason", end.Reason),
		zap.Int("turn", e.state.Turn),
	)
	return nil
}

// commit replaces the state and journals every new log entry.
func (e *Encounter) commit(next engine.Session) {
	mark := len(e.state.Log)
	e.state = next
	for _, entry := range e.entriesSince(mark) {
		e.journal(&persistence.LogEntryRecord{LogEntry: entry})
	}
}

func (e *Encounter) entriesSince(mark int) []engine.LogEntry {
	if mark >= len(e.state.Log) {
		return nil
	}
	out := make([]engine.LogEntry, len(e.state.Log)-mark)
	copy(out, e.state.Log[mark:])
	return out
}

// journal failures never interrupt play; the log keeps the live record.
func (e *Encounter) journal(rec persistence.Record) {
	if e.store == nil {
		return
	}
	if err := e.store.Append(rec); err != nil {
		e.log.Error("journal append failed", zap.String("record", rec.Type()), zap.Error(err))
	}
}
