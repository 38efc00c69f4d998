package reconcile

import (
	stderrors "errors"

	"github.com/arthur-debert/doksnet/pkg/core"
	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
	"github.com/arthur-debert/doksnet/pkg/store"
	"github.com/arthur-debert/doksnet/pkg/verify"
)

// ErrInterrupted is returned by a Prompter to end the session early
var ErrInterrupted = errors.New(errors.ErrInterrupted, "session interrupted")

// Prompter collects decisions from the user
type Prompter interface {
	// Choose asks what to do with item, the pos-th of total (1-based)
	Choose(item verify.Result, pos, total int) (Action, error)
	// EditRequest asks which fields of item to replace
	EditRequest(item verify.Result) (core.EditRequest, error)
}

// Outcome reports what happened to one item
type Outcome struct {
	Item   verify.Result
	Action Action
	// Record is the record after an accept or edit, or the removed one
	Record store.Record
	// Recheck is the fresh verification of an edited record
	Recheck *verify.Result
	// Err is set when the effect could not be applied; the item is then
	// presented again
	Err error
}

// Summary lists the ids handled by a session, per action
type Summary struct {
	Accepted    []string
	Edited      []string
	Removed     []string
	Skipped     []string
	Interrupted bool
}

// Total returns how many items received a decision
func (s Summary) Total() int {
	return len(s.Accepted) + len(s.Edited) + len(s.Removed) + len(s.Skipped)
}

// Session applies interactive decisions to a workspace
type Session struct {
	Workspace *core.Workspace
	Prompter  Prompter
	// OnOutcome, when set, is called after every decision
	OnOutcome func(Outcome)
}

// Run presents items in order until all are decided or the prompter
// interrupts. Decisions already applied stay persisted either way.
func (s *Session) Run(items []verify.Result) (Summary, error) {
	log := logging.GetLogger("reconcile")

	ids := make([]string, len(items))
	byID := make(map[string]verify.Result, len(items))
	for i, item := range items {
		ids[i] = item.RecordID
		byID[item.RecordID] = item
	}

	var summary Summary
	state := Start(ids)
	for !state.Done() {
		item := byID[state.Current()]

		action, err := s.Prompter.Choose(item, state.Pos+1, len(state.Items))
		if err != nil {
			if stderrors.Is(err, ErrInterrupted) {
				log.Info().Int("decided", summary.Total()).Msg("Session interrupted")
				summary.Interrupted = true
				return summary, nil
			}
			return summary, err
		}

		next, effect := Transition(state, action)
		outcome := Outcome{Item: item, Action: action}
		if next.Pos == state.Pos {
			outcome.Err = errors.Newf(errors.ErrInvalidInput, "unknown action %d", int(action))
			s.report(outcome)
			continue
		}

		if err := s.apply(effect, &outcome); err != nil {
			if stderrors.Is(err, ErrInterrupted) {
				summary.Interrupted = true
				return summary, nil
			}
			outcome.Err = err
			log.Warn().Err(err).Str("id", item.RecordID).Str("action", action.String()).Msg("Action failed")
			s.report(outcome)
			continue
		}

		summary.record(action, item.RecordID)
		s.report(outcome)
		state = next
	}

	log.Info().
		Int("accepted", len(summary.Accepted)).
		Int("edited", len(summary.Edited)).
		Int("removed", len(summary.Removed)).
		Int("skipped", len(summary.Skipped)).
		Msg("Session complete")
	return summary, nil
}

func (s *Session) apply(effect Effect, outcome *Outcome) error {
	ws := s.Workspace

	switch effect.Kind {
	case EffectAccept:
		rec, err := ws.Accept(effect.RecordID)
		if err != nil {
			return err
		}
		outcome.Record = rec

	case EffectEdit:
		req, err := s.Prompter.EditRequest(outcome.Item)
		if err != nil {
			return err
		}
		rec, err := ws.Edit(effect.RecordID, req)
		if err != nil {
			return err
		}
		outcome.Record = rec
		res, err := ws.VerifyRecord(rec.ID)
		if err != nil {
			return err
		}
		outcome.Recheck = &res

	case EffectRemove:
		rec, err := ws.Remove(effect.RecordID)
		if err != nil {
			return err
		}
		outcome.Record = rec
	}
	return nil
}

func (s *Session) report(o Outcome) {
	if s.OnOutcome != nil {
		s.OnOutcome(o)
	}
}

func (s *Summary) record(a Action, id string) {
	switch a {
	case ActionAccept:
		s.Accepted = append(s.Accepted, id)
	case ActionEdit:
		s.Edited = append(s.Edited, id)
	case ActionRemove:
		s.Removed = append(s.Removed, id)
	default:
		s.Skipped = append(s.Skipped, id)
	}
}
