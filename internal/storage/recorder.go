package storage

import "github.com/vovakirdan/canvas-arcade/internal/core"

// ScoreSaver is the part of Store a Recorder needs.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Recorder saves a session's score once per round: when the game reaches
// Over, or when the player leaves with a positive score. A nil saver
// turns it into a no-op.
type Recorder struct {
	saver  ScoreSaver
	gameID string
	saved  bool
}

// NewRecorder returns a Recorder for one game session.
func NewRecorder(saver ScoreSaver, gameID string) *Recorder {
	return &Recorder{saver: saver, gameID: gameID}
}

// Observe is called after every step. It saves when the round has just
// ended and re-arms once a new round is playing.
func (r *Recorder) Observe(state core.GameState) error {
	if !state.GameOver {
		r.saved = false
		return nil
	}
	return r.save(state.Score)
}

// Finish saves a positive score that was not saved yet.
func (r *Recorder) Finish(state core.GameState) error {
	if state.Score <= 0 {
		return nil
	}
	return r.save(state.Score)
}

// Saved reports whether the current round is already on the board.
func (r *Recorder) Saved() bool {
	return r.saved
}

func (r *Recorder) save(score int) error {
	if r.saved || r.saver == nil {
		return nil
	}
	r.saved = true
	_, err := r.saver.SaveScore(r.gameID, score)
	return err
}
