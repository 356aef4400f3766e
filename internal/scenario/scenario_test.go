package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/journal"
	"github.com/Harshitk-cp/emgine/internal/worldstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pantry = `
name: pantry
slots: 3
goals:
  - name: stock
    target: "1,1,1"
    importance: 1
  - name: clean plate
    target: "0,0,0"
    importance: 1.5
    types: [gustatory]
events:
  - deltas: [1, 0, 0]
    attend: 2
    attach: up
  - deltas: [0, 1, 1]
    attend: 1
  - deltas: [-1, 0, 0]
    probability: 0.5
    attach: down
counters:
  attention_step_seconds: 0.5
  attachment: 1
`

type memRecorder struct {
	entries []*journal.Entry
	err     error
}

func (m *memRecorder) Record(_ context.Context, entries ...*journal.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(pantry))
	require.NoError(t, err)

	assert.Equal(t, "pantry", s.Name)
	assert.Equal(t, 3, s.Slots)
	require.Len(t, s.Goals, 2)
	assert.Equal(t, []string{"gustatory"}, s.Goals[1].Types)
	require.Len(t, s.Events, 3)
	assert.Equal(t, 0.5, *s.Events[2].Probability)
	assert.Equal(t, float32(0.5), s.Counters.AttentionStepSeconds)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"no slots":       "events: [{deltas: [1]}]",
		"no events":      "slots: 1",
		"unknown field":  "slots: 1\nevents: [{deltas: [1]}]\nmood: happy",
		"bad goal type":  "slots: 1\nevents: [{deltas: [1]}]\ngoals: [{name: g, target: '1', types: [salty]}]",
		"unnamed goal":   "slots: 1\nevents: [{deltas: [1]}]\ngoals: [{target: '1'}]",
		"bad attach op":  "slots: 1\nevents: [{deltas: [1], attach: sideways}]",
		"malformed yaml": "slots: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(pantry))
	require.NoError(t, err)

	rec := &memRecorder{}
	report, err := Run(context.Background(), s, "r1", rec, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Steps)
	assert.Equal(t, "0,1,1", report.World)
	assert.Equal(t, 12, report.Appraisals)
	assert.Len(t, rec.entries, 12)
	assert.Equal(t, float32(1.5), report.TimeAttended)
	assert.Equal(t, 1, report.Attachment)
	assert.Empty(t, report.Diagnostics)

	// Joy: one then two items toward "stock", then 1.5 when an item is
	// taken back toward "clean plate".
	assert.Equal(t, 4.5, report.Intensities["joy"])
	// Disgust: "clean plate" starts satisfied and is disrupted once.
	assert.Equal(t, 1.5, report.Intensities["disgust"])

	first := rec.entries[0]
	assert.Equal(t, "r1", first.Run)
	assert.Equal(t, "stock", first.Goal)
	assert.Equal(t, "joy", first.Channel)
	assert.True(t, first.Elicited)
	assert.Equal(t, "1,0,0", first.Event)
	assert.Equal(t, "1,0,0", first.World)
}

func TestRun_ReportsDiagnostics(t *testing.T) {
	s, err := Parse([]byte(`
slots: 1
goals: [{name: g, target: "1", importance: -2}]
events: [{deltas: [1], attend: -3}]
`))
	require.NoError(t, err)

	var forwarded diag.Recorder
	report, err := Run(context.Background(), s, "r", nil, &forwarded)
	require.NoError(t, err)

	assert.Equal(t, 1, forwarded.Count(diag.GoalImportanceNegative))
	assert.Equal(t, 1, forwarded.Count(diag.AttentionNegative))
	assert.Equal(t, forwarded.Entries(), report.Diagnostics)
	assert.Equal(t, 0.0, report.Intensities["joy"])
}

func TestRun_WorldErrorStops(t *testing.T) {
	s, err := Parse([]byte(`
slots: 2
events:
  - deltas: [1, 0]
  - deltas: [1, 0]
`))
	require.NoError(t, err)

	rec := &memRecorder{}
	_, err = Run(context.Background(), s, "r", rec, nil)
	assert.ErrorIs(t, err, worldstate.ErrInvalidTransition)
	assert.ErrorContains(t, err, "step 1")
}

func TestRun_JournalFailure(t *testing.T) {
	s, err := Parse([]byte(pantry))
	require.NoError(t, err)

	boom := errors.New("disk full")
	_, err = Run(context.Background(), s, "r", &memRecorder{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := Parse([]byte(pantry))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, s, "r", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_WithJournal(t *testing.T) {
	s, err := Parse([]byte(pantry))
	require.NoError(t, err)

	j, err := journal.Open(filepath.Join(t.TempDir(), "j.db"))
	require.NoError(t, err)
	defer j.Close()

	_, err = Run(context.Background(), s, "r", j, nil)
	require.NoError(t, err)

	got, err := j.List(context.Background(), "r")
	require.NoError(t, err)
	assert.Len(t, got, 12)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pantry), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pantry", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleScenarios(t *testing.T) {
	paths, err := filepath.Glob("../../examples/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			require.NoError(t, err)
			report, err := Run(context.Background(), s, "example", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, len(s.Events), report.Steps)
		})
	}
}

func TestThresholdExample(t *testing.T) {
	s, err := Load("../../examples/threshold.yaml")
	require.NoError(t, err)

	report, err := Run(context.Background(), s, "t", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Elicited)
	assert.Equal(t, 4.0, report.Intensities["joy"])
}
