// Package scenario replays a scripted sequence of events against a set of
// goals, the same way the service drives a stored agent.
package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Harshitk-cp/emgine/internal/affect"
	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/engine"
	"github.com/Harshitk-cp/emgine/internal/goal"
	"github.com/Harshitk-cp/emgine/internal/intensity"
	"github.com/Harshitk-cp/emgine/internal/inventory"
	"github.com/Harshitk-cp/emgine/internal/journal"
	"github.com/Harshitk-cp/emgine/internal/simtime"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Name       string     `yaml:"name"`
	Slots      int        `yaml:"slots"`
	Initial    string     `yaml:"initial,omitempty"`
	Thresholds Thresholds `yaml:"thresholds"`
	Goals      []Goal     `yaml:"goals"`
	Events     []Event    `yaml:"events"`
	Counters   Counters   `yaml:"counters"`
}

type Thresholds struct {
	Joy              int `yaml:"joy"`
	DisgustSatisfied int `yaml:"disgust_satisfied"`
	DisgustNotice    int `yaml:"disgust_notice"`
}

type Goal struct {
	Name       string   `yaml:"name"`
	Target     string   `yaml:"target"`
	Importance *float64 `yaml:"importance,omitempty"`
	Types      []string `yaml:"types,omitempty"`
}

// Event is one step. Attend and Attach drive the counters alongside the
// appraisal; both are optional.
type Event struct {
	Deltas      []int    `yaml:"deltas"`
	Probability *float64 `yaml:"probability,omitempty"`
	Attend      int      `yaml:"attend,omitempty"`
	Attach      string   `yaml:"attach,omitempty"`
}

type Counters struct {
	AttentionSteps       int     `yaml:"attention_steps"`
	AttentionStepSeconds float32 `yaml:"attention_step_seconds"`
	Attachment           int     `yaml:"attachment"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown fields, and validates the result.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := &Scenario{Counters: Counters{AttentionStepSeconds: 1}}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the shape of the scenario. World errors raised by the
// events themselves are left to Run.
func (s *Scenario) Validate() error {
	if s.Slots <= 0 {
		return fmt.Errorf("%w: slots must be positive", ErrInvalidScenario)
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("%w: no events", ErrInvalidScenario)
	}
	for i, g := range s.Goals {
		if g.Name == "" {
			return fmt.Errorf("%w: goal %d has no name", ErrInvalidScenario, i)
		}
		for _, t := range g.Types {
			if _, err := goal.ParseType(t); err != nil {
				return fmt.Errorf("%w: goal %s: %w", ErrInvalidScenario, g.Name, err)
			}
		}
	}
	for i, e := range s.Events {
		switch e.Attach {
		case "", "up", "down", "reset":
		default:
			return fmt.Errorf("%w: event %d: unknown attach op %q", ErrInvalidScenario, i, e.Attach)
		}
	}
	return nil
}

// Recorder receives the journal entries of each step.
type Recorder interface {
	Record(ctx context.Context, entries ...*journal.Entry) error
}

// Report is the state after the last step.
type Report struct {
	Run         string
	Steps       int
	World       string
	Intensities map[string]float64
	Appraisals  int
	Elicited    int
	// TimeAttended is in seconds.
	TimeAttended float32
	Attachment   int
	Diagnostics  []diag.Entry
}

// Run replays s under the given run name. rec may be nil. Diagnostics are
// forwarded to reporter and also collected in the report.
func Run(ctx context.Context, s *Scenario, run string, rec Recorder, reporter diag.Reporter) (*Report, error) {
	var diags diag.Recorder
	rep := diag.Multi{&diags, diag.OrNop(reporter)}

	world := inventory.Emptied(s.Slots)
	if s.Initial != "" {
		w, err := inventory.ParseWorld(s.Initial)
		if err != nil {
			return nil, fmt.Errorf("initial world: %w", err)
		}
		world = w
	}

	goals := make([]*inventory.Goal, len(s.Goals))
	for i, g := range s.Goals {
		built, err := buildGoal(g, rep)
		if err != nil {
			return nil, err
		}
		goals[i] = built
	}

	th := config.Thresholds(s.Thresholds)
	profile := intensity.NewProfile()
	attention := affect.NewAttention(s.Counters.AttentionSteps, simtime.NewDelta(s.Counters.AttentionStepSeconds), rep)
	attachment := affect.NewSocialAttachment(s.Counters.Attachment, rep)

	report := &Report{Run: run}
	for step, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e := inventory.NewEvent(ev.Deltas...)
		if ev.Probability != nil {
			e = e.WithProbability(*ev.Probability)
		}
		out, err := engine.Step(goals, world, e, profile, th)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		world, profile = out.World, out.Profile

		attention.Add(ev.Attend)
		switch ev.Attach {
		case "up":
			attachment.Increment()
		case "down":
			attachment.Decrement()
		case "reset":
			attachment.Reset()
		}

		if rec != nil {
			if err := rec.Record(ctx, entries(run, step, s.Goals, e, out)...); err != nil {
				return nil, fmt.Errorf("journal step %d: %w", step, err)
			}
		}
		report.Steps++
		report.Appraisals += len(out.Appraisals)
		report.Elicited += out.Elicited()
	}

	report.World = world.String()
	report.Intensities = profile.Map()
	report.TimeAttended = attention.TimeAttended().Value()
	report.Attachment = attachment.Level()
	report.Diagnostics = diags.Entries()
	return report, nil
}

func buildGoal(g Goal, reporter diag.Reporter) (*inventory.Goal, error) {
	target, err := inventory.ParseWorld(g.Target)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", g.Name, err)
	}
	importance := 1.0
	if g.Importance != nil {
		importance = *g.Importance
	}
	types := make([]goal.Type, 0, len(g.Types))
	for _, name := range g.Types {
		t, err := goal.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("goal %s: %w", g.Name, err)
		}
		types = append(types, t)
	}
	return inventory.NewGoal(target, importance, reporter, types...), nil
}

func entries(run string, step int, goals []Goal, e inventory.Event, out *engine.Outcome) []*journal.Entry {
	world := out.World.String()
	list := make([]*journal.Entry, len(out.Appraisals))
	for i, a := range out.Appraisals {
		list[i] = &journal.Entry{
			Run:          run,
			Step:         step,
			Goal:         goals[a.Goal].Name,
			Channel:      string(a.Channel),
			Elicited:     a.Result.Elicited,
			Gate:         string(a.Result.Gate),
			DistPrev:     a.Result.DistPrev.ToReal(),
			DistNow:      a.Result.DistNow.ToReal(),
			DistDelta:    a.Result.DistDelta.ToReal(),
			Contribution: a.Change.Real(),
			Event:        e.String(),
			World:        world,
		}
	}
	return list
}
