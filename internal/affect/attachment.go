package affect

import "github.com/Harshitk-cp/emgine/internal/diag"

// SocialAttachment is how much an agent likes someone, in discrete levels.
// Negative levels mean dislike. Moving up and down may use different step sizes.
type SocialAttachment struct {
	level    level
	upSize   int
	downSize int
	reporter diag.Reporter
}

// NewSocialAttachment starts at the given level with unit step sizes.
func NewSocialAttachment(start int, reporter diag.Reporter, opts ...Option) *SocialAttachment {
	r := diag.OrNop(reporter)
	o := buildOptions(Saturating{}, opts)
	return &SocialAttachment{
		level: level{
			value:    start,
			policy:   o.policy,
			reporter: r,
			overflow: diag.AttachmentOverflow,
			floor:    diag.AttachmentOverflow,
		},
		upSize:   1,
		downSize: 1,
		reporter: r,
	}
}

func (s *SocialAttachment) Level() int    { return s.level.value }
func (s *SocialAttachment) UpSize() int   { return s.upSize }
func (s *SocialAttachment) DownSize() int { return s.downSize }

// SetLevel overwrites the level without any checks.
func (s *SocialAttachment) SetLevel(v int) { s.level.value = v }

func (s *SocialAttachment) SetUpSize(n int) {
	s.upSize = nonNegative(n, diag.AttachmentNegativeStepSize, s.reporter)
}

func (s *SocialAttachment) SetDownSize(n int) {
	s.downSize = nonNegative(n, diag.AttachmentNegativeStepSize, s.reporter)
}

func (s *SocialAttachment) Increment() { s.level.add(s.upSize) }

// Decrement lowers the level by the down size. downSize is never negative,
// so its negation is always representable.
func (s *SocialAttachment) Decrement() { s.level.add(-s.downSize) }

func (s *SocialAttachment) Add(n int) { s.level.add(n) }
func (s *SocialAttachment) Reset()    { s.level.value = 0 }

var _ Counter = (*SocialAttachment)(nil)
