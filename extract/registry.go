package extract

import (
	"slices"

	"github.com/fwojciec/donate"
)

// Registry maps export formats to plans and picks the plan for an archive
// using a FormatDetector. Archives the detector does not recognize get the
// fallback plan, when one is set.
type Registry struct {
	detector donate.FormatDetector
	plans    map[donate.Format]*Plan
	fallback donate.Format
}

// NewRegistry creates a new Registry with the given detector.
func NewRegistry(detector donate.FormatDetector) *Registry {
	return &Registry{
		detector: detector,
		plans:    make(map[donate.Format]*Plan),
	}
}

// NewDefaultRegistry returns a registry holding the plans for every known
// format, with Instagram HTML pages scraped by parser. Unrecognized archives
// fall back to the Instagram HTML plan.
func NewDefaultRegistry(detector donate.FormatDetector, parser donate.HTMLParser) *Registry {
	r := NewRegistry(detector)
	r.Register(TikTokPlan())
	r.Register(InstagramJSONPlan())
	r.Register(InstagramHTMLPlan(parser))
	r.fallback = donate.FormatInstagramHTML
	return r
}

// SetFallback sets the format whose plan runs on unrecognized archives.
// FormatUnknown disables the fallback.
func (r *Registry) SetFallback(format donate.Format) {
	r.fallback = format
}

// Register adds a plan for its format, replacing any previous one.
func (r *Registry) Register(plan *Plan) {
	r.plans[plan.Format] = plan
}

// Get returns the plan for format.
// Returns ENOTFOUND if no plan is registered.
func (r *Registry) Get(format donate.Format) (*Plan, error) {
	plan, ok := r.plans[format]
	if !ok {
		return nil, donate.Errorf(donate.ENOTFOUND, "no extraction plan for format %q", format)
	}
	return plan, nil
}

// ForArchive detects the format of the archive and returns its plan.
// Unrecognized archives get the fallback plan. Returns EINVALID if the
// format cannot be recognized and no fallback is set.
func (r *Registry) ForArchive(a donate.Archive) (*Plan, error) {
	format := r.detector.Detect(a)
	if format == donate.FormatUnknown {
		format = r.fallback
	}
	if format == donate.FormatUnknown {
		return nil, donate.Errorf(donate.EINVALID, "archive does not look like a supported data export")
	}
	return r.Get(format)
}

// List returns all registered formats in name order.
func (r *Registry) List() []donate.Format {
	formats := make([]donate.Format, 0, len(r.plans))
	for f := range r.plans {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
