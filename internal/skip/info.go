package skip

// Info is a validation failure: a symbolic Reason, a human message, an
// optional detail map used for template interpolation, a ShouldNotify flag,
// and an optional TagName identifying the offending release.
type Info struct {
	Reason       Reason
	Message      string
	Details      map[string]string
	ShouldNotify bool
	TagName      string // empty means "no specific release"
}

// New creates an Info for reason, rendering its default message
// immediately so callers that never set Details still get a sensible
// Message.
func New(reason Reason) *Info {
	title, _ := Template(reason)
	return &Info{
		Reason:  reason,
		Message: title,
	}
}

// WithDetails attaches template-interpolation details and returns the Info
// for chaining.
func (i *Info) WithDetails(details map[string]string) *Info {
	i.Details = details
	return i
}

// WithNotify sets whether this failure should trigger an author
// notification and returns the Info for chaining.
func (i *Info) WithNotify(shouldNotify bool) *Info {
	i.ShouldNotify = shouldNotify
	return i
}

// WithTagName attaches the offending release's tag and returns the Info for
// chaining.
func (i *Info) WithTagName(tag string) *Info {
	i.TagName = tag
	return i
}

// Body renders this Info's message body through the reason's template,
// interpolating Details (unknown/null keys render as literal "N/A").
func (i *Info) Body() string {
	_, body := Template(i.Reason)
	return interpolate(body, i.Details)
}

// Title renders this Info's title through the reason's template.
func (i *Info) Title() string {
	title, _ := Template(i.Reason)
	return title
}
