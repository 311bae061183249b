package objectutil

// Element is the interactive capability: a UI-capable value exposing a single
// clickable affordance. Values are detected by this method set, not by type.
type Element interface {
	Clickable() bool
}

// Placeholder is the default interactive value produced by EmptyValue. It has
// no click handler attached.
type Placeholder struct {
	OnClick func()
}

// NewPlaceholder returns a fresh Placeholder with no click handler.
func NewPlaceholder() *Placeholder { return &Placeholder{} }

// Clickable reports whether a click handler is attached.
func (p *Placeholder) Clickable() bool { return p != nil && p.OnClick != nil }

// undefined is the type of the Undefined sentinel.
type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands for the host "undefined": a key that is absent or a value
// that was never assigned. Go nil stands for the host "null".
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
