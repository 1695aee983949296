package domain

// EffectType names a post-mutation signal for the presentation tier.
type EffectType string

const (
	// EffectRevalidate tells the caller to invalidate any cached view of
	// the given path.
	EffectRevalidate EffectType = "revalidate"
	// EffectRedirect tells the caller to navigate to the given path.
	EffectRedirect EffectType = "redirect"
)

// Effect is a declarative post-mutation instruction. The core never touches
// cache or routing primitives itself; it hands the calling tier a list of
// effects to execute after a successful write.
type Effect struct {
	Type EffectType `json:"type"`
	Path string     `json:"path"`
}

// RevalidatePath builds a cache-invalidation effect for path.
func RevalidatePath(path string) Effect {
	return Effect{Type: EffectRevalidate, Path: path}
}

// RedirectTo builds a navigation effect for path.
func RedirectTo(path string) Effect {
	return Effect{Type: EffectRedirect, Path: path}
}

// MutationResult is what a successful mutation hands back: a display message
// and the effects for the caller to run.
type MutationResult struct {
	Message string   `json:"message"`
	Effects []Effect `json:"effects"`
}
