package signs

// Repository is the read-only sign catalog. It is built once at process
// start and safe to share across goroutines without locking.
type Repository struct {
	defs     map[string]*Definition
	tokens   []string
	fallback *Definition
}

// NewRepository builds the full authored catalog. Construction is
// deterministic and total: every published token resolves to a
// definition.
func NewRepository() *Repository {
	r := &Repository{
		defs: make(map[string]*Definition, 96),
		fallback: staticSign("Unknown", TypeWord, neutralHand(0.5, 0.5),
			withFacial("question")),
	}
	for _, d := range buildCatalog() {
		r.add(d)
	}
	return r
}

func (r *Repository) add(d *Definition) {
	if _, dup := r.defs[d.Token]; dup {
		panic("signs: duplicate catalog token " + d.Token)
	}
	r.defs[d.Token] = d
	r.tokens = append(r.tokens, d.Token)
}

// Get returns the definition for token, or the fallback definition when
// the token is outside the vocabulary. Hitting the fallback during
// normal operation means the normalizer emitted an unvalidated token;
// callers log it as a consistency warning, never as a user error.
func (r *Repository) Get(token string) *Definition {
	if d, ok := r.defs[token]; ok {
		return d
	}
	return r.fallback
}

// Contains reports whether token is in the published vocabulary.
func (r *Repository) Contains(token string) bool {
	_, ok := r.defs[token]
	return ok
}

// Tokens returns the published vocabulary in catalog order.
func (r *Repository) Tokens() []string {
	out := make([]string, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Len returns the number of catalog entries.
func (r *Repository) Len() int {
	return len(r.tokens)
}

// Fallback returns the definition used for unknown tokens.
func (r *Repository) Fallback() *Definition {
	return r.fallback
}

// Interpolate returns the hand pose for token at progress t. One-keyframe
// signs return their pose unchanged; two-keyframe signs interpolate
// between start and end.
func (r *Repository) Interpolate(token string, t float64) HandPose {
	d := r.Get(token)
	if !d.Animated() {
		return d.FirstPose()
	}
	return InterpolatePose(d.Keyframes[0].Right, d.Keyframes[1].Right, t)
}
