package signs

// Pose construction helpers for the authored catalog. Every builder
// produces exactly LandmarkCount landmarks in MediaPipe order.

// poseBuilder accumulates landmarks for one hand, wrist first.
type poseBuilder struct {
	lms HandPose
}

func newPose(wristX, wristY float64) *poseBuilder {
	b := &poseBuilder{lms: make(HandPose, 0, LandmarkCount)}
	b.lms = append(b.lms, Landmark{X: wristX, Y: wristY})
	return b
}

func (b *poseBuilder) lm(x, y, z float64) *poseBuilder {
	b.lms = append(b.lms, Landmark{X: x, Y: y, Z: z})
	return b
}

// curled appends a loosely curled four-joint finger at baseX, the shape
// used throughout the catalog for tucked fingers.
func (b *poseBuilder) curled(baseX, y float64) *poseBuilder {
	b.lm(baseX, y-0.06, 0)
	b.lm(baseX, y-0.08, 0.04)
	b.lm(baseX+0.01, y-0.06, 0.06)
	b.lm(baseX+0.01, y-0.03, 0.05)
	return b
}

// straight appends a straight finger of four joints descending from
// startY by stepY per joint.
func (b *poseBuilder) straight(baseX, startY, stepY, z float64) *poseBuilder {
	for j := 0; j < 4; j++ {
		b.lm(baseX, startY-float64(j)*stepY, z)
	}
	return b
}

func (b *poseBuilder) done() HandPose {
	if len(b.lms) != LandmarkCount {
		// Authored data bug; fail loudly at construction time.
		panic("signs: pose builder produced wrong landmark count")
	}
	return b.lms
}

// neutralHand is the relaxed open-hand pose: thumb out to the side,
// four fingers extended upward.
func neutralHand(x, y float64) HandPose {
	b := newPose(x, y)

	b.lm(x-0.08, y-0.02, 0)
	b.lm(x-0.12, y-0.05, 0)
	b.lm(x-0.14, y-0.08, 0)
	b.lm(x-0.16, y-0.10, 0)

	b.lm(x-0.04, y-0.08, 0)
	b.lm(x-0.04, y-0.14, 0)
	b.lm(x-0.04, y-0.18, 0)
	b.lm(x-0.04, y-0.22, 0)

	b.lm(x, y-0.08, 0)
	b.lm(x, y-0.15, 0)
	b.lm(x, y-0.20, 0)
	b.lm(x, y-0.24, 0)

	b.lm(x+0.04, y-0.08, 0)
	b.lm(x+0.04, y-0.14, 0)
	b.lm(x+0.04, y-0.18, 0)
	b.lm(x+0.04, y-0.21, 0)

	b.lm(x+0.08, y-0.08, 0)
	b.lm(x+0.08, y-0.12, 0)
	b.lm(x+0.08, y-0.15, 0)
	b.lm(x+0.08, y-0.18, 0)

	return b.done()
}

// closedFist is the closed-hand pose: thumb tucked, all fingers curled.
func closedFist(x, y float64) HandPose {
	b := newPose(x, y)

	b.lm(x-0.06, y-0.02, 0.02)
	b.lm(x-0.08, y-0.04, 0.03)
	b.lm(x-0.06, y-0.06, 0.04)
	b.lm(x-0.04, y-0.06, 0.05)

	b.lm(x-0.04, y-0.08, 0)
	b.lm(x-0.04, y-0.10, 0.04)
	b.lm(x-0.02, y-0.08, 0.06)
	b.lm(x-0.02, y-0.04, 0.05)

	b.lm(x, y-0.08, 0)
	b.lm(x, y-0.10, 0.04)
	b.lm(x+0.02, y-0.08, 0.06)
	b.lm(x+0.02, y-0.04, 0.05)

	b.lm(x+0.04, y-0.08, 0)
	b.lm(x+0.04, y-0.10, 0.04)
	b.lm(x+0.05, y-0.08, 0.06)
	b.lm(x+0.05, y-0.04, 0.05)

	b.lm(x+0.08, y-0.08, 0)
	b.lm(x+0.08, y-0.09, 0.03)
	b.lm(x+0.08, y-0.07, 0.05)
	b.lm(x+0.08, y-0.04, 0.04)

	return b.done()
}

// offsetPose translates every landmark of a pose by (dx, dy, dz).
func offsetPose(p HandPose, dx, dy, dz float64) HandPose {
	out := make(HandPose, len(p))
	for i, lm := range p {
		out[i] = Landmark{X: lm.X + dx, Y: lm.Y + dy, Z: lm.Z + dz}
	}
	return out
}

// extendFinger straightens the four joints starting at base upward,
// clearing depth. spread shifts the whole finger horizontally.
func extendFinger(p HandPose, base int, spread float64) HandPose {
	out := p.Clone()
	for i := 0; i < 4; i++ {
		idx := base + i
		out[idx].Y -= 0.04 * float64(i+1)
		out[idx].X += spread
		out[idx].Z = 0
	}
	return out
}
