package signs

// The authored catalog. Geometry is normalized to the 0..1 image plane
// with the hand centered around (0.5, 0.5) unless a sign is anchored to
// a body region (face signs sit higher, thigh signs lower).

func buildCatalog() []*Definition {
	var defs []*Definition

	defs = append(defs, numberSigns()...)
	defs = append(defs, letterSigns()...)
	defs = append(defs, wordSigns()...)

	return defs
}

// ---- numbers 0-9 ----

func numberSigns() []*Definition {
	return []*Definition{
		staticSign("0", TypeNumber, numberPose0()),
		staticSign("1", TypeNumber, numberPose1()),
		staticSign("2", TypeNumber, numberPose2()),
		staticSign("3", TypeNumber, numberPose3()),
		staticSign("4", TypeNumber, numberPose4()),
		staticSign("5", TypeNumber, neutralHand(0.5, 0.5)),
		staticSign("6", TypeNumber, numberPose6()),
		staticSign("7", TypeNumber, numberPose7()),
		staticSign("8", TypeNumber, numberPose8()),
		staticSign("9", TypeNumber, numberPose9()),
	}
}

// Zero: thumb tip closes the circle against the index tip.
func numberPose0() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip].X = p[IndexTip].X + 0.02
	p[ThumbTip].Y = p[IndexTip].Y
	return p
}

// One: index extended from a fist.
func numberPose1() HandPose {
	p := closedFist(0.5, 0.5)
	offsets := []float64{0.02, 0.06, 0.10, 0.14}
	for i := 0; i < 4; i++ {
		p[IndexMCP+i].Y -= offsets[i]
		p[IndexMCP+i].Z = 0
	}
	return p
}

// Two: index and middle spread into a V.
func numberPose2() HandPose {
	p := closedFist(0.5, 0.5)
	p = extendFinger(p, IndexMCP, -0.02)
	p = extendFinger(p, MiddleMCP, 0.02)
	return p
}

// Three: thumb, index and middle extended.
func numberPose3() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip].X -= 0.06
	p[ThumbTip].Y -= 0.08
	p = extendFinger(p, IndexMCP, 0)
	p = extendFinger(p, MiddleMCP, 0)
	return p
}

// Four: open hand with the thumb tucked against the index base.
func numberPose4() HandPose {
	p := neutralHand(0.5, 0.5)
	p[ThumbTip] = Landmark{X: p[IndexMCP].X + 0.02, Y: p[IndexMCP].Y + 0.02, Z: 0.04}
	return p
}

// Six: fist with the thumb pointing straight up.
func numberPose6() HandPose {
	x, y := 0.5, 0.5
	b := newPose(x, y)
	b.lm(x-0.06, y-0.04, 0)
	b.lm(x-0.08, y-0.10, 0)
	b.lm(x-0.09, y-0.16, 0)
	b.lm(x-0.09, y-0.22, 0)
	for _, off := range []float64{-0.03, 0.01, 0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.04, 0.06)
		b.lm(bx+0.02, y-0.02, 0.08)
		b.lm(bx+0.03, y+0.02, 0.06)
	}
	return b.done()
}

// Seven: index and middle pointing sideways, thumb up.
func numberPose7() HandPose {
	x, y := 0.5, 0.5
	b := newPose(x, y)
	b.lm(x-0.05, y-0.03, 0)
	b.lm(x-0.07, y-0.08, 0)
	b.lm(x-0.08, y-0.13, 0)
	b.lm(x-0.08, y-0.18, 0)
	b.lm(x-0.02, y-0.06, 0)
	b.lm(x-0.10, y-0.06, 0)
	b.lm(x-0.18, y-0.06, 0)
	b.lm(x-0.26, y-0.06, 0)
	b.lm(x+0.01, y-0.04, 0)
	b.lm(x-0.07, y-0.02, 0)
	b.lm(x-0.15, y-0.01, 0)
	b.lm(x-0.23, y, 0)
	for _, off := range []float64{0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.05, 0)
		b.lm(bx, y-0.03, 0.05)
		b.lm(bx+0.01, y, 0.07)
		b.lm(bx+0.02, y+0.03, 0.05)
	}
	return b.done()
}

// Eight: index, middle and ring extended; thumb and pinky touch.
func numberPose8() HandPose {
	x, y := 0.5, 0.5
	b := newPose(x, y)
	b.lm(x-0.04, y-0.02, 0.02)
	b.lm(x-0.02, y-0.04, 0.04)
	b.lm(x+0.02, y-0.05, 0.05)
	b.lm(x+0.06, y-0.06, 0.04)
	b.lm(x-0.04, y-0.08, 0)
	b.lm(x-0.05, y-0.14, 0)
	b.lm(x-0.06, y-0.20, 0)
	b.lm(x-0.06, y-0.26, 0)
	b.lm(x, y-0.08, 0)
	b.lm(x, y-0.15, 0)
	b.lm(x, y-0.22, 0)
	b.lm(x, y-0.28, 0)
	b.lm(x+0.04, y-0.08, 0)
	b.lm(x+0.05, y-0.14, 0)
	b.lm(x+0.06, y-0.20, 0)
	b.lm(x+0.06, y-0.25, 0)
	b.lm(x+0.08, y-0.06, 0)
	b.lm(x+0.09, y-0.04, 0.03)
	b.lm(x+0.08, y-0.05, 0.05)
	b.lm(x+0.06, y-0.06, 0.04)
	return b.done()
}

// Nine: tight fist with the pinky extended.
func numberPose9() HandPose {
	x, y := 0.5, 0.5
	b := newPose(x, y)
	b.lm(x-0.05, y-0.02, 0.03)
	b.lm(x-0.06, y-0.04, 0.05)
	b.lm(x-0.04, y-0.05, 0.06)
	b.lm(x-0.02, y-0.04, 0.06)
	for _, off := range []float64{-0.03, 0.01, 0.05} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.04, 0.06)
		b.lm(bx+0.02, y-0.02, 0.08)
		b.lm(bx+0.03, y+0.02, 0.06)
	}
	b.lm(x+0.09, y-0.06, 0)
	b.lm(x+0.10, y-0.12, 0)
	b.lm(x+0.11, y-0.17, 0)
	b.lm(x+0.12, y-0.22, 0)
	return b.done()
}

// ---- fingerspelling letters A-Z ----

func letterSigns() []*Definition {
	poses := map[string]HandPose{
		"A": letterPoseA(), "B": letterPoseB(), "C": letterPoseC(),
		"D": letterPoseD(), "E": letterPoseE(), "F": letterPoseF(),
		"G": letterPoseG(), "H": letterPoseH(), "I": letterPoseI(),
		"J": letterPoseI(), // J is I traced with motion; static here
		"K": letterPoseK(), "L": letterPoseL(), "M": letterPoseM(),
		"N": letterPoseN(), "O": numberPose0(), "P": letterPoseP(),
		"Q": letterPoseQ(), "R": letterPoseR(), "S": letterPoseS(),
		"T": letterPoseT(), "U": letterPoseU(), "V": numberPose2(),
		"W": letterPoseW(), "X": letterPoseX(), "Y": letterPoseY(),
		"Z": numberPose1(), // Z traces with the index; static here
	}
	defs := make([]*Definition, 0, 25)
	for c := byte('A'); c <= 'Z'; c++ {
		token := string(c)
		if token == "I" {
			// The pronoun sign owns the I token; fingerspelled I
			// renders the pointing-to-self pose.
			continue
		}
		defs = append(defs, staticSign(token, TypeLetter, poses[token]))
	}
	return defs
}

func letterPoseA() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip].X -= 0.04
	p[ThumbTip].Y = p[IndexMCP].Y
	return p
}

func letterPoseB() HandPose {
	p := neutralHand(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.52, Y: 0.45, Z: 0.04}
	return p
}

func letterPoseC() HandPose {
	p := neutralHand(0.5, 0.5)
	for i := IndexMCP; i <= PinkyTip; i++ {
		p[i].Z = 0.03
		p[i].X -= 0.02
	}
	p[ThumbTip].X = 0.42
	p[ThumbTip].Y = 0.42
	return p
}

func letterPoseD() HandPose {
	p := numberPose1()
	for _, i := range []int{ThumbTip, MiddleTip, RingTip, PinkyTip} {
		p[i].Y = 0.42
		p[i].Z = 0.03
	}
	return p
}

func letterPoseE() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.46, Y: 0.42, Z: 0.04}
	return p
}

func letterPoseF() HandPose {
	p := neutralHand(0.5, 0.5)
	p[ThumbTip] = Landmark{X: p[IndexTip].X, Y: p[IndexTip].Y, Z: 0.02}
	return p
}

func letterPoseG() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.38, Y: 0.42}
	p[IndexMCP].Y = 0.42
	p[IndexPIP].Y = 0.42
	p[IndexDIP] = Landmark{X: 0.38, Y: 0.42}
	p[IndexTip] = Landmark{X: 0.35, Y: 0.42}
	return p
}

func letterPoseH() HandPose {
	p := letterPoseG()
	p[MiddleMCP].Y = 0.42
	p[MiddlePIP].Y = 0.42
	p[MiddleDIP] = Landmark{X: 0.38, Y: 0.44}
	p[MiddleTip] = Landmark{X: 0.35, Y: 0.44}
	return p
}

func letterPoseI() HandPose {
	p := closedFist(0.5, 0.5)
	for i := 0; i < 4; i++ {
		p[PinkyMCP+i].Y -= 0.04 * float64(i+1)
		p[PinkyMCP+i].Z = 0
	}
	return p
}

func letterPoseK() HandPose {
	p := numberPose2()
	p[ThumbTip] = Landmark{X: 0.48, Y: 0.38, Z: 0.02}
	return p
}

func letterPoseL() HandPose {
	p := closedFist(0.5, 0.5)
	p = extendFinger(p, IndexMCP, 0)
	p[ThumbTip] = Landmark{X: 0.36, Y: 0.50}
	return p
}

func letterPoseM() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.54, Y: 0.44, Z: 0.06}
	for _, i := range []int{IndexTip, MiddleTip, RingTip} {
		p[i].Z = 0.05
		p[i].Y = 0.44
	}
	return p
}

func letterPoseN() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.52, Y: 0.44, Z: 0.06}
	for _, i := range []int{IndexTip, MiddleTip} {
		p[i].Z = 0.05
		p[i].Y = 0.44
	}
	return p
}

func letterPoseP() HandPose {
	return offsetPose(letterPoseK(), 0, 0.15, 0)
}

func letterPoseQ() HandPose {
	return offsetPose(letterPoseG(), 0, 0.15, 0)
}

func letterPoseR() HandPose {
	p := numberPose2()
	p[IndexTip].X = p[MiddleTip].X
	return p
}

func letterPoseS() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.46, Y: 0.44, Z: 0.04}
	return p
}

func letterPoseT() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.48, Y: 0.42, Z: 0.05}
	return p
}

func letterPoseU() HandPose {
	p := closedFist(0.5, 0.5)
	p = extendFinger(p, IndexMCP, 0)
	p = extendFinger(p, MiddleMCP, 0)
	// Index and middle stay together.
	for i := 0; i < 4; i++ {
		p[MiddleMCP+i].X = p[IndexMCP+i].X + 0.02
	}
	return p
}

func letterPoseW() HandPose {
	p := closedFist(0.5, 0.5)
	p = extendFinger(p, IndexMCP, -0.03)
	p = extendFinger(p, MiddleMCP, 0)
	p = extendFinger(p, RingMCP, 0.03)
	return p
}

func letterPoseX() HandPose {
	p := closedFist(0.5, 0.5)
	p[IndexMCP].Y -= 0.02
	p[IndexPIP].Y -= 0.04
	p[IndexDIP] = Landmark{X: 0.48, Y: 0.40, Z: 0.03}
	p[IndexTip] = Landmark{X: 0.50, Y: 0.42, Z: 0.04}
	return p
}

func letterPoseY() HandPose {
	p := closedFist(0.5, 0.5)
	p[ThumbTip] = Landmark{X: 0.36, Y: 0.46}
	for i := 0; i < 4; i++ {
		p[PinkyMCP+i].Y -= 0.04 * float64(i+1)
		p[PinkyMCP+i].Z = 0
	}
	return p
}
