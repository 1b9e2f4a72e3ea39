package signs

import "fmt"

// Word and phrase signs. Poses follow the authored geometry: face signs
// anchor near the top of the frame, chest signs around the middle, and
// thigh-level signs below.

func wordSigns() []*Definition {
	var defs []*Definition

	// Greetings.
	defs = append(defs,
		signHello(), signThankYou(), signGoodMorning(), signGoodNight(),
		signHowAreYou())

	// Emotions and qualities.
	defs = append(defs,
		signHappy(), signSad(), signBeautiful(), signUgly(), signAlright(),
		signPleased())

	// Animals.
	defs = append(defs,
		signAnimal(), signBird(), signCat(), signDog(), signCow(),
		signHorse(), signMouse(), signFish())

	// Family.
	defs = append(defs,
		signMother(), signFather(), signDaughter(), signSon(), signParent())

	// Objects.
	defs = append(defs,
		signChair(), signTable(), signBed(), signBedroom(), signDoor(),
		signWindow())

	// Colors.
	defs = append(defs,
		signBlack(), signWhite(), signOrange(), signPink(), signGrey(),
		signColour())

	// Days and time.
	for _, day := range []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
		"Saturday", "Sunday",
	} {
		defs = append(defs, signDay(day))
	}
	defs = append(defs, signToday())

	// Pronouns.
	defs = append(defs, signI(), signYou(), signHe(), signShe(), signIt())

	// Misc.
	defs = append(defs,
		signBlind(), signDeaf(), signDream(), signLoud(), signQuiet())

	return defs
}

// spreadHand builds the common word-sign hand: explicit thumb joints and
// four fingers generated from base offsets. perJoint positions joint j of
// the finger with base offset off.
func spreadHand(x, y float64, thumb [4]Landmark, offsets [4]float64,
	perJoint func(i, j int, bx float64) Landmark) HandPose {
	b := newPose(x, y)
	for _, t := range thumb {
		b.lm(t.X, t.Y, t.Z)
	}
	for i, off := range offsets {
		bx := x + off
		for j := 0; j < 4; j++ {
			lm := perJoint(i, j, bx)
			b.lm(lm.X, lm.Y, lm.Z)
		}
	}
	return b.done()
}

// Hello waves an open hand near the forehead.
func signHello() *Definition {
	x, y := 0.6, 0.28
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.10, Y: y - 0.02}, {X: x - 0.14, Y: y - 0.06},
			{X: x - 0.17, Y: y - 0.10}, {X: x - 0.19, Y: y - 0.14},
		},
		[4]float64{-0.05, 0, 0.05, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx + float64(j)*0.01, Y: y - 0.08 - float64(j)*0.05}
		})
	end := offsetPose(start, 0.08, 0, 0)
	return animatedSign("Hello", start, end,
		withMotion("wave"), withFacial("smile"), withRegion("head"))
}

// Thank you moves a flat hand outward from the chin.
func signThankYou() *Definition {
	x, y := 0.5, 0.32
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y - 0.01, Z: 0.02}, {X: x - 0.08, Y: y - 0.03, Z: 0.03},
			{X: x - 0.09, Y: y - 0.05, Z: 0.03}, {X: x - 0.10, Y: y - 0.07, Z: 0.03},
		},
		[4]float64{-0.03, 0, 0.03, 0.06},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.04, Z: 0.01}
		})
	end := offsetPose(start, 0, 0.18, -0.02)
	return animatedSign("Thank you", start, end,
		withMotion("outward"), withFacial("smile"), withRegion("chin"))
}

// Good Morning rises like a sun with spread fingers.
func signGoodMorning() *Definition {
	x, y := 0.35, 0.55
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.08, Y: y - 0.04}, {X: x - 0.12, Y: y - 0.10},
			{X: x - 0.14, Y: y - 0.15}, {X: x - 0.15, Y: y - 0.20},
		},
		[4]float64{-0.04, 0, 0.04, 0.08},
		func(i, j int, bx float64) Landmark {
			angle := (float64(i) - 1.5) * 0.08
			return Landmark{X: bx + float64(j)*angle*0.3, Y: y - 0.10 - float64(j)*0.05}
		})
	end := offsetPose(start, 0.15, -0.25, 0)
	return animatedSign("Good Morning", start, end,
		withMotion("rising"), withFacial("smile"), withRegion("chest"))
}

// Good night holds palms together near a tilted head.
func signGoodNight() *Definition {
	x, y := 0.55, 0.30
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.04, Y: y - 0.02, Z: 0.04}, {X: x - 0.05, Y: y - 0.04, Z: 0.05},
			{X: x - 0.05, Y: y - 0.06, Z: 0.05}, {X: x - 0.04, Y: y - 0.08, Z: 0.04},
		},
		[4]float64{-0.02, 0, 0.02, 0.04},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.045, Z: 0.02}
		})
	return staticSign("Good night", TypePhrase, pose,
		withMotion("closing"), withFacial("calm"), twoHanded())
}

// How are you curves both hands into a questioning gesture.
func signHowAreYou() *Definition {
	x, y := 0.45, 0.42
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y - 0.02, Z: 0.02}, {X: x - 0.09, Y: y - 0.05, Z: 0.03},
			{X: x - 0.10, Y: y - 0.08, Z: 0.04}, {X: x - 0.09, Y: y - 0.10, Z: 0.05},
		},
		[4]float64{-0.03, 0, 0.03, 0.06},
		func(i, j int, bx float64) Landmark {
			curve := 0.0
			if j > 1 {
				curve = 0.02 * float64(j)
			}
			return Landmark{X: bx + curve, Y: y - 0.08 - float64(j)*0.04, Z: 0.02 + curve}
		})
	end := offsetPose(start, 0.12, 0, 0)
	return animatedSign("How are you", start, end,
		withMotion("questioning"), withFacial("question"), withRegion("chest"))
}

func signHappy() *Definition {
	x, y := 0.48, 0.48
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.09, Y: y - 0.01}, {X: x - 0.13, Y: y - 0.03},
			{X: x - 0.16, Y: y - 0.05}, {X: x - 0.18, Y: y - 0.06},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.09 - float64(j)*0.045, Z: 0.01}
		})
	return staticSign("Happy", TypeWord, pose,
		withMotion("circular"), withFacial("smile"), withRegion("chest"))
}

// Sad droops both the fingers and the whole hand downward.
func signSad() *Definition {
	x, y := 0.5, 0.35
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.07, Y: y + 0.01, Z: 0.01}, {X: x - 0.10, Y: y + 0.03, Z: 0.02},
			{X: x - 0.12, Y: y + 0.06, Z: 0.02}, {X: x - 0.13, Y: y + 0.09, Z: 0.02},
		},
		[4]float64{-0.04, 0, 0.04, 0.08},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y + 0.02 + float64(j)*0.05, Z: 0.02}
		})
	end := offsetPose(start, 0, 0.15, 0)
	return animatedSign("Sad", start, end,
		withMotion("downward"), withFacial("sad"), withRegion("face"))
}

func signBeautiful() *Definition {
	x, y := 0.55, 0.28
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.08, Y: y - 0.03}, {X: x - 0.11, Y: y - 0.07},
			{X: x - 0.13, Y: y - 0.11}, {X: x - 0.14, Y: y - 0.14},
		},
		[4]float64{-0.02, 0.01, 0.04, 0.07},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.048}
		})
	return staticSign("Beautiful", TypeWord, pose,
		withMotion("circular"), withFacial("smile"), withRegion("face"))
}

func signUgly() *Definition {
	x, y := 0.48, 0.32
	b := newPose(x, y)
	b.lm(x-0.06, y-0.02, 0.03)
	b.lm(x-0.08, y-0.05, 0.05)
	b.lm(x-0.07, y-0.07, 0.06)
	b.lm(x-0.05, y-0.08, 0.06)
	for _, off := range []float64{-0.04, 0, 0.04, 0.08} {
		bx := x + off
		b.lm(bx, y-0.08, 0)
		b.lm(bx, y-0.12, 0.04)
		b.lm(bx+0.02, y-0.10, 0.07)
		b.lm(bx+0.03, y-0.06, 0.06)
	}
	return staticSign("Ugly", TypeWord, b.done(),
		withMotion("across"), withFacial("frown"), withRegion("face"))
}

// Alright is the OK circle: thumb and index meet, other fingers up.
func signAlright() *Definition {
	x, y := 0.5, 0.45
	b := newPose(x, y)
	b.lm(x-0.05, y-0.03, 0.02)
	b.lm(x-0.07, y-0.06, 0.03)
	b.lm(x-0.06, y-0.09, 0.03)
	b.lm(x-0.04, y-0.11, 0.02)
	b.lm(x-0.03, y-0.08, 0)
	b.lm(x-0.04, y-0.11, 0.02)
	b.lm(x-0.05, y-0.12, 0.03)
	b.lm(x-0.04, y-0.11, 0.02)
	for _, off := range []float64{0.01, 0.05, 0.09} {
		bx := x + off
		for j := 0; j < 4; j++ {
			b.lm(bx, y-0.08-float64(j)*0.05, 0)
		}
	}
	return staticSign("Alright", TypeWord, b.done())
}

func signPleased() *Definition {
	x, y := 0.52, 0.50
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.05, Y: y + 0.01, Z: 0.03}, {X: x - 0.06, Y: y + 0.02, Z: 0.04},
			{X: x - 0.05, Y: y + 0.03, Z: 0.04}, {X: x - 0.03, Y: y + 0.03, Z: 0.03},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.06 - float64(j)*0.04, Z: 0.04}
		})
	return staticSign("Pleased", TypeWord, pose,
		withMotion("outward"), withFacial("smile"), withRegion("chest"))
}

func signAnimal() *Definition {
	x, y := 0.5, 0.52
	b := newPose(x, y)
	b.lm(x-0.05, y-0.03, 0.03)
	b.lm(x-0.06, y-0.06, 0.05)
	b.lm(x-0.05, y-0.08, 0.06)
	b.lm(x-0.03, y-0.09, 0.05)
	for _, off := range []float64{-0.04, 0, 0.04, 0.08} {
		bx := x + off
		b.lm(bx, y-0.07, 0)
		b.lm(bx, y-0.10, 0.06)
		b.lm(bx, y-0.08, 0.10)
		b.lm(bx, y-0.05, 0.08)
	}
	return staticSign("Animal", TypeWord, b.done(),
		withMotion("rocking"), withRegion("chest"))
}

func signBird() *Definition {
	x, y := 0.48, 0.33
	b := newPose(x, y)
	b.lm(x-0.06, y-0.04, 0)
	b.lm(x-0.10, y-0.08, 0)
	b.lm(x-0.13, y-0.11, 0)
	b.lm(x-0.15, y-0.13, 0)
	b.lm(x-0.04, y-0.06, 0)
	b.lm(x-0.08, y-0.10, 0)
	b.lm(x-0.12, y-0.13, 0)
	b.lm(x-0.15, y-0.14, 0.01)
	for _, off := range []float64{0, 0.04, 0.08} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return staticSign("Bird", TypeWord, b.done(),
		withMotion("opening_closing"), withRegion("mouth"))
}

func signCat() *Definition {
	x, y := 0.52, 0.34
	b := newPose(x, y)
	b.lm(x-0.05, y-0.03, 0.01)
	b.lm(x-0.07, y-0.06, 0.02)
	b.lm(x-0.08, y-0.08, 0.02)
	b.lm(x-0.08, y-0.10, 0.01)
	b.lm(x-0.03, y-0.06, 0)
	b.lm(x-0.05, y-0.09, 0.01)
	b.lm(x-0.07, y-0.11, 0.01)
	b.lm(x-0.08, y-0.11, 0.01)
	for _, off := range []float64{0, 0.04, 0.08} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.09, 0.03)
		b.lm(bx+0.01, y-0.08, 0.05)
		b.lm(bx+0.02, y-0.05, 0.04)
	}
	return staticSign("Cat", TypeWord, b.done(),
		withMotion("outward"), withRegion("cheek"), twoHanded())
}

func signDog() *Definition {
	x, y := 0.5, 0.58
	b := newPose(x, y)
	b.lm(x-0.06, y-0.02, 0.02)
	b.lm(x-0.08, y-0.05, 0.03)
	b.lm(x-0.07, y-0.08, 0.04)
	b.lm(x-0.05, y-0.09, 0.04)
	b.straight(x-0.03, y-0.08, 0.04, 0)
	b.straight(x+0.01, y-0.08, 0.04, 0)
	for _, off := range []float64{0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.07, 0)
		b.lm(bx, y-0.09, 0.04)
		b.lm(bx+0.01, y-0.07, 0.06)
		b.lm(bx+0.01, y-0.04, 0.05)
	}
	return staticSign("Dog", TypeWord, b.done(),
		withMotion("patting"), withRegion("thigh"))
}

// Cow holds the Y handshape at the temple for horns.
func signCow() *Definition {
	x, y := 0.55, 0.25
	b := newPose(x, y)
	b.lm(x-0.08, y-0.02, 0)
	b.lm(x-0.13, y-0.05, 0)
	b.lm(x-0.17, y-0.09, 0)
	b.lm(x-0.20, y-0.12, 0)
	for _, off := range []float64{-0.04, 0, 0.04} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	b.lm(x+0.08, y-0.06, 0)
	b.lm(x+0.10, y-0.10, 0)
	b.lm(x+0.12, y-0.14, 0)
	b.lm(x+0.14, y-0.17, 0)
	return staticSign("Cow", TypeWord, b.done(),
		withMotion("twisting"), withRegion("temple"))
}

func signHorse() *Definition {
	x, y := 0.58, 0.26
	b := newPose(x, y)
	b.lm(x-0.06, y-0.02, 0.03)
	b.lm(x-0.08, y-0.04, 0.05)
	b.lm(x-0.09, y-0.06, 0.06)
	b.lm(x-0.09, y-0.08, 0.06)
	b.lm(x-0.03, y-0.08, 0)
	b.lm(x-0.04, y-0.14, 0)
	b.lm(x-0.05, y-0.19, 0)
	b.lm(x-0.06, y-0.23, 0)
	b.lm(x+0.01, y-0.08, 0)
	b.lm(x+0.01, y-0.14, 0)
	b.lm(x+0.01, y-0.19, 0)
	b.lm(x+0.01, y-0.23, 0)
	for _, off := range []float64{0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return staticSign("Horse", TypeWord, b.done(),
		withMotion("flapping"), withRegion("temple"))
}

func signMouse() *Definition {
	x, y := 0.5, 0.32
	b := newPose(x, y)
	b.lm(x-0.05, y-0.02, 0.02)
	b.lm(x-0.07, y-0.04, 0.03)
	b.lm(x-0.08, y-0.06, 0.03)
	b.lm(x-0.08, y-0.08, 0.03)
	b.lm(x-0.02, y-0.06, 0)
	b.lm(x-0.02, y-0.12, 0)
	b.lm(x-0.02, y-0.17, 0)
	b.lm(x-0.02, y-0.21, 0)
	for _, off := range []float64{0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return staticSign("Mouse", TypeWord, b.done(),
		withMotion("brushing"), withRegion("nose"))
}

func signFish() *Definition {
	x, y := 0.5, 0.52
	b := newPose(x, y)
	b.lm(x-0.05, y-0.02, 0.02)
	b.lm(x-0.06, y-0.05, 0.02)
	b.lm(x-0.06, y-0.08, 0.02)
	b.lm(x-0.05, y-0.10, 0.02)
	for i, off := range []float64{-0.02, 0.02, 0.06, 0.10} {
		bx := x + off
		wave := 0.01
		if i%2 == 1 {
			wave = -0.01
		}
		for j := 0; j < 4; j++ {
			b.lm(bx, y-0.08-float64(j)*0.04, wave)
		}
	}
	return staticSign("Fish", TypeWord, b.done(), withMotion("swimming"))
}

func signMother() *Definition {
	x, y := 0.5, 0.36
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y - 0.04, Z: 0.04}, {X: x - 0.08, Y: y - 0.08, Z: 0.06},
			{X: x - 0.09, Y: y - 0.11, Z: 0.07}, {X: x - 0.09, Y: y - 0.13, Z: 0.07},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.045}
		})
	return staticSign("Mother", TypeWord, pose,
		withFacial("smile"), withRegion("chin"))
}

func signFather() *Definition {
	x, y := 0.5, 0.26
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y - 0.03, Z: 0.04}, {X: x - 0.08, Y: y - 0.06, Z: 0.06},
			{X: x - 0.09, Y: y - 0.09, Z: 0.07}, {X: x - 0.09, Y: y - 0.11, Z: 0.07},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.045}
		})
	return staticSign("Father", TypeWord, pose, withRegion("forehead"))
}

func signDaughter() *Definition {
	x, y := 0.52, 0.42
	b := newPose(x, y)
	b.lm(x-0.05, y-0.02, 0.01)
	b.lm(x-0.07, y-0.04, 0.02)
	b.lm(x-0.08, y-0.06, 0.02)
	b.lm(x-0.08, y-0.08, 0.02)
	for _, off := range []float64{-0.03, 0.01, 0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx-0.01, y-0.10, 0.03)
		b.lm(bx-0.02, y-0.12, 0.05)
		b.lm(bx-0.02, y-0.13, 0.06)
	}
	return staticSign("Daughter", TypeWord, b.done(),
		withMotion("cradling"), withRegion("chin"))
}

func signSon() *Definition {
	x, y := 0.52, 0.32
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.05, Y: y - 0.02, Z: 0.01}, {X: x - 0.07, Y: y - 0.04, Z: 0.02},
			{X: x - 0.08, Y: y - 0.06, Z: 0.02}, {X: x - 0.08, Y: y - 0.08, Z: 0.02},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			steps := []float64{0.07, 0.12, 0.16, 0.19}
			return Landmark{X: bx, Y: y - steps[j]}
		})
	return staticSign("Son", TypeWord, pose,
		withMotion("cradling"), withRegion("forehead"))
}

func signParent() *Definition {
	x, y := 0.5, 0.34
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.07, Y: y - 0.03, Z: 0.03}, {X: x - 0.10, Y: y - 0.07, Z: 0.04},
			{X: x - 0.12, Y: y - 0.10, Z: 0.05}, {X: x - 0.13, Y: y - 0.12, Z: 0.05},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.042, Z: 0.02}
		})
	return staticSign("Parent", TypeWord, pose,
		withMotion("alternating"), withRegion("face"), twoHanded())
}

// Chair rests two bent fingers on a horizontal thumb.
func signChair() *Definition {
	x, y := 0.5, 0.52
	b := newPose(x, y)
	b.lm(x-0.06, y-0.04, 0)
	b.lm(x-0.10, y-0.04, 0)
	b.lm(x-0.14, y-0.04, 0)
	b.lm(x-0.17, y-0.04, 0)
	b.lm(x-0.03, y-0.08, 0)
	b.lm(x-0.03, y-0.12, 0.03)
	b.lm(x-0.03, y-0.10, 0.06)
	b.lm(x-0.03, y-0.06, 0.06)
	b.lm(x+0.01, y-0.08, 0)
	b.lm(x+0.01, y-0.12, 0.03)
	b.lm(x+0.01, y-0.10, 0.06)
	b.lm(x+0.01, y-0.06, 0.06)
	for _, off := range []float64{0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return staticSign("Chair", TypeWord, b.done(),
		withMotion("tapping"), twoHanded())
}

func signTable() *Definition {
	x, y := 0.5, 0.55
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.04, Y: y + 0.01, Z: 0.03}, {X: x - 0.05, Y: y + 0.02, Z: 0.04},
			{X: x - 0.04, Y: y + 0.03, Z: 0.04}, {X: x - 0.02, Y: y + 0.03, Z: 0.03},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.04 - float64(j)*0.03, Z: 0.08}
		})
	return staticSign("Table", TypeWord, pose,
		withMotion("patting"), twoHanded())
}

func signBed() *Definition {
	x, y := 0.58, 0.32
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.04, Y: y - 0.02, Z: 0.02}, {X: x - 0.05, Y: y - 0.04, Z: 0.03},
			{X: x - 0.05, Y: y - 0.06, Z: 0.03}, {X: x - 0.04, Y: y - 0.07, Z: 0.03},
		},
		[4]float64{-0.02, 0.01, 0.04, 0.07},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx + float64(j)*0.02, Y: y - 0.06 - float64(j)*0.03, Z: 0.02}
		})
	return staticSign("Bed", TypeWord, pose,
		withMotion("resting"), withFacial("calm"), withRegion("head"))
}

func signBedroom() *Definition {
	x, y := 0.5, 0.48
	b := newPose(x, y)
	b.lm(x-0.07, y-0.02, 0)
	b.lm(x-0.11, y-0.04, 0)
	b.lm(x-0.14, y-0.06, 0)
	b.lm(x-0.16, y-0.08, 0)
	b.lm(x-0.03, y-0.08, 0)
	b.lm(x-0.03, y-0.13, 0)
	b.lm(x-0.03, y-0.17, 0)
	b.lm(x-0.03, y-0.20, 0)
	for _, off := range []float64{0.01, 0.05, 0.09} {
		bx := x + off
		b.lm(bx, y-0.07, 0)
		b.lm(bx, y-0.10, 0.03)
		b.lm(bx+0.01, y-0.08, 0.05)
		b.lm(bx+0.02, y-0.05, 0.04)
	}
	return staticSign("Bedroom", TypeWord, b.done(),
		withMotion("box_shape"), twoHanded())
}

// Door swings a flat hand open between two keyframes.
func signDoor() *Definition {
	x, y := 0.42, 0.48
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.05, Y: y - 0.02, Z: 0.02}, {X: x - 0.06, Y: y - 0.04, Z: 0.03},
			{X: x - 0.06, Y: y - 0.06, Z: 0.03}, {X: x - 0.05, Y: y - 0.07, Z: 0.02},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.04}
		})
	end := spreadHand(x+0.18, y,
		[4]Landmark{
			{X: x + 0.13, Y: y - 0.02, Z: 0.02}, {X: x + 0.12, Y: y - 0.04, Z: 0.03},
			{X: x + 0.12, Y: y - 0.06, Z: 0.03}, {X: x + 0.13, Y: y - 0.07, Z: 0.02},
		},
		[4]float64{-0.02, 0.02, 0.06, 0.10},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.04, Z: 0.04}
		})
	return animatedSign("Door", start, end, withMotion("opening"))
}

func signWindow() *Definition {
	x, y := 0.5, 0.42
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y - 0.02, Z: 0.01}, {X: x - 0.08, Y: y - 0.04, Z: 0.01},
			{X: x - 0.09, Y: y - 0.06, Z: 0.01}, {X: x - 0.10, Y: y - 0.07, Z: 0.01},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.07 - float64(j)*0.05}
		})
	return staticSign("Window", TypeWord, pose,
		withMotion("sliding"), twoHanded())
}

// Black draws the index across the forehead.
func signBlack() *Definition {
	x, y := 0.45, 0.24
	b := newPose(x, y)
	b.lm(x-0.04, y-0.02, 0.03)
	b.lm(x-0.05, y-0.04, 0.04)
	b.lm(x-0.04, y-0.05, 0.04)
	b.lm(x-0.02, y-0.05, 0.03)
	b.lm(x-0.02, y-0.06, 0)
	b.lm(x-0.06, y-0.06, 0)
	b.lm(x-0.10, y-0.06, 0)
	b.lm(x-0.14, y-0.06, 0)
	for _, off := range []float64{0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.05, 0)
		b.lm(bx, y-0.07, 0.04)
		b.lm(bx+0.01, y-0.05, 0.06)
		b.lm(bx+0.01, y-0.02, 0.05)
	}
	return staticSign("Black", TypeWord, b.done(),
		withMotion("across"), withRegion("forehead"))
}

// White pulls an open hand away from the chest.
func signWhite() *Definition {
	x, y := 0.5, 0.48
	start := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.07, Y: y - 0.02, Z: 0.05}, {X: x - 0.10, Y: y - 0.04, Z: 0.08},
			{X: x - 0.12, Y: y - 0.06, Z: 0.10}, {X: x - 0.13, Y: y - 0.08, Z: 0.10},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y - 0.07 - float64(j)*0.04, Z: 0.08}
		})
	end := spreadHand(x, y+0.05,
		[4]Landmark{
			{X: x - 0.07, Y: y + 0.03}, {X: x - 0.10, Y: y + 0.01},
			{X: x - 0.12, Y: y - 0.01}, {X: x - 0.13, Y: y - 0.03},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y + 0.02 - float64(j)*0.04}
		})
	return animatedSign("White", start, end,
		withMotion("outward"), withRegion("chest"))
}

func signOrange() *Definition {
	x, y := 0.5, 0.36
	b := newPose(x, y)
	b.lm(x-0.05, y-0.03, 0.02)
	b.lm(x-0.07, y-0.06, 0.04)
	b.lm(x-0.06, y-0.09, 0.05)
	b.lm(x-0.04, y-0.11, 0.04)
	for _, off := range []float64{-0.02, 0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx-0.02, y-0.09, 0.03)
		b.lm(bx-0.03, y-0.11, 0.05)
		b.lm(bx-0.03, y-0.12, 0.04)
	}
	return staticSign("Orange", TypeWord, b.done(),
		withMotion("squeezing"), withRegion("chin"))
}

// Pink brushes the P handshape down the lips.
func signPink() *Definition {
	x, y := 0.48, 0.34
	b := newPose(x, y)
	b.lm(x-0.06, y-0.03, 0)
	b.lm(x-0.10, y-0.05, 0)
	b.lm(x-0.13, y-0.06, 0)
	b.lm(x-0.15, y-0.06, 0)
	b.lm(x-0.02, y-0.06, 0)
	b.lm(x-0.02, y-0.02, 0)
	b.lm(x-0.02, y+0.03, 0)
	b.lm(x-0.02, y+0.08, 0)
	b.lm(x+0.02, y-0.06, 0)
	b.lm(x+0.02, y-0.02, 0)
	b.lm(x+0.02, y+0.03, 0)
	b.lm(x+0.02, y+0.08, 0)
	for _, off := range []float64{0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.05, 0)
		b.lm(bx, y-0.07, 0.04)
		b.lm(bx+0.01, y-0.05, 0.06)
		b.lm(bx+0.01, y-0.02, 0.05)
	}
	return staticSign("Pink", TypeWord, b.done(),
		withMotion("brushing"), withRegion("lips"))
}

func signGrey() *Definition {
	x, y := 0.5, 0.50
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.09, Y: y - 0.02}, {X: x - 0.14, Y: y - 0.04},
			{X: x - 0.18, Y: y - 0.06}, {X: x - 0.21, Y: y - 0.08},
		},
		[4]float64{-0.05, 0, 0.05, 0.10},
		func(i, j int, bx float64) Landmark {
			z := 0.02
			if j%2 == 1 {
				z = -0.02
			}
			return Landmark{X: bx, Y: y - 0.08 - float64(j)*0.05, Z: z}
		})
	return staticSign("Grey", TypeWord, pose,
		withMotion("passing"), twoHanded())
}

func signColour() *Definition {
	x, y := 0.5, 0.38
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.08, Y: y - 0.02}, {X: x - 0.12, Y: y - 0.04},
			{X: x - 0.15, Y: y - 0.06}, {X: x - 0.17, Y: y - 0.08},
		},
		[4]float64{-0.04, 0, 0.04, 0.08},
		func(i, j int, bx float64) Landmark {
			z := 0.02
			if i%2 == 1 {
				z = -0.02
			}
			return Landmark{X: bx, Y: y - 0.07 - float64(j)*0.045, Z: z * float64(j+1) / 4}
		})
	return staticSign("Colour", TypeWord, pose,
		withMotion("wiggling"), withRegion("chin"))
}

// signDay builds the weekday signs; each day varies thumb angle, finger
// spread and curl.
func signDay(day string) *Definition {
	configs := map[string]struct{ thumb, spread, curl float64 }{
		"Monday":    {0.00, 0.030, 0.00},
		"Tuesday":   {0.02, 0.035, 0.01},
		"Wednesday": {0.04, 0.040, 0.02},
		"Thursday":  {0.06, 0.032, 0.03},
		"Friday":    {0.08, 0.038, 0.00},
		"Saturday":  {0.10, 0.042, 0.01},
		"Sunday":    {0.12, 0.045, 0.02},
	}
	cfg, ok := configs[day]
	if !ok {
		panic(fmt.Sprintf("signs: unknown day %q", day))
	}
	x, y := 0.5, 0.45
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06 - cfg.thumb, Y: y - 0.02}, {X: x - 0.10 - cfg.thumb, Y: y - 0.05},
			{X: x - 0.13 - cfg.thumb, Y: y - 0.08}, {X: x - 0.15 - cfg.thumb, Y: y - 0.10},
		},
		[4]float64{-cfg.spread, 0, cfg.spread, cfg.spread * 2},
		func(i, j int, bx float64) Landmark {
			return Landmark{
				X: bx + float64(j)*0.005,
				Y: y - 0.08 - float64(j)*0.045,
				Z: cfg.curl * float64(j) / 3,
			}
		})
	return staticSign(day, TypeWord, pose, withMotion("circular"))
}

func signToday() *Definition {
	x, y := 0.5, 0.50
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.06, Y: y + 0.02, Z: 0.01}, {X: x - 0.08, Y: y + 0.05, Z: 0.01},
			{X: x - 0.09, Y: y + 0.08, Z: 0.01}, {X: x - 0.09, Y: y + 0.10, Z: 0.01},
		},
		[4]float64{-0.03, 0.01, 0.05, 0.09},
		func(i, j int, bx float64) Landmark {
			return Landmark{X: bx, Y: y + 0.02 + float64(j)*0.05}
		})
	return staticSign("Today", TypeWord, pose,
		withMotion("downward"), twoHanded())
}

// pronounBase is the shared tucked-thumb, curled-fingers base used by
// the pointing pronouns; only the index differs per pronoun.
func pronounBase(x, y float64, index [4]Landmark) HandPose {
	b := newPose(x, y)
	b.lm(x-0.04, y-0.02, 0.03)
	b.lm(x-0.05, y-0.04, 0.05)
	b.lm(x-0.04, y-0.06, 0.05)
	b.lm(x-0.02, y-0.07, 0.04)
	for _, lm := range index {
		b.lm(lm.X, lm.Y, lm.Z)
	}
	for _, off := range []float64{0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return b.done()
}

func signI() *Definition {
	x, y := 0.52, 0.48
	pose := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.08}, {X: x - 0.04, Y: y - 0.12, Z: 0.06},
		{X: x - 0.06, Y: y - 0.15, Z: 0.10}, {X: x - 0.08, Y: y - 0.17, Z: 0.12},
	})
	return staticSign("I", TypeWord, pose, withRegion("chest"))
}

func signYou() *Definition {
	x, y := 0.5, 0.45
	pose := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.08}, {X: x - 0.02, Y: y - 0.12, Z: -0.04},
		{X: x - 0.02, Y: y - 0.16, Z: -0.08}, {X: x - 0.02, Y: y - 0.20, Z: -0.12},
	})
	return staticSign("You", TypeWord, pose, withMotion("pointing_out"))
}

func signHe() *Definition {
	x, y := 0.55, 0.42
	pose := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.08}, {X: x + 0.04, Y: y - 0.09},
		{X: x + 0.10, Y: y - 0.09}, {X: x + 0.16, Y: y - 0.09},
	})
	return staticSign("He", TypeWord, pose, withMotion("pointing_side"))
}

func signShe() *Definition {
	x, y := 0.45, 0.42
	pose := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.08}, {X: x - 0.08, Y: y - 0.09},
		{X: x - 0.14, Y: y - 0.09}, {X: x - 0.20, Y: y - 0.09},
	})
	return staticSign("She", TypeWord, pose, withMotion("pointing_side"))
}

func signIt() *Definition {
	x, y := 0.5, 0.48
	pose := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.06}, {X: x - 0.02, Y: y},
		{X: x - 0.02, Y: y + 0.06}, {X: x - 0.02, Y: y + 0.12},
	})
	return staticSign("It", TypeWord, pose, withMotion("pointing_down"))
}

// Blind covers the eyes with a V of index and middle.
func signBlind() *Definition {
	x, y := 0.5, 0.26
	b := newPose(x, y)
	b.lm(x-0.04, y-0.02, 0.03)
	b.lm(x-0.05, y-0.04, 0.05)
	b.lm(x-0.04, y-0.06, 0.05)
	b.lm(x-0.02, y-0.07, 0.04)
	b.lm(x-0.04, y-0.08, 0)
	b.lm(x-0.06, y-0.14, 0.02)
	b.lm(x-0.08, y-0.18, 0.03)
	b.lm(x-0.10, y-0.21, 0.03)
	b.lm(x, y-0.08, 0)
	b.lm(x+0.02, y-0.14, 0.02)
	b.lm(x+0.04, y-0.18, 0.03)
	b.lm(x+0.06, y-0.21, 0.03)
	for _, off := range []float64{0.04, 0.08} {
		bx := x + off
		b.lm(bx, y-0.06, 0)
		b.lm(bx, y-0.08, 0.04)
		b.lm(bx+0.01, y-0.06, 0.06)
		b.lm(bx+0.01, y-0.03, 0.05)
	}
	return staticSign("Blind", TypeWord, b.done(), withRegion("eyes"))
}

func signDeaf() *Definition {
	x, y := 0.62, 0.28
	b := newPose(x, y)
	b.lm(x-0.04, y-0.02, 0.02)
	b.lm(x-0.06, y-0.04, 0.03)
	b.lm(x-0.07, y-0.06, 0.03)
	b.lm(x-0.07, y-0.08, 0.03)
	b.lm(x-0.02, y-0.08, 0)
	b.lm(x-0.02, y-0.13, 0)
	b.lm(x-0.02, y-0.17, 0)
	b.lm(x-0.02, y-0.20, 0)
	for _, off := range []float64{0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.07, 0)
		b.lm(bx, y-0.10, 0.02)
		b.lm(bx+0.01, y-0.09, 0.04)
		b.lm(bx+0.01, y-0.06, 0.03)
	}
	return staticSign("Deaf", TypeWord, b.done(),
		withMotion("touching"), withRegion("ear"))
}

// Dream floats the pointing index up and away from the forehead.
func signDream() *Definition {
	x, y := 0.52, 0.25
	start := pronounBase(x, y, [4]Landmark{
		{X: x - 0.02, Y: y - 0.08}, {X: x - 0.02, Y: y - 0.13},
		{X: x - 0.02, Y: y - 0.17}, {X: x - 0.02, Y: y - 0.20},
	})
	x2, y2 := x+0.12, y-0.08
	end := pronounBase(x2, y2, [4]Landmark{
		{X: x2 - 0.02, Y: y2 - 0.08}, {X: x2 - 0.02, Y: y2 - 0.13},
		{X: x2 - 0.02, Y: y2 - 0.17}, {X: x2 - 0.02, Y: y2 - 0.20},
	})
	return animatedSign("Dream", start, end,
		withMotion("rising"), withFacial("calm"), withRegion("forehead"))
}

func signLoud() *Definition {
	x, y := 0.58, 0.28
	pose := spreadHand(x, y,
		[4]Landmark{
			{X: x - 0.08, Y: y - 0.02}, {X: x - 0.12, Y: y - 0.04},
			{X: x - 0.15, Y: y - 0.06}, {X: x - 0.17, Y: y - 0.08},
		},
		[4]float64{-0.05, 0, 0.05, 0.10},
		func(i, j int, bx float64) Landmark {
			angle := (float64(i) - 1.5) * 0.05
			return Landmark{X: bx + float64(j)*angle, Y: y - 0.08 - float64(j)*0.05}
		})
	return staticSign("Loud", TypeWord, pose,
		withMotion("expanding"), withRegion("ears"), twoHanded())
}

// Quiet holds the index vertically at the lips.
func signQuiet() *Definition {
	x, y := 0.5, 0.32
	b := newPose(x, y)
	b.lm(x-0.05, y-0.02, 0.03)
	b.lm(x-0.07, y-0.04, 0.05)
	b.lm(x-0.08, y-0.06, 0.06)
	b.lm(x-0.08, y-0.08, 0.06)
	b.lm(x-0.02, y-0.06, 0)
	b.lm(x-0.02, y-0.11, 0)
	b.lm(x-0.02, y-0.15, 0)
	b.lm(x-0.02, y-0.18, 0)
	for _, off := range []float64{0.02, 0.06, 0.10} {
		bx := x + off
		b.lm(bx, y-0.05, 0)
		b.lm(bx, y-0.07, 0.05)
		b.lm(bx+0.02, y-0.05, 0.07)
		b.lm(bx+0.02, y-0.02, 0.06)
	}
	return staticSign("Quiet", TypeWord, b.done(),
		withMotion("downward"), withFacial("calm"), withRegion("lips"))
}
