package nlp

// Phrases maps multi-word surface forms to their phrase sign tokens.
// Detection runs before tokenization, longest phrase first.
var Phrases = map[string]string{
	"how are you":  "How are you",
	"good morning": "Good Morning",
	"good night":   "Good night",
	"thank you":    "Thank you",
}

// WordSigns maps single lowercase tokens to sign tokens. It includes
// inflected and colloquial variants so lookups still hit when the
// lemmatizer leaves a form untouched.
var WordSigns = map[string]string{
	// Numbers.
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",

	// Letters.
	"a": "A", "b": "B", "c": "C", "d": "D", "e": "E", "f": "F",
	"g": "G", "h": "H", "j": "J", "k": "K", "l": "L",
	"m": "M", "n": "N", "o": "O", "p": "P", "q": "Q", "r": "R",
	"s": "S", "t": "T", "u": "U", "v": "V", "w": "W", "x": "X",
	"y": "Y", "z": "Z",

	// Greetings and feelings.
	"hello": "Hello", "hi": "Hello", "hey": "Hello",
	"thank": "Thank you", "thanks": "Thank you",
	"happy": "Happy", "happiness": "Happy", "happily": "Happy",
	"sad": "Sad", "sadness": "Sad", "sadly": "Sad",
	"beautiful": "Beautiful", "beauty": "Beautiful", "pretty": "Beautiful",
	"ugly": "Ugly", "ugliness": "Ugly",
	"alright": "Alright", "okay": "Alright", "ok": "Alright", "fine": "Alright",
	"please": "Pleased", "pleased": "Pleased", "pleasure": "Pleased",

	// Animals.
	"animal": "Animal", "animals": "Animal",
	"bird": "Bird", "birds": "Bird",
	"cat": "Cat", "cats": "Cat", "kitten": "Cat", "kitty": "Cat",
	"dog": "Dog", "dogs": "Dog", "puppy": "Dog", "puppies": "Dog",
	"cow": "Cow", "cows": "Cow", "cattle": "Cow",
	"horse": "Horse", "horses": "Horse", "pony": "Horse",
	"mouse": "Mouse", "mice": "Mouse", "rat": "Mouse",
	"fish": "Fish", "fishes": "Fish", "fishing": "Fish",

	// Family.
	"mother": "Mother", "mom": "Mother", "mum": "Mother",
	"mommy": "Mother", "mama": "Mother",
	"father": "Father", "dad": "Father", "daddy": "Father", "papa": "Father",
	"daughter": "Daughter", "daughters": "Daughter",
	"son": "Son", "sons": "Son",
	"parent": "Parent", "parents": "Parent",

	// Household objects.
	"chair": "Chair", "chairs": "Chair", "seat": "Chair",
	"table": "Table", "tables": "Table", "desk": "Table",
	"bed": "Bed", "beds": "Bed", "sleeping": "Bed",
	"bedroom": "Bedroom", "bedrooms": "Bedroom", "room": "Bedroom",
	"door": "Door", "doors": "Door", "doorway": "Door",
	"window": "Window", "windows": "Window",

	// Colors.
	"black": "Black", "dark": "Black",
	"white": "White", "light": "White",
	"orange": "Orange",
	"pink":   "Pink",
	"grey":   "Grey", "gray": "Grey",
	"colour": "Colour", "color": "Colour",
	"colors": "Colour", "colours": "Colour",

	// Days.
	"monday": "Monday", "mon": "Monday",
	"tuesday": "Tuesday", "tue": "Tuesday", "tues": "Tuesday",
	"wednesday": "Wednesday", "wed": "Wednesday",
	"thursday": "Thursday", "thu": "Thursday", "thurs": "Thursday",
	"friday": "Friday", "fri": "Friday",
	"saturday": "Saturday", "sat": "Saturday",
	"sunday": "Sunday", "sun": "Sunday",
	"today": "Today",

	// Pronouns.
	"i": "I", "me": "I", "my": "I", "myself": "I",
	"you": "You", "your": "You", "yours": "You", "yourself": "You",
	"he": "He", "him": "He", "his": "He", "himself": "He",
	"she": "She", "her": "She", "hers": "She", "herself": "She",
	"it": "It", "its": "It", "itself": "It",

	// Misc.
	"blind": "Blind", "blindness": "Blind",
	"deaf": "Deaf", "deafness": "Deaf",
	"dream": "Dream", "dreams": "Dream",
	"dreaming": "Dream", "dreamt": "Dream",
	"loud": "Loud", "loudly": "Loud", "loudness": "Loud", "noisy": "Loud",
	"quiet": "Quiet", "quietly": "Quiet",
	"silence": "Quiet", "silent": "Quiet",

	// Time-of-day greetings map to their phrase signs.
	"morning": "Good Morning",
	"night":   "Good night", "goodnight": "Good night",
}

// TimeSigns are the signs the reordering heuristic moves to the front
// of a sentence.
var TimeSigns = map[string]struct{}{
	"Today":     {},
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}
