package cde

// Side is the polarity of a loksyu die.
type Side int

const (
	Yin Side = iota
	Yang
)

func (s Side) String() string {
	if s == Yang {
		return "Yang"
	}
	return "Yin"
}

// Outcome is the category a face falls in for the rolling element.
type Outcome int

const (
	Success Outcome = iota
	Lucky
	Ill
	LoksyuYin
	LoksyuYang
	TinJi
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case Lucky:
		return "Lucky"
	case Ill:
		return "Ill"
	case LoksyuYin:
		return "Loksyu(Yin)"
	case LoksyuYang:
		return "Loksyu(Yang)"
	case TinJi:
		return "TinJi"
	default:
		return "Unknown"
	}
}

// Loksyu reports whether o is a loksyu outcome and its side.
func (o Outcome) Loksyu() (Side, bool) {
	switch o {
	case LoksyuYin:
		return Yin, true
	case LoksyuYang:
		return Yang, true
	default:
		return Yin, false
	}
}

// faceCount is the number of faces covered by the table.
const faceCount = 10

// outcomeTable maps (element, face-1) to an outcome, following the French
// starter kit p. 26.
var outcomeTable = [elementCount][faceCount]Outcome{
	Fire: {
		TinJi,      // 1
		Success,    // 2
		LoksyuYang, // 3
		Ill,        // 4
		Lucky,      // 5
		TinJi,      // 6
		Success,    // 7
		LoksyuYin,  // 8
		Ill,        // 9
		Lucky,      // 10
	},
	Earth: {
		LoksyuYang, // 1
		Ill,        // 2
		Lucky,      // 3
		TinJi,      // 4
		Success,    // 5
		LoksyuYin,  // 6
		Ill,        // 7
		Lucky,      // 8
		TinJi,      // 9
		Success,    // 10
	},
	Metal: {
		Lucky,      // 1
		TinJi,      // 2
		Success,    // 3
		LoksyuYin,  // 4
		Ill,        // 5
		Lucky,      // 6
		TinJi,      // 7
		Success,    // 8
		LoksyuYang, // 9
		Ill,        // 10
	},
	Water: {
		Success,    // 1
		LoksyuYin,  // 2
		Ill,        // 3
		Lucky,      // 4
		TinJi,      // 5
		Success,    // 6
		LoksyuYang, // 7
		Ill,        // 8
		Lucky,      // 9
		TinJi,      // 10
	},
	Wood: {
		Ill,        // 1
		Lucky,      // 2
		TinJi,      // 3
		Success,    // 4
		LoksyuYang, // 5
		Ill,        // 6
		Lucky,      // 7
		TinJi,      // 8
		Success,    // 9
		LoksyuYin,  // 10
	},
}

// Lookup returns the outcome of face for element e. ok is false when face is
// not on a d10 or e is invalid.
func Lookup(e Element, face uint64) (Outcome, bool) {
	if !e.Valid() || face < 1 || face > faceCount {
		return 0, false
	}
	return outcomeTable[e][face-1], true
}
